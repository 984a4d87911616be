package evaluator

import (
	"github.com/hetu-script/hetu-go/internal/herrors"
	"github.com/hetu-script/hetu-go/internal/interp/runtime"
	"github.com/hetu-script/hetu-go/pkg/token"
)

// literalPool is the evaluator's append-only, deduplicated literal
// array (spec §3, "Literal pool"; §8 invariant 6). Const nodes carry no
// index of their own — the pool dedupes by the literal's source text,
// which is stable across repeated evaluation of the same node.
type literalPool struct {
	values []runtime.Value
	index  map[string]int
}

func newLiteralPool() *literalPool {
	return &literalPool{index: map[string]int{}}
}

func (p *literalPool) intern(tok token.Token, kind token.Kind) (runtime.Value, error) {
	key := kind.String() + ":" + tok.Literal
	if i, ok := p.index[key]; ok {
		return p.values[i], nil
	}
	v, err := decodeLiteral(tok, kind)
	if err != nil {
		return nil, err
	}
	p.index[key] = len(p.values)
	p.values = append(p.values, v)
	return v, nil
}

func decodeLiteral(tok token.Token, kind token.Kind) (runtime.Value, error) {
	switch kind {
	case token.NUMBER:
		return runtime.Number(tok.NumberValue), nil
	case token.STRING:
		return runtime.String(tok.StringValue), nil
	case token.BOOL:
		return runtime.Bool(tok.BoolValue), nil
	default:
		return nil, herrors.New(herrors.Evaluate, tok.Pos, "unrecognized literal kind %s", kind)
	}
}
