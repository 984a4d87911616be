package hetujson_test

import (
	"testing"

	"github.com/hetu-script/hetu-go/internal/hetujson"
	"github.com/hetu-script/hetu-go/internal/interp/runtime"
)

func TestParsePrimitives(t *testing.T) {
	cases := []struct {
		src  string
		want runtime.Value
	}{
		{"null", runtime.NullValue},
		{"true", runtime.Bool(true)},
		{"false", runtime.Bool(false)},
		{"42", runtime.Number(42)},
		{"3.5", runtime.Number(3.5)},
		{`"hi"`, runtime.String("hi")},
	}
	for _, c := range cases {
		v, err := hetujson.Parse(c.src)
		if err != nil {
			t.Fatalf("Parse(%q): %v", c.src, err)
		}
		if v != c.want {
			t.Errorf("Parse(%q) = %#v, want %#v", c.src, v, c.want)
		}
	}
}

func TestParseInvalidJSON(t *testing.T) {
	if _, err := hetujson.Parse("{not json"); err == nil {
		t.Fatal("expected an error for invalid JSON")
	}
}

func TestParseArrayAndObject(t *testing.T) {
	v, err := hetujson.Parse(`{"a": 1, "b": [2, 3], "c": {"d": true}}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m, ok := v.(*runtime.Map)
	if !ok {
		t.Fatalf("expected a *runtime.Map, got %T", v)
	}
	a, _ := m.Get(runtime.String("a"))
	if a != runtime.Number(1) {
		t.Errorf("m[\"a\"] = %v, want 1", a)
	}
	bVal, _ := m.Get(runtime.String("b"))
	list, ok := bVal.(*runtime.List)
	if !ok || len(list.Items) != 2 {
		t.Fatalf("expected a 2-element list for \"b\", got %#v", bVal)
	}
	cVal, _ := m.Get(runtime.String("c"))
	nested, ok := cVal.(*runtime.Map)
	if !ok {
		t.Fatalf("expected a nested map for \"c\", got %T", cVal)
	}
	d, _ := nested.Get(runtime.String("d"))
	if d != runtime.Bool(true) {
		t.Errorf("nested[\"d\"] = %v, want true", d)
	}
}

func TestStringifyRoundTrip(t *testing.T) {
	m := runtime.NewMap()
	m.Set(runtime.String("name"), runtime.String("Alice"))
	m.Set(runtime.String("age"), runtime.Number(30))
	m.Set(runtime.String("tags"), runtime.NewList([]runtime.Value{runtime.String("a"), runtime.String("b")}))

	text, err := hetujson.Stringify(m)
	if err != nil {
		t.Fatalf("Stringify error: %v", err)
	}

	back, err := hetujson.Parse(text)
	if err != nil {
		t.Fatalf("re-parsing stringified JSON failed: %v (text=%q)", err, text)
	}
	backMap, ok := back.(*runtime.Map)
	if !ok {
		t.Fatalf("expected a *runtime.Map after round trip, got %T", back)
	}
	name, _ := backMap.Get(runtime.String("name"))
	if name != runtime.String("Alice") {
		t.Errorf("round-tripped name = %v, want Alice", name)
	}
}

func TestStringifyEscapesDottedMapKeys(t *testing.T) {
	m := runtime.NewMap()
	m.Set(runtime.String("a.b"), runtime.Number(1))

	text, err := hetujson.Stringify(m)
	if err != nil {
		t.Fatalf("Stringify error: %v", err)
	}
	back, err := hetujson.Parse(text)
	if err != nil {
		t.Fatalf("re-parse error: %v (text=%q)", err, text)
	}
	backMap := back.(*runtime.Map)
	v, ok := backMap.Get(runtime.String("a.b"))
	if !ok || v != runtime.Number(1) {
		t.Errorf("expected key \"a.b\" to survive the round trip, got %v, ok=%v", v, ok)
	}
}

func TestStringifyRejectsFunctions(t *testing.T) {
	if _, err := hetujson.Stringify(&runtime.HT_Function{}); err == nil {
		t.Fatal("expected an error stringifying a function value")
	}
}
