package runtime

import "github.com/hetu-script/hetu-go/pkg/ast"

// ExternalNamespace is the four-operation protocol a host registers for
// an `external class` (spec §4.6). The evaluator routes member access on
// an instance of such a class through these instead of through the
// ordinary instance/class namespace chain.
type ExternalNamespace interface {
	Fetch(name string) (Value, error)
	Assign(name string, value Value) error
	InstanceFetch(handle any, name string) (Value, error)
	InstanceAssign(handle any, name string, value Value) error
}

// HT_Class is a namespace of static members/methods, plus the
// declarations (not yet evaluated) that construction will turn into an
// instance's fields, plus the installed instance methods (spec §3,
// "HT_Class").
type HT_Class struct {
	*Namespace
	Name            string
	Super           *HT_Class // nil means "extends Object" (spec §4.7)
	InstanceVars    []*ast.VarDecl
	InstanceMethods map[string]*HT_Function
	External        bool
	ExternNamespace ExternalNamespace // non-nil when External and bound
}

func NewClass(name string, super *HT_Class, outer *Namespace) *HT_Class {
	return &HT_Class{
		Namespace:       NewNamespace(name, outer),
		Name:            name,
		Super:           super,
		InstanceMethods: map[string]*HT_Function{},
	}
}

func (c *HT_Class) TypeName() string { return "CLASS" }
func (c *HT_Class) String() string   { return "class " + c.Name }

// LookupInstanceMethod walks from c up through Super looking for name,
// giving subclass overrides priority (spec §4.7).
func (c *HT_Class) LookupInstanceMethod(name string) (*HT_Function, bool) {
	for cls := c; cls != nil; cls = cls.Super {
		if fn, ok := cls.InstanceMethods[name]; ok {
			return fn, true
		}
	}
	return nil, false
}

// AllInstanceVars returns instance variable declarations walking from
// the root superclass down to c, so subclass fields shadow (come after)
// inherited ones in initialization order (spec §4.7, "superclass
// instance-variable declarations copied in").
func (c *HT_Class) AllInstanceVars() []*ast.VarDecl {
	if c.Super == nil {
		return append([]*ast.VarDecl(nil), c.InstanceVars...)
	}
	return append(c.Super.AllInstanceVars(), c.InstanceVars...)
}

// IsInstanceOf reports whether name matches c's own class name exactly
// — spec §8 invariant 5 and §9's open question both read `is` as
// strict-name-equality, not a superclass walk.
func (c *HT_Class) IsInstanceOf(name string) bool {
	return c.Name == name
}
