package runtime

import "fmt"

// HT_Instance is a namespace of fields whose enclosure is its class
// (spec §3, "itself a namespace whose enclosure is the class"). Native
// carries the host handle for an instance of an `external class`
// (spec §4.6).
type HT_Instance struct {
	*Namespace
	Class  *HT_Class
	Native any
}

// NewInstance allocates the instance namespace and seeds `this` into it
// (spec §4.7's construction sequence needs `this` bound before any field
// initializer runs, and spec §4.4's resolver places `this` in this same
// instance scope — one level out from a method's activation, not in the
// activation itself).
func NewInstance(class *HT_Class) *HT_Instance {
	inst := &HT_Instance{
		Namespace: NewNamespace(class.Name+" instance", class.Namespace),
		Class:     class,
	}
	inst.Declare("this", &Binding{Value: inst, Mutable: false, Initialized: true})
	return inst
}

func (i *HT_Instance) TypeName() string { return i.Class.Name }
func (i *HT_Instance) String() string   { return fmt.Sprintf("instance of %s", i.Class.Name) }

// Fetch implements spec §4.5's MemberGet dispatch: own namespace
// (fields) first, then the class's instance methods (bound to this
// instance), then the superclass chain via LookupInstanceMethod.
func (i *HT_Instance) Fetch(name string) (Value, bool) {
	if i.Class.External && i.Class.ExternNamespace != nil {
		v, err := i.Class.ExternNamespace.InstanceFetch(i.Native, name)
		if err != nil {
			return nil, false
		}
		return v, true
	}
	if b, ok := i.Local(name); ok {
		return b.Value, true
	}
	if fn, ok := i.Class.LookupInstanceMethod(name); ok {
		return fn.Bind(i), true
	}
	return nil, false
}

// Assign implements spec §4.5's MemberSet dispatch: fields only —
// methods are not assignable targets.
func (i *HT_Instance) Assign(name string, value Value) bool {
	if i.Class.External && i.Class.ExternNamespace != nil {
		return i.Class.ExternNamespace.InstanceAssign(i.Native, name, value) == nil
	}
	if _, ok := i.Local(name); !ok {
		return false
	}
	i.Declare(name, &Binding{Value: value, Mutable: true, Initialized: true})
	return true
}
