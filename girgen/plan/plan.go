// Package plan walks a normalized class's inheritance chain and interface
// set and decides, for each member, whether it is emitted as-is, renamed
// to avoid a collision, merged from an interface, paired as an
// asynchronous operation, or excluded as unsupported. The planner never
// mutates the registry; every decision lands in the returned Plan.
package plan

import (
	"github.com/gtkx-org/gtkx-sub008/girgen/ir"
	"github.com/gtkx-org/gtkx-sub008/girgen/naming"
)

// connectMethod is the universal signal-connection operation. A class
// method of this name always shadows the inherited machinery, so it is
// renamed whenever the class has a parent at all.
const connectMethod = "connect"

// Plan is the full decision set for one class.
type Plan struct {
	// Methods is the final synchronous method list: the class's own
	// methods plus interface-merged ones, minus async pairs.
	Methods []ir.Method `json:"methods,omitempty"`

	// AsyncPairs are the matched begin/finish operations, excluded from
	// Methods.
	AsyncPairs []AsyncPair `json:"asyncPairs,omitempty"`

	// Renames maps a method's native cIdentifier to its collision-avoiding
	// name. Methods keep their original entry in the lists; the rename
	// keeps the shadowing method and the shadowed one independently
	// addressable.
	Renames map[string]string `json:"renames,omitempty"`

	// MainConstructor is the constructor backing the primary construction
	// path, nil when none qualifies.
	MainConstructor *ir.Method `json:"mainConstructor,omitempty"`

	// Factories are the remaining constructors, emitted as static factory
	// functions.
	Factories []ir.Method `json:"factories,omitempty"`

	// StaticFunctions is the class's own static functions minus any whose
	// name an ancestor already declares.
	StaticFunctions []ir.Method `json:"staticFunctions,omitempty"`

	// NeedsBaseConstructor is set when no constructor qualifies as main
	// but the class is concrete, has a parent, and carries a native
	// type-registration identity, so a generic base-construction path is
	// required.
	NeedsBaseConstructor bool `json:"needsBaseConstructor,omitempty"`

	// Generatable is false only when the class declares constructors and
	// every one of them has an unsupported callback parameter. A class
	// with zero constructors is always generatable.
	Generatable bool `json:"generatable"`
}

// Planner plans classes against a normalized registry.
type Planner struct {
	reg  *ir.Registry
	conv Convention
}

// New builds a planner. A zero convention falls back to the default.
func New(reg *ir.Registry, conv Convention) *Planner {
	if conv.IsZero() {
		conv = DefaultConvention()
	}
	return &Planner{reg: reg, conv: conv}
}

// Plan computes the decision set for one class.
func (p *Planner) Plan(cls *ir.Class) Plan {
	plan := Plan{Renames: make(map[string]string)}

	ancestors := p.reg.Ancestors(cls)
	parentNames := parentMethodNames(ancestors)

	// Self-collision pass: the class's own methods against everything its
	// ancestors declare, plus the universal connect rule.
	ownNames := make(map[string]bool, len(cls.Methods))
	methods := make([]ir.Method, 0, len(cls.Methods))
	for _, m := range cls.Methods {
		ownNames[m.Name] = true
		if parentNames[m.Name] || (m.Name == connectMethod && cls.HasParent()) {
			plan.Renames[m.CIdentifier] = cls.Name + naming.ToPascalCase(m.Name)
		}
		methods = append(methods, m)
	}

	methods = p.mergeInterfaces(cls, methods, ownNames, parentNames, plan.Renames)

	plan.Methods, plan.AsyncPairs = pairAsync(p.conv, methods)

	p.selectConstructors(cls, &plan)
	plan.StaticFunctions = p.filterStatics(cls, ancestors)

	return plan
}

// mergeInterfaces walks the implements list in declared order and pulls in
// interface methods the class does not already have. The first interface
// to contribute a name wins it unqualified; later interfaces contributing
// the same name get an <Interface><Method> rename. An implements entry
// without a resolvable interface declaration contributes nothing and is
// skipped, not an error.
func (p *Planner) mergeInterfaces(cls *ir.Class, methods []ir.Method, ownNames, parentNames map[string]bool, renames map[string]string) []ir.Method {
	contributed := make(map[string]bool)
	for _, qn := range cls.Implements {
		iface := p.reg.Interface(qn)
		if iface == nil {
			continue
		}
		for _, m := range iface.Methods {
			if ownNames[m.Name] || parentNames[m.Name] {
				continue
			}
			if contributed[m.Name] {
				renames[m.CIdentifier] = iface.Name + naming.ToPascalCase(m.Name)
			} else {
				contributed[m.Name] = true
			}
			methods = append(methods, m)
		}
	}
	return methods
}

// selectConstructors picks the first constructor whose parameters are all
// representable as the main constructor and demotes the rest to factories.
func (p *Planner) selectConstructors(cls *ir.Class, plan *Plan) {
	plan.Generatable = true

	for i := range cls.Constructors {
		ctor := cls.Constructors[i]
		if plan.MainConstructor == nil && p.supported(ctor) {
			plan.MainConstructor = &ctor
			continue
		}
		plan.Factories = append(plan.Factories, ctor)
	}

	if plan.MainConstructor != nil {
		return
	}

	// Every declared constructor was disqualified; a class with zero
	// constructors stays generatable.
	if len(cls.Constructors) > 0 {
		plan.Generatable = false
	}
	if !cls.Abstract && cls.HasParent() && cls.GLibGetType != "" {
		plan.NeedsBaseConstructor = true
	}
}

// supported reports whether every parameter of the constructor has a
// representable kind. A parameter whose type resolves to a callback
// declaration disqualifies it.
func (p *Planner) supported(ctor ir.Method) bool {
	for _, param := range ctor.Parameters {
		if !p.supportedType(param.Type) {
			return false
		}
	}
	return true
}

func (p *Planner) supportedType(t ir.TypeRef) bool {
	if t.IsArray && t.Element != nil && !p.supportedType(*t.Element) {
		return false
	}
	qn, ok := t.Qualified()
	if !ok {
		return true
	}
	e := p.reg.Lookup(qn)
	return e == nil || e.Kind() != ir.KindCallback
}

// filterStatics drops the class's own static functions whose name an
// ancestor already declares, so inheritance does not emit duplicates.
func (p *Planner) filterStatics(cls *ir.Class, ancestors []*ir.Class) []ir.Method {
	inherited := make(map[string]bool)
	for _, a := range ancestors {
		for _, f := range a.StaticFunctions {
			inherited[f.Name] = true
		}
	}

	var out []ir.Method
	for _, f := range cls.StaticFunctions {
		if inherited[f.Name] {
			continue
		}
		out = append(out, f)
	}
	return out
}

// parentMethodNames unions the method names declared by every transitive
// ancestor.
func parentMethodNames(ancestors []*ir.Class) map[string]bool {
	names := make(map[string]bool)
	for _, a := range ancestors {
		for _, m := range a.Methods {
			names[m.Name] = true
		}
	}
	return names
}
