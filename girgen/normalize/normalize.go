// Package normalize converts raw per-namespace introspection data into a
// fully cross-resolved type graph. Every type, parent, and implements
// reference in the output carries a canonical "Namespace.Name" identity;
// an unresolvable reference aborts normalization with a ResolutionError.
package normalize

import (
	"sort"

	"github.com/gtkx-org/gtkx-sub008/girgen/gir"
	"github.com/gtkx-org/gtkx-sub008/girgen/ir"
)

// Context exposes every raw namespace of a run by name for cross-namespace
// resolution. Resolution of a bare name tries the current namespace first
// and then falls back to scanning the other namespaces in sorted name
// order, so results do not depend on input ordering.
type Context struct {
	namespaces map[string]*gir.Namespace
	declared   map[string]map[string]bool
	order      []string
}

// NewContext indexes the given raw namespaces.
func NewContext(namespaces ...*gir.Namespace) *Context {
	c := &Context{
		namespaces: make(map[string]*gir.Namespace, len(namespaces)),
		declared:   make(map[string]map[string]bool, len(namespaces)),
	}
	for _, ns := range namespaces {
		c.namespaces[ns.Name] = ns
		c.declared[ns.Name] = declaredNames(ns)
	}
	c.order = make([]string, 0, len(c.namespaces))
	for name := range c.namespaces {
		c.order = append(c.order, name)
	}
	sort.Strings(c.order)
	return c
}

// Namespace returns the raw namespace with the given name, or nil.
func (c *Context) Namespace(name string) *gir.Namespace {
	return c.namespaces[name]
}

// Names returns all namespace names in sorted order.
func (c *Context) Names() []string {
	return c.order
}

// declares reports whether the named namespace declares an entity with the
// given simple name.
func (c *Context) declares(namespace, name string) bool {
	return c.declared[namespace][name]
}

// declaredNames collects the simple names of every entity a raw namespace
// declares, across all entity kinds.
func declaredNames(ns *gir.Namespace) map[string]bool {
	names := make(map[string]bool)
	for _, e := range ns.Classes {
		names[e.Name] = true
	}
	for _, e := range ns.Interfaces {
		names[e.Name] = true
	}
	for _, e := range ns.Records {
		names[e.Name] = true
	}
	for _, e := range ns.Enums {
		names[e.Name] = true
	}
	for _, e := range ns.Bitfields {
		names[e.Name] = true
	}
	for _, e := range ns.Callbacks {
		names[e.Name] = true
	}
	for _, e := range ns.Functions {
		names[e.Name] = true
	}
	for _, e := range ns.Constants {
		names[e.Name] = true
	}
	for _, e := range ns.Aliases {
		names[e.Name] = true
	}
	return names
}

// All normalizes every namespace in the context and returns the combined
// registry. This is the required all-before-any ordering: the registry
// must be complete before any class enters classification or planning.
func All(ctx *Context) (*ir.Registry, error) {
	reg := ir.NewRegistry()
	for _, name := range ctx.Names() {
		ns, err := Namespace(ctx.Namespace(name), ctx)
		if err != nil {
			return nil, err
		}
		reg.Add(ns)
	}
	return reg, nil
}

// Namespace normalizes one raw namespace against the full context.
func Namespace(raw *gir.Namespace, ctx *Context) (*ir.Namespace, error) {
	n := &normalizer{raw: raw, ctx: ctx}
	out := ir.NewNamespace(raw.Name)
	out.Version = raw.Version
	out.SharedLibrary = raw.SharedLibrary
	out.CPrefix = raw.CPrefix

	for _, c := range raw.Classes {
		cls, err := n.class(c)
		if err != nil {
			return nil, err
		}
		out.Classes[cls.Name] = cls
	}
	for _, i := range raw.Interfaces {
		iface, err := n.iface(i)
		if err != nil {
			return nil, err
		}
		out.Interfaces[iface.Name] = iface
	}
	for _, rec := range raw.Records {
		r, err := n.record(rec)
		if err != nil {
			return nil, err
		}
		out.Records[r.Name] = r
	}
	for _, e := range raw.Enums {
		out.Enums[e.Name] = &ir.Enum{
			Name:    e.Name,
			QName:   n.qualify(e.Name),
			Members: members(e.Members),
			Doc:     e.Doc,
		}
	}
	for _, b := range raw.Bitfields {
		out.Bitfields[b.Name] = &ir.Bitfield{
			Name:    b.Name,
			QName:   n.qualify(b.Name),
			Members: members(b.Members),
			Doc:     b.Doc,
		}
	}
	for _, cb := range raw.Callbacks {
		c, err := n.callback(cb)
		if err != nil {
			return nil, err
		}
		out.Callbacks[c.Name] = c
	}
	for _, f := range raw.Functions {
		fn, err := n.function(f)
		if err != nil {
			return nil, err
		}
		out.Functions[fn.Name] = fn
	}
	for _, c := range raw.Constants {
		from := n.qualify(c.Name).String()
		typ, err := n.typeRef(c.Type, from)
		if err != nil {
			return nil, err
		}
		out.Constants[c.Name] = &ir.Constant{
			Name:  c.Name,
			QName: n.qualify(c.Name),
			Type:  typ,
			Value: c.Value,
			Doc:   c.Doc,
		}
	}
	for _, a := range raw.Aliases {
		from := n.qualify(a.Name).String()
		target, err := n.typeRef(a.Target, from)
		if err != nil {
			return nil, err
		}
		out.Aliases[a.Name] = &ir.Alias{
			Name:   a.Name,
			QName:  n.qualify(a.Name),
			Target: target,
			Doc:    a.Doc,
		}
	}

	return out, nil
}

type normalizer struct {
	raw *gir.Namespace
	ctx *Context
}

// qualify computes the canonical identity of an entity declared in the
// current namespace.
func (n *normalizer) qualify(name string) ir.QualifiedName {
	return ir.Qual(n.raw.Name, name)
}

// resolve turns a reference as written in the raw input into a qualified
// name. Pre-qualified references only need their namespace to exist in the
// context; bare references must name an entity declared in the current
// namespace or, failing that, in some other namespace of the context.
// Intrinsic names never reach resolve.
func (n *normalizer) resolve(ref, from string) (ir.QualifiedName, error) {
	if qn, ok := ir.ParseQualified(ref); ok {
		if n.ctx.Namespace(qn.Namespace) == nil {
			return ir.QualifiedName{}, &ResolutionError{Ref: ref, From: from}
		}
		return qn, nil
	}

	if n.ctx.declares(n.raw.Name, ref) {
		return n.qualify(ref), nil
	}

	// Base hierarchies are often rooted in a foundational namespace that
	// the input references without qualification; scan the rest of the
	// context in sorted order.
	for _, name := range n.ctx.Names() {
		if name == n.raw.Name {
			continue
		}
		if n.ctx.declares(name, ref) {
			return ir.Qual(name, ref), nil
		}
	}

	return ir.QualifiedName{}, &ResolutionError{Ref: ref, From: from}
}

// typeRef resolves one type reference, recursing into array element types.
// Intrinsic primitive names are left unqualified; the native CType is
// carried through untouched.
func (n *normalizer) typeRef(t gir.TypeRef, from string) (ir.TypeRef, error) {
	out := ir.TypeRef{CType: t.CType, IsArray: t.IsArray}

	if t.IsArray && t.Element != nil {
		elem, err := n.typeRef(*t.Element, from)
		if err != nil {
			return ir.TypeRef{}, err
		}
		out.Element = &elem
	}

	switch {
	case t.Name == "":
		// Arrays may carry their element type only.
	case ir.IsIntrinsic(t.Name):
		out.Name = t.Name
	default:
		qn, err := n.resolve(t.Name, from)
		if err != nil {
			return ir.TypeRef{}, err
		}
		out.Name = qn.String()
	}

	return out, nil
}

func (n *normalizer) class(raw gir.Class) (*ir.Class, error) {
	qn := n.qualify(raw.Name)
	from := qn.String()

	cls := &ir.Class{
		Name:         raw.Name,
		QName:        qn,
		Abstract:     raw.Abstract,
		GLibTypeName: raw.GLibTypeName,
		GLibGetType:  raw.GLibGetType,
		Doc:          raw.Doc,
	}

	if raw.Parent != "" {
		parent, err := n.resolve(raw.Parent, from)
		if err != nil {
			return nil, err
		}
		cls.Parent = parent
	}

	seen := make(map[ir.QualifiedName]bool)
	for _, impl := range raw.Implements {
		ifaceQN, err := n.resolve(impl, from)
		if err != nil {
			return nil, err
		}
		if seen[ifaceQN] {
			continue
		}
		seen[ifaceQN] = true
		cls.Implements = append(cls.Implements, ifaceQN)
	}

	var err error
	if cls.Constructors, err = n.methods(raw.Constructors, from); err != nil {
		return nil, err
	}
	if cls.Methods, err = n.methods(raw.Methods, from); err != nil {
		return nil, err
	}
	if cls.StaticFunctions, err = n.methods(raw.Functions, from); err != nil {
		return nil, err
	}
	if cls.Properties, err = n.properties(raw.Properties, from); err != nil {
		return nil, err
	}
	if cls.Signals, err = n.signals(raw.Signals, from); err != nil {
		return nil, err
	}
	if cls.Fields, err = n.fields(raw.Fields, from); err != nil {
		return nil, err
	}

	return cls, nil
}

func (n *normalizer) iface(raw gir.Interface) (*ir.Interface, error) {
	qn := n.qualify(raw.Name)
	from := qn.String()

	iface := &ir.Interface{Name: raw.Name, QName: qn, Doc: raw.Doc}

	var err error
	if iface.Methods, err = n.methods(raw.Methods, from); err != nil {
		return nil, err
	}
	if iface.Properties, err = n.properties(raw.Properties, from); err != nil {
		return nil, err
	}
	if iface.Signals, err = n.signals(raw.Signals, from); err != nil {
		return nil, err
	}

	return iface, nil
}

func (n *normalizer) record(raw gir.Record) (*ir.Record, error) {
	qn := n.qualify(raw.Name)
	from := qn.String()

	rec := &ir.Record{Name: raw.Name, QName: qn, Doc: raw.Doc}

	var err error
	// A record field may reference its own record type (e.g. a pointer to
	// the next element); that is a plain name lookup, not a traversal, so
	// it terminates like any other resolution.
	if rec.Fields, err = n.fields(raw.Fields, from); err != nil {
		return nil, err
	}
	if rec.Constructors, err = n.methods(raw.Constructors, from); err != nil {
		return nil, err
	}
	if rec.Methods, err = n.methods(raw.Methods, from); err != nil {
		return nil, err
	}

	return rec, nil
}

func (n *normalizer) callback(raw gir.Callback) (*ir.Callback, error) {
	qn := n.qualify(raw.Name)
	from := qn.String()

	ret, err := n.typeRef(raw.ReturnType, from)
	if err != nil {
		return nil, err
	}
	params, err := n.parameters(raw.Parameters, from)
	if err != nil {
		return nil, err
	}

	return &ir.Callback{
		Name:       raw.Name,
		QName:      qn,
		ReturnType: ret,
		Parameters: params,
		Doc:        raw.Doc,
	}, nil
}

func (n *normalizer) function(raw gir.Function) (*ir.Function, error) {
	qn := n.qualify(raw.Name)
	from := qn.String()

	ret, err := n.typeRef(raw.ReturnType, from)
	if err != nil {
		return nil, err
	}
	params, err := n.parameters(raw.Parameters, from)
	if err != nil {
		return nil, err
	}

	return &ir.Function{
		Name:        raw.Name,
		QName:       qn,
		CIdentifier: raw.CIdentifier,
		ReturnType:  ret,
		Parameters:  params,
		Throws:      raw.Throws,
		Doc:         raw.Doc,
	}, nil
}

func (n *normalizer) methods(raw []gir.Function, from string) ([]ir.Method, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make([]ir.Method, 0, len(raw))
	for _, m := range raw {
		ret, err := n.typeRef(m.ReturnType, from)
		if err != nil {
			return nil, err
		}
		params, err := n.parameters(m.Parameters, from)
		if err != nil {
			return nil, err
		}
		out = append(out, ir.Method{
			Name:        m.Name,
			CIdentifier: m.CIdentifier,
			ReturnType:  ret,
			Parameters:  params,
			Throws:      m.Throws,
			Doc:         m.Doc,
		})
	}
	return out, nil
}

func (n *normalizer) parameters(raw []gir.Parameter, from string) ([]ir.Parameter, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make([]ir.Parameter, 0, len(raw))
	for _, p := range raw {
		typ, err := n.typeRef(p.Type, from)
		if err != nil {
			return nil, err
		}
		out = append(out, ir.Parameter{Name: p.Name, Type: typ, Doc: p.Doc})
	}
	return out, nil
}

func (n *normalizer) properties(raw []gir.Property, from string) ([]ir.Property, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make([]ir.Property, 0, len(raw))
	for _, p := range raw {
		typ, err := n.typeRef(p.Type, from)
		if err != nil {
			return nil, err
		}
		out = append(out, ir.Property{
			Name:          p.Name,
			Type:          typ,
			Readable:      p.Readable,
			Writable:      p.Writable,
			ConstructOnly: p.ConstructOnly,
			HasDefault:    p.HasDefault,
			Getter:        p.Getter,
			Setter:        p.Setter,
			Doc:           p.Doc,
		})
	}
	return out, nil
}

func (n *normalizer) signals(raw []gir.Signal, from string) ([]ir.Signal, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make([]ir.Signal, 0, len(raw))
	for _, s := range raw {
		ret, err := n.typeRef(s.ReturnType, from)
		if err != nil {
			return nil, err
		}
		params, err := n.parameters(s.Parameters, from)
		if err != nil {
			return nil, err
		}
		out = append(out, ir.Signal{
			Name:       s.Name,
			When:       s.When,
			ReturnType: ret,
			Parameters: params,
			Doc:        s.Doc,
		})
	}
	return out, nil
}

func (n *normalizer) fields(raw []gir.Field, from string) ([]ir.Field, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make([]ir.Field, 0, len(raw))
	for _, f := range raw {
		typ, err := n.typeRef(f.Type, from)
		if err != nil {
			return nil, err
		}
		out = append(out, ir.Field{Name: f.Name, Type: typ, Writable: f.Writable, Doc: f.Doc})
	}
	return out, nil
}

func members(raw []gir.Member) []ir.EnumMember {
	if len(raw) == 0 {
		return nil
	}
	out := make([]ir.EnumMember, 0, len(raw))
	for _, m := range raw {
		out = append(out, ir.EnumMember{
			Name:        m.Name,
			Value:       m.Value,
			CIdentifier: m.CIdentifier,
			Doc:         m.Doc,
		})
	}
	return out
}
