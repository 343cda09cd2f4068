package ir

import "sort"

// Namespace holds every normalized entity of one library namespace, one map
// per entity kind keyed by simple name. Values carry their full qualified
// identity, so a Namespace can be merged into a Registry without rekeying.
type Namespace struct {
	Name          string `json:"name"`
	Version       string `json:"version,omitempty"`
	SharedLibrary string `json:"sharedLibrary,omitempty"`
	CPrefix       string `json:"cPrefix,omitempty"`

	Classes    map[string]*Class     `json:"classes,omitempty"`
	Interfaces map[string]*Interface `json:"interfaces,omitempty"`
	Records    map[string]*Record    `json:"records,omitempty"`
	Enums      map[string]*Enum      `json:"enums,omitempty"`
	Bitfields  map[string]*Bitfield  `json:"bitfields,omitempty"`
	Callbacks  map[string]*Callback  `json:"callbacks,omitempty"`
	Functions  map[string]*Function  `json:"functions,omitempty"`
	Constants  map[string]*Constant  `json:"constants,omitempty"`
	Aliases    map[string]*Alias     `json:"aliases,omitempty"`
}

// NewNamespace returns an empty namespace with all entity maps allocated.
func NewNamespace(name string) *Namespace {
	return &Namespace{
		Name:       name,
		Classes:    make(map[string]*Class),
		Interfaces: make(map[string]*Interface),
		Records:    make(map[string]*Record),
		Enums:      make(map[string]*Enum),
		Bitfields:  make(map[string]*Bitfield),
		Callbacks:  make(map[string]*Callback),
		Functions:  make(map[string]*Function),
		Constants:  make(map[string]*Constant),
		Aliases:    make(map[string]*Alias),
	}
}

// Lookup finds an entity of any kind by simple name. Returns nil if the
// name is not declared in this namespace.
func (ns *Namespace) Lookup(name string) Entity {
	if e, ok := ns.Classes[name]; ok {
		return e
	}
	if e, ok := ns.Interfaces[name]; ok {
		return e
	}
	if e, ok := ns.Records[name]; ok {
		return e
	}
	if e, ok := ns.Enums[name]; ok {
		return e
	}
	if e, ok := ns.Bitfields[name]; ok {
		return e
	}
	if e, ok := ns.Callbacks[name]; ok {
		return e
	}
	if e, ok := ns.Functions[name]; ok {
		return e
	}
	if e, ok := ns.Constants[name]; ok {
		return e
	}
	if e, ok := ns.Aliases[name]; ok {
		return e
	}
	return nil
}

// ClassNames returns the declared class names in sorted order.
func (ns *Namespace) ClassNames() []string {
	names := make([]string, 0, len(ns.Classes))
	for name := range ns.Classes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Registry is the arena of all normalized namespaces, addressed by
// qualified name. Entities reference each other through value-comparable
// names rather than pointers, so the registry is the single source of
// truth for cross-namespace lookups. It is populated once by the
// normalizer and read-only afterwards, which makes it safe to share
// across parallel per-class planning tasks.
type Registry struct {
	namespaces map[string]*Namespace
}

// NewRegistry builds a registry over the given namespaces.
func NewRegistry(namespaces ...*Namespace) *Registry {
	r := &Registry{namespaces: make(map[string]*Namespace, len(namespaces))}
	for _, ns := range namespaces {
		r.namespaces[ns.Name] = ns
	}
	return r
}

// Add inserts a namespace, replacing any previous one of the same name.
func (r *Registry) Add(ns *Namespace) {
	r.namespaces[ns.Name] = ns
}

// Namespace returns the namespace with the given name, or nil.
func (r *Registry) Namespace(name string) *Namespace {
	return r.namespaces[name]
}

// NamespaceNames returns all namespace names in sorted order.
func (r *Registry) NamespaceNames() []string {
	names := make([]string, 0, len(r.namespaces))
	for name := range r.namespaces {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup finds an entity of any kind by qualified name. Returns nil if the
// namespace or the entity does not exist.
func (r *Registry) Lookup(qn QualifiedName) Entity {
	ns := r.namespaces[qn.Namespace]
	if ns == nil {
		return nil
	}
	return ns.Lookup(qn.Name)
}

// Class returns the class with the given qualified name, or nil.
func (r *Registry) Class(qn QualifiedName) *Class {
	ns := r.namespaces[qn.Namespace]
	if ns == nil {
		return nil
	}
	return ns.Classes[qn.Name]
}

// Interface returns the interface with the given qualified name, or nil.
func (r *Registry) Interface(qn QualifiedName) *Interface {
	ns := r.namespaces[qn.Namespace]
	if ns == nil {
		return nil
	}
	return ns.Interfaces[qn.Name]
}

// Ancestors returns the transitive parent chain of cls, nearest first.
// The walk stops at a class with no parent, at a parent that is not in
// the registry, or on a cycle.
func (r *Registry) Ancestors(cls *Class) []*Class {
	var chain []*Class
	seen := map[QualifiedName]bool{cls.QName: true}
	for cur := cls; cur.HasParent(); {
		parent := r.Class(cur.Parent)
		if parent == nil || seen[parent.QName] {
			break
		}
		seen[parent.QName] = true
		chain = append(chain, parent)
		cur = parent
	}
	return chain
}

// IsSubclassOf reports whether root appears in the strict ancestor chain
// of cls. A class is not a subclass of itself.
func (r *Registry) IsSubclassOf(cls *Class, root QualifiedName) bool {
	for _, a := range r.Ancestors(cls) {
		if a.QName == root {
			return true
		}
	}
	return false
}

// AllClasses returns every class in the registry, sorted by qualified
// name for deterministic iteration.
func (r *Registry) AllClasses() []*Class {
	var classes []*Class
	for _, name := range r.NamespaceNames() {
		ns := r.namespaces[name]
		for _, cn := range ns.ClassNames() {
			classes = append(classes, ns.Classes[cn])
		}
	}
	return classes
}

// Warning represents a non-fatal issue encountered during a run.
type Warning struct {
	// Code is a machine-readable warning identifier.
	Code string `json:"code"`

	// Message is a human-readable description.
	Message string `json:"message"`

	// Class is the qualified class name that triggered the warning, if any.
	Class string `json:"class,omitempty"`
}
