// Package gir defines the raw introspection input model. One Namespace is
// supplied per library namespace by an external parser; entities reference
// other entities by bare name (same namespace) or "Namespace.Name". Nothing
// in this package is resolved or validated — that is the normalizer's job.
package gir

// Namespace is the raw description of one library namespace.
type Namespace struct {
	Name          string `json:"name"`
	Version       string `json:"version,omitempty"`
	SharedLibrary string `json:"sharedLibrary,omitempty"`
	CPrefix       string `json:"cPrefix,omitempty"`

	Classes    []Class     `json:"classes,omitempty"`
	Interfaces []Interface `json:"interfaces,omitempty"`
	Records    []Record    `json:"records,omitempty"`
	Enums      []Enum      `json:"enums,omitempty"`
	Bitfields  []Bitfield  `json:"bitfields,omitempty"`
	Callbacks  []Callback  `json:"callbacks,omitempty"`
	Functions  []Function  `json:"functions,omitempty"`
	Constants  []Constant  `json:"constants,omitempty"`
	Aliases    []Alias     `json:"aliases,omitempty"`
}

// TypeRef is an unresolved type reference. Name may be an intrinsic
// primitive, a bare entity name, or a pre-qualified "Namespace.Name".
type TypeRef struct {
	Name    string   `json:"name"`
	CType   string   `json:"cType,omitempty"`
	IsArray bool     `json:"isArray,omitempty"`
	Element *TypeRef `json:"element,omitempty"`
}

// Class is a raw class declaration.
type Class struct {
	Name       string   `json:"name"`
	Parent     string   `json:"parent,omitempty"`
	Implements []string `json:"implements,omitempty"`
	Abstract   bool     `json:"abstract,omitempty"`

	GLibTypeName string `json:"glibTypeName,omitempty"`
	GLibGetType  string `json:"glibGetType,omitempty"`

	Constructors []Function `json:"constructors,omitempty"`
	Methods      []Function `json:"methods,omitempty"`
	Functions    []Function `json:"functions,omitempty"`
	Properties   []Property `json:"properties,omitempty"`
	Signals      []Signal   `json:"signals,omitempty"`
	Fields       []Field    `json:"fields,omitempty"`

	Doc string `json:"doc,omitempty"`
}

// Interface is a raw interface declaration.
type Interface struct {
	Name       string     `json:"name"`
	Methods    []Function `json:"methods,omitempty"`
	Properties []Property `json:"properties,omitempty"`
	Signals    []Signal   `json:"signals,omitempty"`
	Doc        string     `json:"doc,omitempty"`
}

// Record is a raw plain struct declaration.
type Record struct {
	Name         string     `json:"name"`
	Fields       []Field    `json:"fields,omitempty"`
	Constructors []Function `json:"constructors,omitempty"`
	Methods      []Function `json:"methods,omitempty"`
	Doc          string     `json:"doc,omitempty"`
}

// Function is a raw callable: a free function, method, constructor, or
// static function depending on where it appears.
type Function struct {
	Name        string      `json:"name"`
	CIdentifier string      `json:"cIdentifier,omitempty"`
	ReturnType  TypeRef     `json:"returnType,omitzero"`
	Parameters  []Parameter `json:"parameters,omitempty"`
	Throws      bool        `json:"throws,omitempty"`
	Doc         string      `json:"doc,omitempty"`
}

// Parameter is a raw callable parameter.
type Parameter struct {
	Name string  `json:"name"`
	Type TypeRef `json:"type"`
	Doc  string  `json:"doc,omitempty"`
}

// Property is a raw property declaration.
type Property struct {
	Name          string  `json:"name"`
	Type          TypeRef `json:"type"`
	Readable      bool    `json:"readable"`
	Writable      bool    `json:"writable"`
	ConstructOnly bool    `json:"constructOnly,omitempty"`
	HasDefault    bool    `json:"hasDefault,omitempty"`
	Getter        string  `json:"getter,omitempty"`
	Setter        string  `json:"setter,omitempty"`
	Doc           string  `json:"doc,omitempty"`
}

// Signal is a raw signal declaration.
type Signal struct {
	Name       string      `json:"name"`
	When       string      `json:"when,omitempty"`
	ReturnType TypeRef     `json:"returnType,omitzero"`
	Parameters []Parameter `json:"parameters,omitempty"`
	Doc        string      `json:"doc,omitempty"`
}

// Field is a raw record or class field.
type Field struct {
	Name     string  `json:"name"`
	Type     TypeRef `json:"type"`
	Writable bool    `json:"writable,omitempty"`
	Doc      string  `json:"doc,omitempty"`
}

// Enum is a raw enumeration declaration.
type Enum struct {
	Name    string   `json:"name"`
	Members []Member `json:"members,omitempty"`
	Doc     string   `json:"doc,omitempty"`
}

// Bitfield is a raw flags declaration.
type Bitfield struct {
	Name    string   `json:"name"`
	Members []Member `json:"members,omitempty"`
	Doc     string   `json:"doc,omitempty"`
}

// Member is a raw enum or bitfield value.
type Member struct {
	Name        string `json:"name"`
	Value       string `json:"value"`
	CIdentifier string `json:"cIdentifier,omitempty"`
	Doc         string `json:"doc,omitempty"`
}

// Callback is a raw callback signature declaration.
type Callback struct {
	Name       string      `json:"name"`
	ReturnType TypeRef     `json:"returnType,omitzero"`
	Parameters []Parameter `json:"parameters,omitempty"`
	Doc        string      `json:"doc,omitempty"`
}

// Constant is a raw namespace-level constant.
type Constant struct {
	Name  string  `json:"name"`
	Type  TypeRef `json:"type"`
	Value string  `json:"value"`
	Doc   string  `json:"doc,omitempty"`
}

// Alias is a raw type alias.
type Alias struct {
	Name   string  `json:"name"`
	Target TypeRef `json:"target"`
	Doc    string  `json:"doc,omitempty"`
}
