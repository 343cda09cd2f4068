package ir

// Parameter is a single callable parameter with its resolved type.
type Parameter struct {
	Name string  `json:"name"`
	Type TypeRef `json:"type"`
	Doc  string  `json:"doc,omitempty"`
}

// Method describes a callable attached to a class, interface, or record.
// The same shape backs instance methods, constructors, and static
// functions; which list it appears in determines its role. CIdentifier is
// the stable native symbol used as the key for rename bookkeeping.
type Method struct {
	Name        string      `json:"name"`
	CIdentifier string      `json:"cIdentifier"`
	ReturnType  TypeRef     `json:"returnType"`
	Parameters  []Parameter `json:"parameters,omitempty"`
	Throws      bool        `json:"throws,omitempty"`
	Doc         string      `json:"doc,omitempty"`
}

// Property describes an object property.
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

// Emission timings for signals. A "first" signal runs user hooks before the
// default handler, so hooks can intercept default behavior; "last" cannot.
const (
	SignalFirst = "first"
	SignalLast  = "last"
)

// Signal describes an object signal.
type Signal struct {
	Name       string      `json:"name"`
	When       string      `json:"when,omitempty"`
	ReturnType TypeRef     `json:"returnType"`
	Parameters []Parameter `json:"parameters,omitempty"`
	Doc        string      `json:"doc,omitempty"`
}

// Field describes a record or class field.
type Field struct {
	Name     string  `json:"name"`
	Type     TypeRef `json:"type"`
	Writable bool    `json:"writable,omitempty"`
	Doc      string  `json:"doc,omitempty"`
}

// EnumMember is a single value of an enumeration or bitfield.
type EnumMember struct {
	Name        string `json:"name"`
	Value       string `json:"value"`
	CIdentifier string `json:"cIdentifier,omitempty"`
	Doc         string `json:"doc,omitempty"`
}
