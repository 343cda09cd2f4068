package ir

// Class is a normalized object class. Parent and Implements hold fully
// qualified identities; Implements is deduplicated and order-preserving.
type Class struct {
	Name       string          `json:"name"`
	QName      QualifiedName   `json:"qualifiedName"`
	Parent     QualifiedName   `json:"parent,omitzero"`
	Implements []QualifiedName `json:"implements,omitempty"`
	Abstract   bool            `json:"abstract,omitempty"`

	// Native type-registration markers. Only consulted to decide whether a
	// registration/base-construction path is needed.
	GLibTypeName string `json:"glibTypeName,omitempty"`
	GLibGetType  string `json:"glibGetType,omitempty"`

	Constructors    []Method   `json:"constructors,omitempty"`
	Methods         []Method   `json:"methods,omitempty"`
	StaticFunctions []Method   `json:"staticFunctions,omitempty"`
	Properties      []Property `json:"properties,omitempty"`
	Signals         []Signal   `json:"signals,omitempty"`
	Fields          []Field    `json:"fields,omitempty"`

	Doc string `json:"doc,omitempty"`
}

func (c *Class) Kind() EntityKind         { return KindClass }
func (c *Class) EntityName() string       { return c.Name }
func (c *Class) Qualified() QualifiedName { return c.QName }
func (c *Class) sealed()                  {}

// HasParent reports whether the class declares a parent class.
func (c *Class) HasParent() bool { return !c.Parent.IsZero() }

// Interface is a normalized interface declaration.
type Interface struct {
	Name       string        `json:"name"`
	QName      QualifiedName `json:"qualifiedName"`
	Methods    []Method      `json:"methods,omitempty"`
	Properties []Property    `json:"properties,omitempty"`
	Signals    []Signal      `json:"signals,omitempty"`
	Doc        string        `json:"doc,omitempty"`
}

func (i *Interface) Kind() EntityKind         { return KindInterface }
func (i *Interface) EntityName() string       { return i.Name }
func (i *Interface) Qualified() QualifiedName { return i.QName }
func (i *Interface) sealed()                  {}

// Record is a normalized plain struct type.
type Record struct {
	Name         string        `json:"name"`
	QName        QualifiedName `json:"qualifiedName"`
	Fields       []Field       `json:"fields,omitempty"`
	Constructors []Method      `json:"constructors,omitempty"`
	Methods      []Method      `json:"methods,omitempty"`
	Doc          string        `json:"doc,omitempty"`
}

func (r *Record) Kind() EntityKind         { return KindRecord }
func (r *Record) EntityName() string       { return r.Name }
func (r *Record) Qualified() QualifiedName { return r.QName }
func (r *Record) sealed()                  {}

// Enum is a normalized enumeration.
type Enum struct {
	Name    string        `json:"name"`
	QName   QualifiedName `json:"qualifiedName"`
	Members []EnumMember  `json:"members,omitempty"`
	Doc     string        `json:"doc,omitempty"`
}

func (e *Enum) Kind() EntityKind         { return KindEnum }
func (e *Enum) EntityName() string       { return e.Name }
func (e *Enum) Qualified() QualifiedName { return e.QName }
func (e *Enum) sealed()                  {}

// Bitfield is a normalized flags type.
type Bitfield struct {
	Name    string        `json:"name"`
	QName   QualifiedName `json:"qualifiedName"`
	Members []EnumMember  `json:"members,omitempty"`
	Doc     string        `json:"doc,omitempty"`
}

func (b *Bitfield) Kind() EntityKind         { return KindBitfield }
func (b *Bitfield) EntityName() string       { return b.Name }
func (b *Bitfield) Qualified() QualifiedName { return b.QName }
func (b *Bitfield) sealed()                  {}

// Callback is a normalized callback signature.
type Callback struct {
	Name       string        `json:"name"`
	QName      QualifiedName `json:"qualifiedName"`
	ReturnType TypeRef       `json:"returnType"`
	Parameters []Parameter   `json:"parameters,omitempty"`
	Doc        string        `json:"doc,omitempty"`
}

func (c *Callback) Kind() EntityKind         { return KindCallback }
func (c *Callback) EntityName() string       { return c.Name }
func (c *Callback) Qualified() QualifiedName { return c.QName }
func (c *Callback) sealed()                  {}

// Function is a normalized namespace-level free function.
type Function struct {
	Name        string        `json:"name"`
	QName       QualifiedName `json:"qualifiedName"`
	CIdentifier string        `json:"cIdentifier"`
	ReturnType  TypeRef       `json:"returnType"`
	Parameters  []Parameter   `json:"parameters,omitempty"`
	Throws      bool          `json:"throws,omitempty"`
	Doc         string        `json:"doc,omitempty"`
}

func (f *Function) Kind() EntityKind         { return KindFunction }
func (f *Function) EntityName() string       { return f.Name }
func (f *Function) Qualified() QualifiedName { return f.QName }
func (f *Function) sealed()                  {}

// Constant is a normalized namespace-level constant.
type Constant struct {
	Name  string        `json:"name"`
	QName QualifiedName `json:"qualifiedName"`
	Type  TypeRef       `json:"type"`
	Value string        `json:"value"`
	Doc   string        `json:"doc,omitempty"`
}

func (c *Constant) Kind() EntityKind         { return KindConstant }
func (c *Constant) EntityName() string       { return c.Name }
func (c *Constant) Qualified() QualifiedName { return c.QName }
func (c *Constant) sealed()                  {}

// Alias is a normalized type alias.
type Alias struct {
	Name   string        `json:"name"`
	QName  QualifiedName `json:"qualifiedName"`
	Target TypeRef       `json:"target"`
	Doc    string        `json:"doc,omitempty"`
}

func (a *Alias) Kind() EntityKind         { return KindAlias }
func (a *Alias) EntityName() string       { return a.Name }
func (a *Alias) Qualified() QualifiedName { return a.QName }
func (a *Alias) sealed()                  {}
