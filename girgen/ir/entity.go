package ir

// EntityKind identifies the category of a normalized entity.
type EntityKind int

const (
	KindClass EntityKind = iota
	KindInterface
	KindRecord
	KindEnum
	KindBitfield
	KindCallback
	KindFunction
	KindConstant
	KindAlias
)

// String returns the string representation of the entity kind.
func (k EntityKind) String() string {
	switch k {
	case KindClass:
		return "Class"
	case KindInterface:
		return "Interface"
	case KindRecord:
		return "Record"
	case KindEnum:
		return "Enum"
	case KindBitfield:
		return "Bitfield"
	case KindCallback:
		return "Callback"
	case KindFunction:
		return "Function"
	case KindConstant:
		return "Constant"
	case KindAlias:
		return "Alias"
	default:
		return "Unknown"
	}
}

// Entity is the base interface for all normalized entities. The set of
// implementations is closed so consumers can type-switch exhaustively.
type Entity interface {
	// Kind returns the entity kind for type switching.
	Kind() EntityKind

	// EntityName returns the simple name within the owning namespace.
	EntityName() string

	// Qualified returns the canonical Namespace.Name identity.
	Qualified() QualifiedName

	// Ensure only types in this package can implement Entity.
	sealed()
}
