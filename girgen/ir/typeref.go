package ir

// TypeRef is a resolved reference to a type. Name is either an intrinsic
// primitive name (never looked up) or a fully qualified "Namespace.Entity"
// produced by the normalizer. CType is the native spelling and is carried
// through opaquely.
type TypeRef struct {
	Name    string   `json:"name"`
	CType   string   `json:"cType,omitempty"`
	IsArray bool     `json:"isArray,omitempty"`
	Element *TypeRef `json:"element,omitempty"`
}

// IsIntrinsic reports whether the reference names a primitive type.
func (t TypeRef) IsIntrinsic() bool {
	return IsIntrinsic(t.Name)
}

// Qualified returns the reference as a QualifiedName. The second return is
// false for intrinsics and unresolved (empty) names.
func (t TypeRef) Qualified() (QualifiedName, bool) {
	if t.Name == "" || IsIntrinsic(t.Name) {
		return QualifiedName{}, false
	}
	return ParseQualified(t.Name)
}

// intrinsics is the closed set of primitive type names that resolution
// leaves unqualified.
var intrinsics = map[string]bool{
	"none":          true,
	"gboolean":      true,
	"gchar":         true,
	"guchar":        true,
	"gint":          true,
	"guint":         true,
	"gint8":         true,
	"guint8":        true,
	"gint16":        true,
	"guint16":       true,
	"gint32":        true,
	"guint32":       true,
	"gint64":        true,
	"guint64":       true,
	"gfloat":        true,
	"gdouble":       true,
	"glong":         true,
	"gulong":        true,
	"gsize":         true,
	"gssize":        true,
	"gunichar":      true,
	"gpointer":      true,
	"gconstpointer": true,
	"utf8":          true,
	"filename":      true,
	"gchararray":    true,
	"va_list":       true,
	"GType":         true,
}

// IsIntrinsic reports whether name is a member of the closed primitive set.
func IsIntrinsic(name string) bool {
	return intrinsics[name]
}
