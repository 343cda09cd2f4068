// Package ir defines the normalized intermediate representation of an
// introspection graph. These types are produced by the normalizer and
// consumed read-only by the classifier, planner, and assembler.
package ir

import "strings"

// QualifiedName is the canonical Namespace.Name identifier of an entity.
// Equality is by exact string match of both parts. The zero value means
// "no reference" (e.g. a class with no parent).
type QualifiedName struct {
	// Namespace is the owning namespace, e.g. "Gtk".
	Namespace string

	// Name is the simple entity name within the namespace, e.g. "Widget".
	Name string
}

// Qual builds a QualifiedName from its two parts.
func Qual(namespace, name string) QualifiedName {
	return QualifiedName{Namespace: namespace, Name: name}
}

// ParseQualified splits a "Namespace.Name" string into a QualifiedName.
// It returns false if the string does not contain a namespace separator.
func ParseQualified(s string) (QualifiedName, bool) {
	i := strings.IndexByte(s, '.')
	if i <= 0 || i == len(s)-1 {
		return QualifiedName{}, false
	}
	return QualifiedName{Namespace: s[:i], Name: s[i+1:]}, true
}

// String returns the canonical "Namespace.Name" form.
func (q QualifiedName) String() string {
	return q.Namespace + "." + q.Name
}

// IsZero reports whether the name is empty.
func (q QualifiedName) IsZero() bool {
	return q.Namespace == "" && q.Name == ""
}
