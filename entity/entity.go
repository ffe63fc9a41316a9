// Package entity defines what a storable record is.
//
// A repository is parameterized by a value type T and its pointer type PT;
// PT must satisfy Record[T]. The compiler enforces the method set, Validate
// checks the parts the type system cannot express.
package entity

import (
	"errors"
	"fmt"
	"strings"
)

// Unset is the id of a record that has not been inserted in a repository yet.
const Unset = -1

var ErrInvalidEntity = errors.New("invalid entity type")

type Entity interface {
	// ClassName names the storage subdirectory of the type. It must not
	// depend on instance state.
	ClassName() string
	GetId() int
	SetId(id int)
	ToSerializable() map[string]any
	FromSerializable(items map[string]any)
}

// Record is the constraint repositories put on the pointer type of T.
// Equal is the query-by-example equivalence; each type decides which fields
// take part in it.
type Record[T any] interface {
	*T
	Entity
	Equal(other *T) bool
}

// Validate returns the class name of T or an error wrapping ErrInvalidEntity.
func Validate[T any, PT Record[T]]() (string, error) {

	var a, b T
	name := PT(&a).ClassName()

	if name == "" {
		return "", fmt.Errorf("%w: %T has an empty class name", ErrInvalidEntity, a)
	}
	if other := PT(&b).ClassName(); other != name {
		return "", fmt.Errorf("%w: %T class name is not stable ('%s' != '%s')", ErrInvalidEntity, a, name, other)
	}
	if name == "." || name == ".." || strings.ContainsAny(name, `/\`+"\x00") {
		return "", fmt.Errorf("%w: %T class name '%s' is not a valid directory name", ErrInvalidEntity, a, name)
	}

	return name, nil
}

// New returns a zero T with its id set to Unset.
func New[T any, PT Record[T]]() T {
	var t T
	PT(&t).SetId(Unset)
	return t
}
