// Package guard provides a defensive construction marker for value objects,
// entities and commands. Embedding a ConstructorGuard lets a type detect
// whether it was built through its constructor or left as a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a
// nil validation error, so that validation always fails with a meaningful
// message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. The zero value is
// "not constructed" and fails validation.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard in the constructed state. Call it only
// from a type's constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the guard was created via NewConstructorGuard,
// otherwise it returns err (or ErrDefaultConstructorGuard when err is nil).
func (g ConstructorGuard) Validate(err error) error {
	if g.isConstructed {
		return nil
	}

	if err == nil {
		return ErrDefaultConstructorGuard
	}

	return err
}
