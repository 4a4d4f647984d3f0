package dsl

import (
	gomold "github.com/reoring/gomold"
)

// builderLike lets Bind accept either the builder itself or the trailing
// field step of a declaration chain.
type builderLike interface {
	declarations() []gomold.Field
}

func (b *Builder) declarations() []gomold.Field   { return b.fields }
func (f *fieldStep) declarations() []gomold.Field { return f.b.fields }

// Bind matches the collected declarations against struct type T and
// installs the schema in the registry. T may also be a pointer to the
// struct type.
func Bind[T any](b builderLike) (*gomold.Schema[T], error) {
	return gomold.Register[T](b.declarations())
}

// MustBind is like Bind but panics on error. Meant for package-level
// schema variables, where a declaration mistake should fail loudly.
func MustBind[T any](b builderLike) *gomold.Schema[T] {
	s, err := Bind[T](b)
	if err != nil {
		panic(err)
	}
	return s
}
