// Package class builds the schema annotation of a generated class.
package class

import (
	"github.com/griffnb/core-openapify/internal/domain"
	"github.com/griffnb/core-openapify/internal/model"
)

// Annotate sets the class-level annotation on target. A class that models a
// top-level element is named after the element, any other class after its
// schema type. The description falls back to the fully-qualified name.
// It reports whether the annotation was set; an annotated target is left as is.
func Annotate(c *domain.Class, target *model.AnnotatedClass) bool {
	if c == nil || target == nil || target.Annotation != nil {
		return false
	}

	target.Annotation = &model.AnnotationSet{
		Name:        Name(c),
		Description: Description(c),
	}
	return true
}

// Name returns the schema name of c.
func Name(c *domain.Class) string {
	if c.IsElement() {
		return c.ElementName
	}
	return c.Name
}

// Description returns the documentation of c, or its full name when undocumented.
func Description(c *domain.Class) string {
	if c.Documentation != nil {
		return *c.Documentation
	}
	return c.FullName
}
