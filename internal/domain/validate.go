package domain

import (
	"github.com/nobl9/govy/pkg/govy"
	"github.com/nobl9/govy/pkg/rules"
	"github.com/pkg/errors"
)

// Validate checks the structural invariants of a model document.
func Validate(m Model) error {
	return modelValidator.Validate(m)
}

var modelValidator = govy.New(
	govy.ForSlice(func(m Model) []Class { return m.Classes }).
		WithName("classes").
		Rules(uniqueClassNames()).
		IncludeForEach(classValidator),
	govy.ForSlice(func(m Model) []Enum { return m.Enums }).
		WithName("enums").
		IncludeForEach(enumValidator),
).WithName("Model")

var classValidator = govy.New(
	govy.For(func(c Class) string { return c.Name }).
		WithName("name").
		Required(),
	govy.For(func(c Class) string { return c.FullName }).
		WithName("fullName").
		Required(),
	govy.For(func(c Class) AccessType { return c.AccessType }).
		WithName("accessType").
		OmitEmpty().
		Rules(rules.OneOf(AccessField, AccessProperty, AccessPublicMember, AccessNone)),
	govy.ForSlice(func(c Class) []Property { return c.Properties }).
		WithName("properties").
		IncludeForEach(propertyValidator),
	govy.ForSlice(func(c Class) []Method { return c.Methods }).
		WithName("methods").
		IncludeForEach(methodValidator),
)

var propertyValidator = govy.New(
	govy.For(func(p Property) string { return p.Name }).
		WithName("name").
		Required(),
	govy.ForPointer(func(p Property) *Particle { return p.Particle }).
		WithName("particle").
		Include(particleValidator),
)

var particleValidator = govy.New(
	govy.ForPointer(func(p Particle) *int64 { return p.MinOccurs }).
		WithName("minOccurs").
		Rules(rules.GTE[int64](0)),
)

var methodValidator = govy.New(
	govy.For(func(m Method) string { return m.Name }).
		WithName("name").
		Required(),
)

var enumValidator = govy.New(
	govy.For(func(e Enum) string { return e.TypeName }).
		WithName("typeName").
		Required(),
)

func uniqueClassNames() govy.Rule[[]Class] {
	return govy.NewRule(func(classes []Class) error {
		seen := make(map[string]struct{}, len(classes))
		for _, c := range classes {
			if _, ok := seen[c.FullName]; ok {
				return errors.Errorf("duplicate class %q", c.FullName)
			}
			seen[c.FullName] = struct{}{}
		}
		return nil
	}).WithDescription("class full names must be unique")
}
