package orchestrator

import (
	"github.com/griffnb/core-openapify/internal/console"
	"github.com/griffnb/core-openapify/internal/domain"
	"github.com/griffnb/core-openapify/internal/model"
	"github.com/griffnb/core-openapify/internal/parser/field"
)

// annotateMembers annotates the members the class access type exposes.
func (s *Service) annotateMembers(c *domain.Class, target *model.AnnotatedClass) {
	switch c.AccessType {
	case domain.AccessProperty:
		s.annotateGetters(c, target)
	case domain.AccessPublicMember:
		for i := range c.Properties {
			if c.Properties[i].Public {
				s.annotateField(c, &c.Properties[i], target)
			}
		}
		s.annotateGetters(c, target)
	case domain.AccessNone:
		for i := range c.Properties {
			if c.Properties[i].Bound {
				s.annotateField(c, &c.Properties[i], target)
			}
		}
	default:
		for i := range c.Properties {
			s.annotateField(c, &c.Properties[i], target)
		}
	}
}

func (s *Service) annotateField(c *domain.Class, p *domain.Property, target *model.AnnotatedClass) {
	s.fields.AnnotateField(c, p, target, p.Required, p.DefaultValue)
}

func (s *Service) annotateGetters(c *domain.Class, target *model.AnnotatedClass) {
	for i := range c.Methods {
		m := &c.Methods[i]
		if !domain.IsGetter(m.Name) {
			continue
		}
		required, defaultValue := accessorOverrides(c, m)
		if !s.fields.AnnotateMethod(c, m, target, required, defaultValue) {
			console.Logger.Debug("$Faint{%s.%s not annotated}", c.FullName, m.Name)
		}
	}
}

// accessorOverrides returns the method's required flag and default, falling
// back to those of the field it accesses.
func accessorOverrides(c *domain.Class, m *domain.Method) (bool, *string) {
	var (
		required     bool
		defaultValue *string
	)
	if prop, ok := field.FieldForAccessor(c, m.Name); ok {
		required, defaultValue = prop.Required, prop.DefaultValue
	}
	if m.Required != nil {
		required = *m.Required
	}
	if m.DefaultValue != nil {
		defaultValue = m.DefaultValue
	}
	return required, defaultValue
}
