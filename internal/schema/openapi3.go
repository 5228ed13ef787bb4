package schema

import (
	"github.com/getkin/kin-openapi/openapi3"

	"github.com/griffnb/core-openapify/internal/console"
	"github.com/griffnb/core-openapify/internal/model"
)

const componentsPrefix = "#/components/schemas/"

// BuildComponents builds OpenAPI 3 component schemas, one object schema per class.
func BuildComponents(doc *model.Document) openapi3.Schemas {
	schemas := make(openapi3.Schemas)
	if doc == nil {
		return schemas
	}

	for _, c := range doc.Classes {
		name := DefinitionName(c)
		if _, exists := schemas[name]; exists {
			console.Logger.Warn("duplicate component %s for %s, skipping", name, c.FullName)
			continue
		}
		schemas[name] = openapi3.NewSchemaRef("", componentSchema(c))
	}

	return schemas
}

func componentSchema(c *model.AnnotatedClass) *openapi3.Schema {
	s := openapi3.NewObjectSchema()
	if c.Annotation != nil {
		s.Title = c.Annotation.Name
		s.Description = c.Annotation.Description
		s.Extensions = map[string]any{nameExtension: c.Annotation.Name}
	}

	for _, p := range c.Properties() {
		link, _ := c.Link(p.Name)
		s.Properties[p.Name] = componentProperty(p, link)
		if p.Required {
			s.Required = append(s.Required, p.Name)
		}
	}

	return s
}

func componentProperty(a *model.AnnotationSet, link model.PropertyLink) *openapi3.SchemaRef {
	value := componentValue(a, link)

	if !a.IsArray() {
		if value.Ref != "" {
			return value
		}
		value.Value.Title = a.Title
		value.Value.Description = a.Description
		if a.DefaultValue != nil {
			value.Value.Default = DefineType(firstComponentType(value.Value), *a.DefaultValue)
		}
		return value
	}

	arr := openapi3.NewArraySchema()
	arr.Items = value
	arr.Title = a.Title
	arr.Description = a.Description
	if a.MaxItems != nil && *a.MaxItems >= 0 {
		v := uint64(*a.MaxItems)
		arr.MaxItems = &v
	}
	if a.MinItems != nil && *a.MinItems > 0 {
		arr.MinItems = uint64(*a.MinItems)
	}
	if a.DefaultValue != nil {
		arr.Default = *a.DefaultValue
	}
	return openapi3.NewSchemaRef("", arr)
}

func componentValue(a *model.AnnotationSet, link model.PropertyLink) *openapi3.SchemaRef {
	if link.Ref != "" {
		return openapi3.NewSchemaRef(componentsPrefix+link.Ref, nil)
	}

	schemaType, format := valueTypeOf(a, link.ValueType)
	s := &openapi3.Schema{
		Type:   &openapi3.Types{schemaType},
		Format: format,
	}
	if a.MaxLength != nil && *a.MaxLength >= 0 {
		v := uint64(*a.MaxLength)
		s.MaxLength = &v
	}
	if a.MinLength != nil && *a.MinLength > 0 {
		s.MinLength = uint64(*a.MinLength)
	}
	if a.Pattern != nil {
		s.Pattern = *a.Pattern
	}
	for _, v := range a.Enumeration {
		typed := DefineType(schemaType, v)
		if f, ok := typed.(float64); ok && invalidNumber(&f) {
			continue
		}
		s.Enum = append(s.Enum, typed)
	}
	if a.Maximum != nil {
		if f := toFloat(*a.Maximum); f != nil && !invalidNumber(f) {
			s.Max = f
			s.ExclusiveMax = a.ExclusiveMaximum != nil && *a.ExclusiveMaximum
		}
	}
	if a.Minimum != nil {
		if f := toFloat(*a.Minimum); f != nil && !invalidNumber(f) {
			s.Min = f
			s.ExclusiveMin = a.ExclusiveMinimum != nil && *a.ExclusiveMinimum
		}
	}
	return openapi3.NewSchemaRef("", s)
}

func firstComponentType(s *openapi3.Schema) string {
	if s.Type == nil || len(*s.Type) == 0 {
		return ""
	}
	return (*s.Type)[0]
}
