// Package schema turns annotated classes into OpenAPI schema definitions.
package schema

import (
	"github.com/go-openapi/spec"
	"github.com/shopspring/decimal"

	"github.com/griffnb/core-openapify/internal/console"
	"github.com/griffnb/core-openapify/internal/model"
)

// nameExtension carries the annotation name of a class definition.
const nameExtension = "x-name"

// BuildDefinitions builds Swagger 2.0 definitions, one object schema per class.
func BuildDefinitions(doc *model.Document) spec.Definitions {
	definitions := make(spec.Definitions)
	if doc == nil {
		return definitions
	}

	for _, c := range doc.Classes {
		name := DefinitionName(c)
		if _, exists := definitions[name]; exists {
			console.Logger.Warn("duplicate definition %s for %s, skipping", name, c.FullName)
			continue
		}
		definitions[name] = classSchema(c)
	}

	return definitions
}

// DefinitionName returns the key c is stored under in generated documents.
func DefinitionName(c *model.AnnotatedClass) string {
	if c.DefinitionName != "" {
		return c.DefinitionName
	}
	if c.Annotation != nil && c.Annotation.Name != "" {
		return c.Annotation.Name
	}
	return c.FullName
}

func classSchema(c *model.AnnotatedClass) spec.Schema {
	s := spec.Schema{
		SchemaProps: spec.SchemaProps{
			Type:       []string{OBJECT},
			Properties: make(map[string]spec.Schema),
		},
	}
	if c.Annotation != nil {
		s.Title = c.Annotation.Name
		s.Description = c.Annotation.Description
		s.AddExtension(nameExtension, c.Annotation.Name)
	}

	for _, p := range c.Properties() {
		link, _ := c.Link(p.Name)
		prop := propertySchema(p, link)
		sanitizeSchema(&prop)
		s.Properties[p.Name] = prop
		if p.Required {
			s.Required = append(s.Required, p.Name)
		}
	}

	return s
}

// propertySchema maps an annotation onto a property schema. For collections
// the value constraints describe the items.
func propertySchema(a *model.AnnotationSet, link model.PropertyLink) spec.Schema {
	value := valueSchema(a, link)

	if !a.IsArray() {
		value.Title = a.Title
		value.Description = a.Description
		if a.DefaultValue != nil {
			value.Default = DefineType(firstType(value), *a.DefaultValue)
		}
		return value
	}

	arr := spec.ArrayProperty(&value)
	arr.Title = a.Title
	arr.Description = a.Description
	arr.MaxItems = a.MaxItems
	arr.MinItems = a.MinItems
	if a.DefaultValue != nil {
		arr.Default = *a.DefaultValue
	}
	return *arr
}

// valueSchema builds the schema of a single value: a reference to a modeled
// class, or a typed primitive carrying the annotation constraints.
func valueSchema(a *model.AnnotationSet, link model.PropertyLink) spec.Schema {
	if link.Ref != "" {
		return *RefSchema(link.Ref)
	}

	schemaType, format := valueTypeOf(a, link.ValueType)
	s := spec.Schema{
		SchemaProps: spec.SchemaProps{
			Type:      []string{schemaType},
			Format:    format,
			MaxLength: a.MaxLength,
			MinLength: a.MinLength,
		},
	}
	if a.Pattern != nil {
		s.Pattern = *a.Pattern
	}
	for _, v := range a.Enumeration {
		s.Enum = append(s.Enum, DefineType(schemaType, v))
	}
	if a.Maximum != nil {
		s.Maximum = toFloat(*a.Maximum)
		s.ExclusiveMaximum = a.ExclusiveMaximum != nil && *a.ExclusiveMaximum
	}
	if a.Minimum != nil {
		s.Minimum = toFloat(*a.Minimum)
		s.ExclusiveMinimum = a.ExclusiveMinimum != nil && *a.ExclusiveMinimum
	}
	return s
}

// toFloat converts a decimal literal. Literals beyond the float64 range
// become infinities and are removed by sanitization.
func toFloat(literal string) *float64 {
	d, err := decimal.NewFromString(literal)
	if err != nil {
		return nil
	}
	f := d.InexactFloat64()
	return &f
}

func firstType(s spec.Schema) string {
	if len(s.Type) == 0 {
		return ""
	}
	return s.Type[0]
}

// valueTypeOf maps the value type of an annotated property. Unknown types that
// are not enumerations fall back to string with a debug line.
func valueTypeOf(a *model.AnnotationSet, valueType string) (string, string) {
	if valueType != "" && !IsKnownType(valueType) && len(a.Enumeration) == 0 {
		console.Logger.Debug("$Faint{no schema type for %s, using string}", valueType)
	}
	return TypeOf(valueType)
}
