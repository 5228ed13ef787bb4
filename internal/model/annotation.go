// Package model holds the annotation output of a run and the enum resolution
// that feeds it.
package model

import "encoding/json"

// Schema annotation field names.
const (
	FieldName             = "name"
	FieldTitle            = "title"
	FieldDescription      = "description"
	FieldRequired         = "required"
	FieldDefaultValue     = "defaultValue"
	FieldType             = "type"
	FieldMaxItems         = "maxItems"
	FieldMinItems         = "minItems"
	FieldEnumeration      = "enumeration"
	FieldPattern          = "pattern"
	FieldMaxLength        = "maxLength"
	FieldMinLength        = "minLength"
	FieldMaximum          = "maximum"
	FieldExclusiveMaximum = "exclusiveMaximum"
	FieldMinimum          = "minimum"
	FieldExclusiveMinimum = "exclusiveMinimum"
)

// TypeArray is the only schema type an annotation sets explicitly.
const TypeArray = "array"

// AnnotationSet is the schema annotation attached to a class or a property.
// Optional fields are nil or zero when absent; Required is omitted unless true.
type AnnotationSet struct {
	Name             string   `json:"name"`
	Title            string   `json:"title,omitempty"`
	Description      string   `json:"description"`
	Required         bool     `json:"required,omitempty"`
	DefaultValue     *string  `json:"defaultValue,omitempty"`
	Type             string   `json:"type,omitempty"`
	MaxItems         *int64   `json:"maxItems,omitempty"`
	MinItems         *int64   `json:"minItems,omitempty"`
	Enumeration      []string `json:"enumeration,omitempty"`
	Pattern          *string  `json:"pattern,omitempty"`
	MaxLength        *int64   `json:"maxLength,omitempty"`
	MinLength        *int64   `json:"minLength,omitempty"`
	Maximum          *string  `json:"maximum,omitempty"`
	ExclusiveMaximum *bool    `json:"exclusiveMaximum,omitempty"`
	Minimum          *string  `json:"minimum,omitempty"`
	ExclusiveMinimum *bool    `json:"exclusiveMinimum,omitempty"`
}

// IsArray reports whether the annotation describes a collection.
func (a *AnnotationSet) IsArray() bool {
	return a.Type == TypeArray
}

// AnnotatedClass is the annotation target of one class: its own annotation and
// one annotation per property, in the order they were attached.
type AnnotatedClass struct {
	FullName string
	// DefinitionName is the key of the class in generated schema documents.
	DefinitionName string
	Annotation     *AnnotationSet

	properties map[string]*AnnotationSet
	order      []string
	links      map[string]PropertyLink
}

// PropertyLink records the value type of an annotated property and, when that
// type is itself a modeled class, the definition it refers to.
type PropertyLink struct {
	ValueType string
	Ref       string
}

// NewAnnotatedClass creates an empty target for the class with the given full name.
func NewAnnotatedClass(fullName string) *AnnotatedClass {
	return &AnnotatedClass{
		FullName:   fullName,
		properties: make(map[string]*AnnotationSet),
	}
}

// Property returns the annotation attached to the named property.
func (c *AnnotatedClass) Property(name string) (*AnnotationSet, bool) {
	a, ok := c.properties[name]
	return a, ok
}

// HasProperty reports whether the named property is already annotated.
func (c *AnnotatedClass) HasProperty(name string) bool {
	_, ok := c.properties[name]
	return ok
}

// AttachProperty stores the annotation unless the property already has one.
// It reports whether the annotation was stored.
func (c *AnnotatedClass) AttachProperty(name string, a *AnnotationSet) bool {
	if c.HasProperty(name) {
		return false
	}
	if c.properties == nil {
		c.properties = make(map[string]*AnnotationSet)
	}
	c.properties[name] = a
	c.order = append(c.order, name)
	return true
}

// Properties returns the property annotations in attachment order.
func (c *AnnotatedClass) Properties() []*AnnotationSet {
	out := make([]*AnnotationSet, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.properties[name])
	}
	return out
}

// SetLink records the value type of the named property.
func (c *AnnotatedClass) SetLink(name string, link PropertyLink) {
	if c.links == nil {
		c.links = make(map[string]PropertyLink)
	}
	c.links[name] = link
}

// Link returns the value type recorded for the named property.
func (c *AnnotatedClass) Link(name string) (PropertyLink, bool) {
	l, ok := c.links[name]
	return l, ok
}

// Document is the annotation output of a run, classes in model order.
type Document struct {
	Classes []*AnnotatedClass `json:"classes"`
}

// MarshalJSON writes the class annotation followed by its property annotations.
func (c *AnnotatedClass) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		FullName       string           `json:"fullName"`
		DefinitionName string           `json:"definitionName,omitempty"`
		Annotation     *AnnotationSet   `json:"annotation,omitempty"`
		Properties     []*AnnotationSet `json:"properties"`
	}{
		FullName:       c.FullName,
		DefinitionName: c.DefinitionName,
		Annotation:     c.Annotation,
		Properties:     c.Properties(),
	})
}
