package schema

import (
	"math"

	"github.com/go-openapi/spec"
)

func invalidNumber(f *float64) bool {
	return f != nil && (math.IsInf(*f, 0) || math.IsNaN(*f))
}

// sanitizeSchema recursively removes infinity and NaN values, which are not
// valid in JSON.
func sanitizeSchema(schema *spec.Schema) {
	if schema == nil {
		return
	}

	if invalidNumber(schema.Minimum) {
		schema.Minimum = nil
		schema.ExclusiveMinimum = false
	}
	if invalidNumber(schema.Maximum) {
		schema.Maximum = nil
		schema.ExclusiveMaximum = false
	}
	if invalidNumber(schema.MultipleOf) {
		schema.MultipleOf = nil
	}

	if schema.Default != nil {
		if f, ok := schema.Default.(float64); ok && invalidNumber(&f) {
			schema.Default = nil
		}
	}

	if len(schema.Enum) > 0 {
		validEnum := make([]interface{}, 0, len(schema.Enum))
		for _, enumVal := range schema.Enum {
			if f, ok := enumVal.(float64); ok && invalidNumber(&f) {
				continue
			}
			validEnum = append(validEnum, enumVal)
		}
		schema.Enum = validEnum
	}

	for k := range schema.Properties {
		propSchema := schema.Properties[k]
		sanitizeSchema(&propSchema)
		schema.Properties[k] = propSchema
	}

	if schema.Items != nil && schema.Items.Schema != nil {
		sanitizeSchema(schema.Items.Schema)
	}
}
