package schema

import (
	"testing"

	"github.com/go-openapi/spec"
	"github.com/stretchr/testify/assert"
)

func TestRefSchema(t *testing.T) {
	s := RefSchema("User")

	assert.True(t, IsRefSchema(s))
	assert.Equal(t, "#/definitions/User", s.Ref.String())
	assert.False(t, IsRefSchema(nil))
	assert.False(t, IsRefSchema(spec.StringProperty()))
}

func TestGetRefName(t *testing.T) {
	tests := []struct {
		ref  string
		want string
	}{
		{"#/definitions/User", "User"},
		{"#/definitions/com_example.User", "com_example.User"},
		{"#/definitions/", ""},
		{"#/components/schemas/User", ""},
	}
	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			assert.Equal(t, tt.want, getRefName(tt.ref))
		})
	}
}

func TestResolveReferences(t *testing.T) {
	t.Run("dangling reference", func(t *testing.T) {
		// Arrange
		defs := spec.Definitions{
			"Order": {SchemaProps: spec.SchemaProps{Properties: map[string]spec.Schema{
				"customer": *RefSchema("Customer"),
				"lines":    *spec.ArrayProperty(RefSchema("Line")),
			}}},
			"Line": *spec.StringProperty(),
		}

		// Act
		err := ResolveReferences(defs)

		// Assert
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Order -> #/definitions/Customer")
		assert.NotContains(t, err.Error(), "#/definitions/Line")
	})

	t.Run("no references", func(t *testing.T) {
		assert.NoError(t, ResolveReferences(spec.Definitions{"A": *spec.StringProperty()}))
	})
}
