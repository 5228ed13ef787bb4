package field

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/griffnb/core-openapify/internal/domain"
	"github.com/griffnb/core-openapify/internal/model"
)

type mapLookup map[string]*domain.Enum

func (m mapLookup) LookupEnum(typeName string) (*domain.Enum, bool) {
	e, ok := m[typeName]
	return e, ok
}

func emailClass() *domain.Class {
	return &domain.Class{
		Name:     "User",
		FullName: "com.example.User",
		Properties: []domain.Property{
			{
				Name:          "email",
				Type:          "java.lang.String",
				Documentation: domain.Ptr("User's email"),
				Particle: &domain.Particle{
					Term: &domain.ElementDecl{
						Name: "email",
						SimpleType: &domain.SimpleType{
							Name: "EmailType",
							Facets: domain.FacetSet{
								MaxLength: domain.Ptr("255"),
								Pattern:   domain.Ptr("^.+@.+$"),
							},
						},
					},
				},
			},
			{
				Name: "active",
				Type: "java.lang.Boolean",
			},
		},
	}
}

func colorEnum() *domain.Enum {
	return &domain.Enum{
		TypeName: "com.example.Color",
		Constants: []domain.EnumConstant{
			{Value: "red", Name: "RED", Documentation: domain.Ptr("Red color")},
			{Value: "green", Name: "GREEN"},
		},
	}
}

func TestAnnotateField_EmailExample(t *testing.T) {
	t.Run("verbose description carries restrictions", func(t *testing.T) {
		// Arrange
		class := emailClass()
		target := model.NewAnnotatedClass(class.FullName)
		svc := NewService(nil, Config{VerboseDescriptions: true})

		// Act
		attached := svc.AnnotateField(class, &class.Properties[0], target, false, nil)

		// Assert
		require.True(t, attached)
		got, ok := target.Property("email")
		require.True(t, ok)
		want := &model.AnnotationSet{
			Name:        "email",
			Title:       "email",
			Description: "User's email\n\nRestrictions: \n* maxLength: 255\n* pattern: ^.+@.+$",
			MaxLength:   domain.Ptr(int64(255)),
			Pattern:     domain.Ptr("^.+@.+$"),
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("annotation mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("plain description when not verbose", func(t *testing.T) {
		class := emailClass()
		target := model.NewAnnotatedClass(class.FullName)
		svc := NewService(nil, Config{})

		svc.AnnotateField(class, &class.Properties[0], target, false, nil)

		got, ok := target.Property("email")
		require.True(t, ok)
		assert.Equal(t, "User's email", got.Description)
		require.NotNil(t, got.MaxLength)
		assert.Equal(t, int64(255), *got.MaxLength)
	})
}

func TestAnnotateField_Idempotent(t *testing.T) {
	// Arrange
	class := emailClass()
	target := model.NewAnnotatedClass(class.FullName)
	svc := NewService(nil, Config{VerboseDescriptions: true})
	require.True(t, svc.AnnotateField(class, &class.Properties[0], target, false, nil))
	first, _ := target.Property("email")

	// Act
	attached := svc.AnnotateField(class, &class.Properties[0], target, true, domain.Ptr("x"))

	// Assert
	assert.False(t, attached)
	second, _ := target.Property("email")
	assert.Same(t, first, second)
	assert.False(t, second.Required)
	assert.Nil(t, second.DefaultValue)
	assert.Len(t, target.Properties(), 1)
}

func TestAnnotateField_RequiredAndDefault(t *testing.T) {
	t.Run("required and default are copied", func(t *testing.T) {
		class := emailClass()
		target := model.NewAnnotatedClass(class.FullName)
		svc := NewService(nil, Config{})

		svc.AnnotateField(class, &class.Properties[1], target, true, domain.Ptr("true"))

		got, _ := target.Property("active")
		assert.True(t, got.Required)
		require.NotNil(t, got.DefaultValue)
		assert.Equal(t, "true", *got.DefaultValue)
		assert.Empty(t, got.Description)
	})

	t.Run("not required leaves the flag unset", func(t *testing.T) {
		class := emailClass()
		target := model.NewAnnotatedClass(class.FullName)
		svc := NewService(nil, Config{VerboseDescriptions: true})

		svc.AnnotateField(class, &class.Properties[1], target, false, nil)

		got, _ := target.Property("active")
		assert.False(t, got.Required)
		assert.Nil(t, got.DefaultValue)
		assert.Equal(t, "", got.Description)
	})
}

func TestAnnotateField_Collections(t *testing.T) {
	t.Run("enum collection with bounds", func(t *testing.T) {
		// Arrange
		maxOccurs := domain.Occurs(domain.Unbounded)
		prop := domain.Property{
			Name:          "colors",
			Type:          "java.util.List",
			Collection:    true,
			RefTypes:      []string{"com.example.Color"},
			Documentation: domain.Ptr("Palette"),
			Particle: &domain.Particle{
				MinOccurs: domain.Ptr(int64(0)),
				MaxOccurs: &maxOccurs,
			},
		}
		class := &domain.Class{Name: "Palette", FullName: "com.example.Palette", Properties: []domain.Property{prop}}
		target := model.NewAnnotatedClass(class.FullName)
		svc := NewService(mapLookup{"com.example.Color": colorEnum()}, Config{VerboseDescriptions: true})

		// Act
		svc.AnnotateField(class, &class.Properties[0], target, false, nil)

		// Assert
		got, ok := target.Property("colors")
		require.True(t, ok)
		want := &model.AnnotationSet{
			Name:        "colors",
			Title:       "colors",
			Type:        model.TypeArray,
			MinItems:    domain.Ptr(int64(0)),
			Enumeration: []string{"red", "green"},
			Description: "Palette\n\nRestrictions: \n* Enum: \n  * **red** - Red color\n  * **green**",
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("annotation mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("enum fragment precedes facets", func(t *testing.T) {
		prop := domain.Property{
			Name: "color",
			Type: "com.example.Color",
			Particle: &domain.Particle{Term: &domain.ElementDecl{
				SimpleType: &domain.SimpleType{Name: "Color", Facets: domain.FacetSet{MaxLength: domain.Ptr("5")}},
			}},
		}
		class := &domain.Class{Name: "Shape", FullName: "com.example.Shape", Properties: []domain.Property{prop}}
		target := model.NewAnnotatedClass(class.FullName)
		svc := NewService(mapLookup{"com.example.Color": colorEnum()}, Config{VerboseDescriptions: true})

		svc.AnnotateField(class, &class.Properties[0], target, false, nil)

		got, _ := target.Property("color")
		assert.Nil(t, got.MaxItems)
		assert.Empty(t, got.Type)
		assert.Equal(t,
			"\n\nRestrictions: \n* Enum: \n  * **red** - Red color\n  * **green**\n* maxLength: 5",
			got.Description)
	})

	t.Run("ambiguous item type skips enum and facets", func(t *testing.T) {
		// Arrange
		prop := domain.Property{
			Name:       "items",
			Type:       "java.util.List",
			Collection: true,
			RefTypes:   []string{"com.example.Color", "com.example.Shade"},
			Particle: &domain.Particle{
				MaxOccurs: func() *domain.Occurs { o := domain.Occurs(3); return &o }(),
				Term: &domain.ElementDecl{SimpleType: &domain.SimpleType{
					Facets: domain.FacetSet{Pattern: domain.Ptr("[a-z]+")},
				}},
			},
		}
		class := &domain.Class{Name: "Mixed", FullName: "com.example.Mixed", Properties: []domain.Property{prop}}
		target := model.NewAnnotatedClass(class.FullName)
		svc := NewService(mapLookup{"com.example.Color": colorEnum()}, Config{VerboseDescriptions: true})

		// Act
		svc.AnnotateField(class, &class.Properties[0], target, false, nil)

		// Assert
		got, _ := target.Property("items")
		assert.Equal(t, model.TypeArray, got.Type)
		require.NotNil(t, got.MaxItems)
		assert.Equal(t, int64(3), *got.MaxItems)
		assert.Nil(t, got.Enumeration)
		assert.Nil(t, got.Pattern)
		assert.Equal(t, "", got.Description)
	})
}

func TestAnnotateField_Extrema(t *testing.T) {
	t.Run("decimal bounds are structured", func(t *testing.T) {
		prop := domain.Property{
			Name: "age",
			Particle: &domain.Particle{Term: &domain.ElementDecl{SimpleType: &domain.SimpleType{
				Facets: domain.FacetSet{MaxExclusive: domain.Ptr("150"), MinInclusive: domain.Ptr("0")},
			}}},
		}
		class := &domain.Class{Name: "Person", FullName: "com.example.Person", Properties: []domain.Property{prop}}
		target := model.NewAnnotatedClass(class.FullName)
		svc := NewService(nil, Config{VerboseDescriptions: true})

		svc.AnnotateField(class, &class.Properties[0], target, false, nil)

		got, _ := target.Property("age")
		require.NotNil(t, got.Maximum)
		require.NotNil(t, got.ExclusiveMaximum)
		require.NotNil(t, got.Minimum)
		require.NotNil(t, got.ExclusiveMinimum)
		assert.Equal(t, "150", *got.Maximum)
		assert.True(t, *got.ExclusiveMaximum)
		assert.Equal(t, "0", *got.Minimum)
		assert.False(t, *got.ExclusiveMinimum)
		assert.Equal(t,
			"\n\nRestrictions: \n* maximum: 150\n* exclusiveMaximum: true\n* minimum: 0\n* exclusiveMinimum: false",
			got.Description)
	})

	t.Run("non decimal bound stays in text only", func(t *testing.T) {
		prop := domain.Property{
			Name: "born",
			Particle: &domain.Particle{Term: &domain.ElementDecl{SimpleType: &domain.SimpleType{
				Name:   "DateType",
				Facets: domain.FacetSet{MaxInclusive: domain.Ptr("2020-01-01")},
			}}},
		}
		class := &domain.Class{Name: "Person", FullName: "com.example.Person", Properties: []domain.Property{prop}}
		target := model.NewAnnotatedClass(class.FullName)
		svc := NewService(nil, Config{VerboseDescriptions: true})

		svc.AnnotateField(class, &class.Properties[0], target, false, nil)

		got, _ := target.Property("born")
		assert.Nil(t, got.Maximum)
		assert.Nil(t, got.ExclusiveMaximum)
		assert.Equal(t, "\n\nRestrictions: \n* maximum: 2020-01-01\n* exclusiveMaximum: false", got.Description)
	})
}

func TestAnnotateMethod(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		wantProp string
		wantOK   bool
	}{
		{name: "getter", method: "getEmail", wantProp: "email", wantOK: true},
		{name: "setter", method: "setEmail", wantProp: "email", wantOK: true},
		{name: "boolean getter", method: "isActive", wantProp: "active", wantOK: true},
		{name: "no matching field", method: "getPhone", wantOK: false},
		{name: "not an accessor", method: "toString", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			class := emailClass()
			target := model.NewAnnotatedClass(class.FullName)
			svc := NewService(nil, Config{})

			// Act
			attached := svc.AnnotateMethod(class, &domain.Method{Name: tt.method}, target, false, nil)

			// Assert
			assert.Equal(t, tt.wantOK, attached)
			if tt.wantOK {
				assert.True(t, target.HasProperty(tt.wantProp))
			} else {
				assert.Empty(t, target.Properties())
			}
		})
	}
}

func TestAnnotateField_NilInputs(t *testing.T) {
	svc := NewService(nil, Config{})
	target := model.NewAnnotatedClass("com.example.Empty")

	assert.False(t, svc.AnnotateField(nil, nil, target, false, nil))
	assert.False(t, svc.AnnotateField(nil, &domain.Property{Name: "x"}, nil, false, nil))
	assert.False(t, svc.AnnotateMethod(nil, &domain.Method{Name: "getX"}, target, false, nil))
}
