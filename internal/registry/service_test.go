package registry

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/griffnb/core-openapify/internal/domain"
)

type bufferDebugger struct {
	buf bytes.Buffer
}

func (d *bufferDebugger) Printf(format string, v ...interface{}) {
	fmt.Fprintf(&d.buf, format, v...)
}

func testModel() *domain.Model {
	return &domain.Model{
		Classes: []domain.Class{
			{Name: "User", FullName: "com.example.User"},
			{Name: "Address", FullName: "com.example.Address"},
		},
		Enums: []domain.Enum{
			{TypeName: "com.example.Color", Constants: []domain.EnumConstant{{Value: "red"}}},
			{TypeName: "com.example.Color", Constants: []domain.EnumConstant{{Value: "blue"}}},
			{TypeName: "com.example.Size"},
		},
	}
}

func TestNewService(t *testing.T) {
	t.Run("creates new service with empty maps", func(t *testing.T) {
		// Act
		svc := NewService()

		// Assert
		if svc == nil {
			t.Fatal("expected service to not be nil")
		}
		if svc.classes == nil {
			t.Error("expected classes map to be initialized")
		}
		if svc.enums == nil {
			t.Error("expected enums map to be initialized")
		}
	})
}

func TestService_Register(t *testing.T) {
	t.Run("indexes classes in document order", func(t *testing.T) {
		// Arrange
		svc := NewService()

		// Act
		err := svc.Register(testModel())

		// Assert
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		classes := svc.Classes()
		if len(classes) != 2 {
			t.Fatalf("expected 2 classes, got %d", len(classes))
		}
		if classes[0].FullName != "com.example.User" || classes[1].FullName != "com.example.Address" {
			t.Errorf("unexpected class order: %s, %s", classes[0].FullName, classes[1].FullName)
		}
		if _, ok := svc.LookupClass("com.example.Address"); !ok {
			t.Error("expected Address to be found")
		}
	})

	t.Run("first enum registration wins", func(t *testing.T) {
		// Arrange
		svc := NewService()
		dbg := &bufferDebugger{}
		svc.SetDebugger(dbg)

		// Act
		if err := svc.Register(testModel()); err != nil {
			t.Fatal(err)
		}

		// Assert
		e, ok := svc.LookupEnum("com.example.Color")
		if !ok {
			t.Fatal("expected Color enum to be registered")
		}
		if e.Constants[0].Value != "red" {
			t.Errorf("expected first registration to win, got %s", e.Constants[0].Value)
		}
		if svc.Enums() != 2 {
			t.Errorf("expected 2 enums, got %d", svc.Enums())
		}
		if !bytes.Contains(dbg.buf.Bytes(), []byte("duplicate enum com.example.Color")) {
			t.Errorf("expected duplicate to be reported, got %q", dbg.buf.String())
		}
	})

	t.Run("duplicate class is an error", func(t *testing.T) {
		svc := NewService()
		m := &domain.Model{Classes: []domain.Class{
			{Name: "A", FullName: "x.A"},
			{Name: "A", FullName: "x.A"},
		}}

		if err := svc.Register(m); err == nil {
			t.Error("expected an error for a duplicate class")
		}
	})

	t.Run("nil model is a no-op", func(t *testing.T) {
		svc := NewService()
		if err := svc.Register(nil); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
		if svc.Len() != 0 {
			t.Errorf("expected no classes, got %d", svc.Len())
		}
	})
}

func TestService_LookupEnum(t *testing.T) {
	svc := NewService()
	svc.RegisterEnum(&domain.Enum{TypeName: "com.example.Color"})

	tests := []struct {
		name     string
		typeName string
		want     bool
	}{
		{name: "exact match", typeName: "com.example.Color", want: true},
		{name: "simple name does not match", typeName: "Color", want: false},
		{name: "case differs", typeName: "com.example.color", want: false},
		{name: "empty", typeName: "", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, got := svc.LookupEnum(tt.typeName); got != tt.want {
				t.Errorf("LookupEnum(%q) = %v, want %v", tt.typeName, got, tt.want)
			}
		})
	}

	if svc.RegisterEnum(&domain.Enum{}) {
		t.Error("expected enum without type name to be rejected")
	}
}
