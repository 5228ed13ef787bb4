package domain

import (
	"reflect"
	"testing"
)

func TestFieldNameCandidates(t *testing.T) {
	tests := []struct {
		name       string
		methodName string
		want       []string
	}{
		{"getter", "getEmail", []string{"email"}},
		{"boolean getter", "isActive", []string{"active"}},
		{"setter", "setEmail", []string{"email"}},
		{"acronym keeps exact fallback", "getURL", []string{"uRL", "URL"}},
		{"not an accessor", "issuer", []string{"issuer"}},
		{"prefix only", "get", []string{"get"}},
		{"lower-case after prefix", "settings", []string{"settings"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FieldNameCandidates(tt.methodName); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FieldNameCandidates(%q) = %v, want %v", tt.methodName, got, tt.want)
			}
		})
	}
}

func TestIsGetter(t *testing.T) {
	tests := []struct {
		methodName string
		want       bool
	}{
		{"getEmail", true},
		{"isActive", true},
		{"setEmail", false},
		{"issue", false},
		{"getter", false},
	}

	for _, tt := range tests {
		t.Run(tt.methodName, func(t *testing.T) {
			if got := IsGetter(tt.methodName); got != tt.want {
				t.Errorf("IsGetter(%q) = %v, want %v", tt.methodName, got, tt.want)
			}
		})
	}
}

func TestSimpleName(t *testing.T) {
	tests := map[string]string{
		"com.example.User": "User",
		"User":             "User",
		"":                 "",
	}

	for in, want := range tests {
		if got := SimpleName(in); got != want {
			t.Errorf("SimpleName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestUncapitalize(t *testing.T) {
	if got := Uncapitalize("Émail"); got != "émail" {
		t.Errorf("Uncapitalize = %q", got)
	}
	if got := Uncapitalize(""); got != "" {
		t.Errorf("Uncapitalize empty = %q", got)
	}
}
