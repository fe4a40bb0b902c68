package lang

import (
	"slices"
	"testing"
)

func TestEnv_DefineLookup(t *testing.T) {
	env := NewEnv(WithOutput(nil))

	if _, ok := env.Lookup("x"); ok {
		t.Error("lookup of undefined name must fail")
	}

	env.Define("x", IntValue(1))

	value, ok := env.Lookup("x")
	if !ok || value.Int != 1 {
		t.Errorf("expected 1, got %v (ok=%v)", value, ok)
	}

	// Redefinition overwrites; there is no scope nesting.
	env.Define("x", FloatValue(2.5))

	value, ok = env.Lookup("x")
	if !ok || value.Kind != KindFloat || value.Float != 2.5 {
		t.Errorf("expected 2.5, got %v", value)
	}

	if env.Len() != 1 {
		t.Errorf("expected 1 binding, got %d", env.Len())
	}
}

func TestEnv_Names(t *testing.T) {
	env := NewEnv(WithOutput(nil))

	env.Define("zeta", IntValue(1))
	env.Define("alpha", IntValue(2))
	env.Define("mid", IntValue(3))

	want := []string{"alpha", "mid", "zeta"}
	if got := env.Names(); !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestKeywords(t *testing.T) {
	want := []string{"else", "false", "if", "let", "print", "then", "true"}
	if got := Keywords(); !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}
