package config

import "testing"

func TestGetEnv(t *testing.T) {
	t.Setenv("STARLANE_TEST_STR", "value")
	if got := GetEnv("STARLANE_TEST_STR", "fallback"); got != "value" {
		t.Fatalf("GetEnv = %q, want %q", got, "value")
	}
	if got := GetEnv("STARLANE_TEST_UNSET", "fallback"); got != "fallback" {
		t.Fatalf("GetEnv unset = %q, want fallback", got)
	}
}

func TestGetEnvInt64(t *testing.T) {
	t.Setenv("STARLANE_TEST_INT", "42")
	if got := GetEnvInt64("STARLANE_TEST_INT", 7); got != 42 {
		t.Fatalf("GetEnvInt64 = %d, want 42", got)
	}
	if got := GetEnvInt64("STARLANE_TEST_UNSET", 7); got != 7 {
		t.Fatalf("GetEnvInt64 unset = %d, want 7", got)
	}
	t.Setenv("STARLANE_TEST_BAD", "not-a-number")
	if got := GetEnvInt64("STARLANE_TEST_BAD", 7); got != 7 {
		t.Fatalf("GetEnvInt64 malformed = %d, want 7", got)
	}
}
