package security

import (
	"strings"
	"testing"
)

func TestRandomStringLengthAndAlphabet(t *testing.T) {
	t.Parallel()

	value, err := RandomString(32, "abc")
	if err != nil {
		t.Fatalf("random string: %v", err)
	}
	if len(value) != 32 {
		t.Fatalf("length = %d, want 32", len(value))
	}
	for _, char := range value {
		if !strings.ContainsRune("abc", char) {
			t.Fatalf("character %q outside alphabet", char)
		}
	}

	if _, err := RandomString(4, ""); err == nil {
		t.Fatalf("empty alphabet must error")
	}
	if value, err := RandomString(0, "abc"); err != nil || value != "" {
		t.Fatalf("zero length should produce empty string, got %q, %v", value, err)
	}
}

func TestGenerateRecoveryCodeFormat(t *testing.T) {
	t.Parallel()

	code, err := GenerateRecoveryCode()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	parts := strings.Split(code, "-")
	if len(parts) != 4 || parts[0] != "GLOW" {
		t.Fatalf("unexpected code shape: %q", code)
	}
	for _, part := range parts[1:] {
		if len(part) != 4 {
			t.Fatalf("group %q should have 4 characters", part)
		}
		if strings.ContainsAny(part, "0O1I") {
			t.Fatalf("group %q contains lookalike characters", part)
		}
	}
}

func TestNormalizeRecoveryCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "canonical", raw: "GLOW-K3QF-8N2W-PMXT", want: "GLOW-K3QF-8N2W-PMXT"},
		{name: "lowercase no dashes", raw: "glow k3qf 8n2w pmxt", want: "GLOW-K3QF-8N2W-PMXT"},
		{name: "no prefix", raw: "k3qf8n2wpmxt", want: "GLOW-K3QF-8N2W-PMXT"},
		{name: "garbage passes through", raw: " not a code ", want: "NOT A CODE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeRecoveryCode(tt.raw); got != tt.want {
				t.Fatalf("NormalizeRecoveryCode(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
