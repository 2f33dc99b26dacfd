package handlers

import "testing"

func TestNewVerificationCode(t *testing.T) {
	for i := 0; i < 200; i++ {
		code := newVerificationCode()
		if len(code) != 4 {
			t.Fatalf("code %q has length %d, want 4", code, len(code))
		}
		if code[0] == '0' {
			t.Fatalf("code %q starts with zero", code)
		}
		for _, ch := range code {
			if ch < '0' || ch > '9' {
				t.Fatalf("code %q contains non-digit %q", code, ch)
			}
		}
	}
}
