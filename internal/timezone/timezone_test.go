package timezone

import "testing"

func TestIsValid(t *testing.T) {
	if !IsValid("Europe/Paris") {
		t.Error("Europe/Paris should be valid")
	}
	if !IsValid("UTC") {
		t.Error("UTC should be valid")
	}
	if IsValid("Not/AZone") {
		t.Error("Not/AZone should be invalid")
	}
	if IsValid("") {
		t.Error("empty timezone should be invalid")
	}
}

func TestLocationFallsBackToDefault(t *testing.T) {
	loc := Location("Not/AZone")
	if loc == nil {
		t.Fatal("Location returned nil")
	}
	if loc.String() != DefaultTimezone {
		t.Fatalf("fallback location = %q, want %q", loc.String(), DefaultTimezone)
	}
}

func TestLocationValidZone(t *testing.T) {
	loc := Location("UTC")
	if loc.String() != "UTC" {
		t.Fatalf("location = %q, want UTC", loc.String())
	}
}
