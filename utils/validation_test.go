package utils

import "testing"

func TestParseIntField(t *testing.T) {
	n, err := ParseIntField(" 2020 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 2020 {
		t.Errorf("got %d, want 2020", n)
	}

	if _, err := ParseIntField("abc"); err == nil {
		t.Error("expected error for non-numeric input")
	}
	if _, err := ParseIntField(""); err == nil {
		t.Error("expected error for empty input")
	}
}

func TestParseOptionalIntField(t *testing.T) {
	n, err := ParseOptionalIntField("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != nil {
		t.Errorf("empty input must yield nil, got %d", *n)
	}

	n, err = ParseOptionalIntField("25000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n == nil || *n != 25000 {
		t.Errorf("got %v, want 25000", n)
	}

	if _, err := ParseOptionalIntField("abc"); err == nil {
		t.Error("expected error for non-numeric input")
	}
}
