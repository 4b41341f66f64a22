package core

import "testing"

func TestParseCents(t *testing.T) {
	cases := []struct {
		in  string
		out int64
		ok  bool
	}{
		{"1", 100, true},
		{"1.0", 100, true},
		{"1.23", 123, true},
		{"1,23", 123, true},
		{"0.01", 1, true},
		{"1.005", 101, true}, // half-up rounding
		{" 2.50 ", 250, true},
		{"49.90", 4990, true},
		{"-1", -100, true},
		{"0", 0, true},
		{".5", 50, true},
		{"abc", 0, false},
		{"1.2.3", 0, false},
		{"", 0, false},
		{"-", 0, false},
		{".", 0, false},
		{"1e3", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseCents(tc.in)
		if tc.ok {
			if err != nil || got != tc.out {
				t.Fatalf("%q expected %d, got %d (err=%v)", tc.in, tc.out, got, err)
			}
		} else {
			if err == nil {
				t.Fatalf("%q expected error", tc.in)
			}
		}
	}
}

func TestParseAmountCents(t *testing.T) {
	if _, err := ParseAmountCents("0"); err == nil {
		t.Fatal("zero amount should be rejected")
	}
	if _, err := ParseAmountCents("-3"); err == nil {
		t.Fatal("negative amount should be rejected")
	}
	got, err := ParseAmountCents("12,34")
	if err != nil || got != 1234 {
		t.Fatalf("expected 1234, got %d (err=%v)", got, err)
	}
}

func TestParseBudgetCents(t *testing.T) {
	got, err := ParseBudgetCents("0")
	if err != nil || got != 0 {
		t.Fatalf("zero budget should be accepted, got %d (err=%v)", got, err)
	}
	if _, err := ParseBudgetCents("-5"); err == nil {
		t.Fatal("negative budget should be rejected")
	}
	got, err = ParseBudgetCents("500")
	if err != nil || got != 50000 {
		t.Fatalf("expected 50000, got %d (err=%v)", got, err)
	}
}

func TestMoneyValue(t *testing.T) {
	if v := (Money{Cents: 4990}).Value(); v != 49.9 {
		t.Fatalf("expected 49.9, got %v", v)
	}
	if v := (Money{Cents: 0}).Value(); v != 0 {
		t.Fatalf("expected 0, got %v", v)
	}
}
