package principles

import (
	"errors"
	"strings"
	"testing"
)

func TestAllOrder(t *testing.T) {
	want := []Principle{SRP, OCP, LSP, ISP, DIP}
	got := All()
	if len(got) != len(want) {
		t.Fatalf("All() returned %d principles, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("All()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLettersSpellSOLID(t *testing.T) {
	var b strings.Builder
	for _, p := range All() {
		b.WriteString(p.Letter())
	}
	if got := b.String(); got != "SOLID" {
		t.Errorf("acronym letters = %q, want %q", got, "SOLID")
	}
}

func TestOrderMatchesAll(t *testing.T) {
	for i, p := range All() {
		if got := p.Order(); got != i+1 {
			t.Errorf("%s.Order() = %d, want %d", p, got, i+1)
		}
		if !p.Valid() {
			t.Errorf("%s.Valid() = false, want true", p)
		}
	}
	if got := Principle("tdd").Order(); got != 0 {
		t.Errorf("unknown principle Order() = %d, want 0", got)
	}
}

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want Principle
	}{
		{"srp", SRP},
		{"SRP", SRP},
		{" ocp ", OCP},
		{"L", LSP},
		{"interface segregation principle", ISP},
		{"Dependency Inversion Principle", DIP},
		{"d", DIP},
	}
	for _, tc := range cases {
		got, err := Parse(tc.in)
		if err != nil {
			t.Errorf("Parse(%q) returned error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Parse(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseUnknown(t *testing.T) {
	_, err := Parse("yagni")
	if !errors.Is(err, ErrUnknownPrinciple) {
		t.Fatalf("Parse(unknown) error = %v, want ErrUnknownPrinciple", err)
	}
}
