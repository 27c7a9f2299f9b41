package slotkit

import "testing"

func TestClassNames(t *testing.T) {
	tests := []struct {
		name          string
		contributions []any
		expect        string
	}{
		{
			name:          "plain strings in order",
			contributions: []any{"a", "b", "c"},
			expect:        "a b c",
		},
		{
			name:          "whitespace-separated tokens split",
			contributions: []any{"a  b", "c"},
			expect:        "a b c",
		},
		{
			name:          "dedup keeps first occurrence",
			contributions: []any{"a b", When("c", true), When("d", false), "a"},
			expect:        "a b c",
		},
		{
			name:          "false conditions dropped",
			contributions: []any{When("x", false), When("y", true)},
			expect:        "y",
		},
		{
			name:          "empty input yields empty string",
			contributions: nil,
			expect:        "",
		},
		{
			name:          "all contributions empty or false",
			contributions: []any{"", When("x", false), nil},
			expect:        "",
		},
		{
			name:          "string slices flatten",
			contributions: []any{[]string{"a", "b"}, "c"},
			expect:        "a b c",
		},
		{
			name:          "unsupported types skipped silently",
			contributions: []any{42, "a", struct{}{}},
			expect:        "a",
		},
		{
			name:          "duplicate inside one contribution",
			contributions: []any{"a a b"},
			expect:        "a b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassNames(tt.contributions...)
			if got != tt.expect {
				t.Errorf("ClassNames() = %q, want %q", got, tt.expect)
			}
		})
	}
}

func TestClassNamesIdempotent(t *testing.T) {
	inputs := [][]any{
		{"a b", When("c", true), "a"},
		{"LayoutBeta", "LayoutBeta--gutter-normal"},
		{""},
	}
	for _, in := range inputs {
		composed := ClassNames(in...)
		recomposed := ClassNames(composed)
		if recomposed != composed {
			t.Errorf("ClassNames(ClassNames(%v)) = %q, want %q", in, recomposed, composed)
		}
	}
}

func TestClassNamesStable(t *testing.T) {
	in := []any{"a b", When("c", true), When("d", false), "e", []string{"b", "f"}}
	first := ClassNames(in...)
	for i := 0; i < 100; i++ {
		if got := ClassNames(in...); got != first {
			t.Fatalf("ClassNames not stable: got %q, want %q", got, first)
		}
	}
}
