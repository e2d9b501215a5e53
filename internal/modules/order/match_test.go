package order

import "testing"

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected int
	}{
		{"", "", 0},
		{"a", "a", 0},
		{"hello", "hello", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"a", "b", 1},
		{"ab", "a", 1},
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},

		// Case-sensitive by design: shop labels keep their casing.
		{"ABC", "abc", 3},
		{"Hello", "hello", 1},

		// Property-name shapes seen in real orders.
		{"Accent 1", "Accent 1 (optional)", 11},
		{"Main Color", "Main Color", 0},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			if got := levenshtein(tt.a, tt.b); got != tt.expected {
				t.Errorf("levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.expected)
			}
			if rev := levenshtein(tt.b, tt.a); rev != tt.expected {
				t.Errorf("levenshtein symmetry failed: (%q, %q) = %d, want %d",
					tt.b, tt.a, rev, tt.expected)
			}
		})
	}
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected float64
	}{
		{"", "", 1.0},
		{"hello", "hello", 1.0},
		{"abc", "xyz", 0.0},
		{"kitten", "sitting", 1.0 - 3.0/7.0},
		{"Accent 1", "Accent 1 (optional)", 1.0 - 11.0/19.0},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			got := similarity(tt.a, tt.b)
			if diff := got - tt.expected; diff < -0.001 || diff > 0.001 {
				t.Errorf("similarity(%q, %q) = %f, want %f", tt.a, tt.b, got, tt.expected)
			}
		})
	}
}

func TestSimilarityAboveThresholdForTypicalShopLabels(t *testing.T) {
	// The storefront decorates labels with suffixes; those must still clear
	// the acceptance threshold.
	if s := similarity("Accent 1", "Accent 1 (optional)"); s < DefaultThreshold {
		t.Errorf("similarity = %f, want >= %f", s, DefaultThreshold)
	}
	// Unrelated labels must not.
	if s := similarity("Main Color", "Add a note (optional)"); s >= DefaultThreshold {
		t.Errorf("similarity = %f, want < %f", s, DefaultThreshold)
	}
}
