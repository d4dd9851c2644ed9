package utils

import "testing"

func TestSlug(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain name",
			input:    "Berliner Verkehrsbetriebe",
			expected: "berliner-verkehrsbetriebe",
		},
		{
			name:     "diacritics fold",
			input:    "üstra Hannoversche Verkehrsbetriebe",
			expected: "ustra-hannoversche-verkehrsbetriebe",
		},
		{
			name:     "punctuation collapses to single dash",
			input:    "S-Bahn Berlin GmbH",
			expected: "s-bahn-berlin-gmbh",
		},
		{
			name:     "leading and trailing separators dropped",
			input:    " (DB) Regio ",
			expected: "db-regio",
		},
		{
			name:     "digits kept",
			input:    "Agentur 2000",
			expected: "agentur-2000",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slug(tt.input); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestSlugDeterministic(t *testing.T) {
	a := Slug("Wiener Linien GmbH & Co KG")
	b := Slug("Wiener Linien GmbH & Co KG")
	if a != b {
		t.Errorf("equal names should yield equal slugs, got %q and %q", a, b)
	}
}
