package slug

import (
	"strings"
	"testing"
)

// TestGenerate exercises the slug generator with typical project titles,
// special characters, diacritics, and boundary conditions.
func TestGenerate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		// --- Normal titles ---
		{
			name:  "simple two words",
			input: "Riverside Pavilion",
			want:  "riverside-pavilion",
		},
		{
			name:  "title with year",
			input: "Riverside Pavilion 2026",
			want:  "riverside-pavilion-2026",
		},
		{
			name:  "already lowercase",
			input: "already lowercase",
			want:  "already-lowercase",
		},
		{
			name:  "single word",
			input: "Atrium",
			want:  "atrium",
		},
		{
			name:  "mixed case sentence",
			input: "The New Wing of the City Library",
			want:  "the-new-wing-of-the-city-library",
		},

		// --- Special characters ---
		{
			name:  "punctuation marks",
			input: "Hello, World! How's it going?",
			want:  "hello-world-hows-it-going",
		},
		{
			name:  "ampersand and at sign",
			input: "Office & Retail @ Unirii",
			want:  "office-retail-unirii",
		},
		{
			name:  "parentheses and brackets",
			input: "Phase (2.0) [Concept]",
			want:  "phase-20-concept",
		},
		{
			name:  "hash and dollar",
			input: "Plot #42 costs $100",
			want:  "plot-42-costs-100",
		},
		{
			name:  "underscores become separators",
			input: "north_tower_facade",
			want:  "north-tower-facade",
		},

		// --- Diacritics ---
		{
			name:  "romanian diacritics folded",
			input: "Casa Brâncuși",
			want:  "casa-brancusi",
		},
		{
			name:  "romanian street name",
			input: "Ansamblul Țiriac, Șoseaua Nordului",
			want:  "ansamblul-tiriac-soseaua-nordului",
		},
		{
			name:  "cedilla variants folded",
			input: "Piaţa Veche",
			want:  "piata-veche",
		},
		{
			name:  "french accents folded",
			input: "Café Révérence",
			want:  "cafe-reverence",
		},
		{
			name:  "german sharp s",
			input: "Straße 9",
			want:  "strasse-9",
		},
		{
			name:  "non-latin characters stripped",
			input: "проект tower",
			want:  "tower",
		},

		// --- Hyphen handling ---
		{
			name:  "existing hyphens kept",
			input: "mixed-use tower",
			want:  "mixed-use-tower",
		},
		{
			name:  "consecutive separators collapsed",
			input: "a  --  b",
			want:  "a-b",
		},
		{
			name:  "leading and trailing separators trimmed",
			input: "  --Edge Case--  ",
			want:  "edge-case",
		},

		// --- Edge cases ---
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "only punctuation",
			input: "!?!...",
			want:  "",
		},
		{
			name:  "only digits",
			input: "2026",
			want:  "2026",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Generate(tt.input); got != tt.want {
				t.Errorf("Generate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestGenerateLength(t *testing.T) {
	long := strings.Repeat("pavilion ", 30)
	got := Generate(long)

	if len(got) > maxLen {
		t.Errorf("slug length %d exceeds cap %d", len(got), maxLen)
	}
	// The cap cuts at a word boundary, never mid-word.
	if strings.HasSuffix(got, "-") {
		t.Errorf("slug ends with a hyphen: %q", got)
	}
	for _, part := range strings.Split(got, "-") {
		if part != "pavilion" {
			t.Errorf("truncation split a word: %q", part)
		}
	}
}
