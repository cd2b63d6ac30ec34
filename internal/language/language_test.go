package language

import "testing"

func TestDisplayName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"ukr", "Ukrainian"},
		{"RU", "Russian"},
		{"russian", "Russian"},
		{"chi", "Chinese"},
		{"ger", "German"},
		// Outside the table, CLDR names apply.
		{"tur", "Turkish"},
		{"fi", "Finnish"},
		// Unknown codes are echoed back.
		{"xyz", "XYZ"},
		{"", "Unknown"},
		{"  ", "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := DisplayName(tt.input); got != tt.expected {
				t.Errorf("DisplayName(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDisplayNameRegionalTag(t *testing.T) {
	got := DisplayName("pt-BR")
	if got == "" || got == "PT-BR" {
		t.Fatalf("expected a CLDR name for pt-BR, got %q", got)
	}
}
