package textutil

import "testing"

func TestTernary(t *testing.T) {
	if got := Ternary(true, "Original", "Dub"); got != "Original" {
		t.Fatalf("Ternary(true) = %q", got)
	}
	if got := Ternary(false, 1, 2); got != 2 {
		t.Fatalf("Ternary(false) = %d", got)
	}
}

func TestFirstNonEmpty(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   string
	}{
		{"first wins", []string{"/opt/ffmpeg", "ffmpeg"}, "/opt/ffmpeg"},
		{"blank skipped", []string{"  ", "ffmpeg"}, "ffmpeg"},
		{"trimmed", []string{" mkvmerge "}, "mkvmerge"},
		{"all blank", []string{"", " "}, ""},
		{"none", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FirstNonEmpty(tt.values...); got != tt.want {
				t.Fatalf("FirstNonEmpty(%q) = %q, want %q", tt.values, got, tt.want)
			}
		})
	}
}
