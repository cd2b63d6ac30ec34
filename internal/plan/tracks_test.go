package plan

import (
	"reflect"
	"testing"
)

func TestIntermediateName(t *testing.T) {
	tests := []struct {
		spec     Specifier
		kind     Kind
		expected string
	}{
		{"0:1", KindAudio, "0_1.ogg"},
		{"0:1", KindSubtitle, "0_1.srt"},
		{"1:12", KindAudio, "1_12.ogg"},
		{"0:a:1", KindAudio, "0_a_1.ogg"},
	}
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := IntermediateName(tt.spec, tt.kind); got != tt.expected {
				t.Fatalf("IntermediateName(%q, %v) = %q, want %q", tt.spec, tt.kind, got, tt.expected)
			}
		})
	}
}

func TestIntermediateNameInjective(t *testing.T) {
	specs := []Specifier{"0:1", "0:2", "1:1", "1:10", "10:1", "0:11"}
	seen := map[string]string{}
	for _, spec := range specs {
		for _, kind := range []Kind{KindAudio, KindSubtitle} {
			name := IntermediateName(spec, kind)
			key := string(spec) + "/" + kind.String()
			if prev, ok := seen[name]; ok {
				t.Fatalf("collision on %q between %s and %s", name, prev, key)
			}
			seen[name] = key
		}
	}
}

func TestDefaultTrackName(t *testing.T) {
	tests := []struct {
		bucket   Bucket
		language string
		expected string
	}{
		{English, "eng", "Original"},
		{English, "rus", "Original"},
		{Ukrainian, "eng", "Dub"},
		{Ukrainian, "ukr", "Dub"},
		{Russian, "rus", "Original"},
		{Russian, "eng", "Dub"},
		{Russian, "jpn", "Dub"},
		{Other, "eng", "Dub"},
		{Other, "jpn", "Original"},
		{Other, "rus", "Original"},
		{Subtitles, "eng", "Original"},
		{Subtitles, "rus", "Dub"},
		{Subtitles, "jpn", "Dub"},
	}
	for _, tt := range tests {
		t.Run(tt.bucket.String()+"_"+tt.language, func(t *testing.T) {
			if got := DefaultTrackName(tt.bucket, tt.language); got != tt.expected {
				t.Fatalf("DefaultTrackName(%v, %q) = %q, want %q", tt.bucket, tt.language, got, tt.expected)
			}
		})
	}
}

func TestBucketLanguage(t *testing.T) {
	tests := []struct {
		bucket   Bucket
		expected string
	}{
		{English, "eng"},
		{Ukrainian, "ukr"},
		{Russian, "rus"},
		{Other, "jpn"},
		{Subtitles, "eng"},
	}
	for _, tt := range tests {
		if got := BucketLanguage(tt.bucket, "jpn"); got != tt.expected {
			t.Errorf("BucketLanguage(%v) = %q, want %q", tt.bucket, got, tt.expected)
		}
	}
}

func TestTracksConsumesNamesAcrossBuckets(t *testing.T) {
	p := mustPlan(t, Options{
		Inputs:     []string{"movie.mp4"},
		English:    []string{"0:1"},
		Ukrainian:  []string{"0:2"},
		Russian:    []string{"0:3"},
		Other:      []string{"0:4"},
		Subtitles:  []string{"0:5", "0:6"},
		TrackNames: []string{"Director", "o", "d"},
		Language:   "jpn",
		Title:      "Film",
		TitleSet:   true,
	})

	got := p.Tracks()
	want := []Track{
		{English, "0:1", KindAudio, "eng", "Director", "0_1.ogg"},
		{Ukrainian, "0:2", KindAudio, "ukr", "Original", "0_2.ogg"},
		{Russian, "0:3", KindAudio, "rus", "Dub", "0_3.ogg"},
		{Other, "0:4", KindAudio, "jpn", "Original", "0_4.ogg"},
		{Subtitles, "0:5", KindSubtitle, "eng", "Dub", "0_5.srt"},
		{Subtitles, "0:6", KindSubtitle, "eng", "Dub", "0_6.srt"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Tracks mismatch\n got: %+v\nwant: %+v", got, want)
	}

	files := p.Intermediates()
	wantFiles := []string{"0_1.ogg", "0_2.ogg", "0_3.ogg", "0_4.ogg", "0_5.srt", "0_6.srt"}
	if !reflect.DeepEqual(files, wantFiles) {
		t.Fatalf("Intermediates = %v, want %v", files, wantFiles)
	}
}
