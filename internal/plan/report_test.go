package plan

import "testing"

func TestStringFullReport(t *testing.T) {
	p := mustPlan(t, Options{
		Inputs:      []string{"movie.mp4", "dub.mka"},
		English:     []string{"0:1"},
		Russian:     []string{"1:0"},
		Subtitles:   []string{"0:3"},
		TrackNames:  []string{"o", "Studio"},
		Prefix:      "S01E01",
		Title:       "Show",
		TitleSet:    true,
		Destination: "/media",
	})

	want := "________________________________ ARGUMENTS ________________________________\n" +
		"Input #0001: movie.mp4\n" +
		"Input #0002: dub.mka\n" +
		"Stream HEVC: 0\n" +
		"Streams ENG: [\"0:1\"]\n" +
		"Streams UKR: []\n" +
		"Streams RUS: [\"1:0\"]\n" +
		"Streams OTH: []\n" +
		"Streams SUB: [\"0:3\"]\n" +
		"Track names: [\"Original\", \"Studio\"]\n" +
		"Language   : eng\n" +
		"Output file: Show\n" +
		"Output path: /media/S01E01.Show.mkv\n" +
		"___________________________________________________________________________\n"

	if got := p.String(); got != want {
		t.Fatalf("report mismatch\n got:\n%s\nwant:\n%s", got, want)
	}
}

func TestStringDummyReport(t *testing.T) {
	p := mustPlan(t, Options{
		Inputs:  []string{"a.mkv", "b.mkv"},
		English: []string{"0:1"},
	})

	want := "________________________________ ARGUMENTS ________________________________\n" +
		"Input #0001: a.mkv\n" +
		"Input #0002: b.mkv\n" +
		"Dummy mode!\n"

	if got := p.String(); got != want {
		t.Fatalf("report mismatch\n got:\n%s\nwant:\n%s", got, want)
	}
}
