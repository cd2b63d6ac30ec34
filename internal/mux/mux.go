// Package mux builds the mkvmerge argument list that combines the primary
// input's video with the intermediate audio and subtitle tracks.
package mux

import (
	"trackmux/internal/plan"
)

// Flags that keep mkvmerge from copying the primary input's own audio,
// subtitles, tags, chapters, and attachments.
var suppressFlags = []string{"-A", "-S", "-T", "-M", "-B"}

// Args constructs the mkvmerge command arguments for p.
func Args(p *plan.Plan) []string {
	if p == nil {
		return nil
	}
	tracks := p.Tracks()
	args := make([]string, 0, 16+len(tracks)*7)

	args = append(args,
		"--default-language", p.Language(),
		"--title", p.Title(),
		"-o", p.OutputPath(),
		"--language", p.Video()+":"+p.Language(),
	)
	args = append(args, suppressFlags...)
	args = append(args, p.PrimaryInput())

	for _, track := range tracks {
		// Track options apply to track 0 of the file that follows them.
		args = append(args, "--language", "0:"+track.Language)
		args = append(args, "--track-name", "0:"+track.Name)
		if track.Kind == plan.KindSubtitle {
			args = append(args, "--default-track", "0:false")
		}
		args = append(args, track.File)
	}

	return args
}
