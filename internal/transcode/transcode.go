// Package transcode builds ffmpeg argument lists for the per-stream extraction
// phase and for the dummy pass-through run.
package transcode

import (
	"trackmux/internal/plan"
)

// Audio encoder settings: libopus at its slowest, most efficient compression
// with the channel mapping family that preserves arbitrary layouts.
const (
	audioCodec        = "libopus"
	compressionLevel  = "10"
	mappingFamily     = "255"
	subtitleCodecCopy = "copy"
)

// Job is one ffmpeg invocation that writes one intermediate artifact.
type Job struct {
	Specifier plan.Specifier
	Kind      plan.Kind
	Output    string
	Args      []string
}

// ProbeArgs lists every input and nothing else, so ffmpeg only reads the
// inputs and reports their streams.
func ProbeArgs(inputs []string) []string {
	return inputArgs(inputs, 0)
}

// AudioArgs extracts spec and re-encodes it to Opus.
func AudioArgs(inputs []string, spec plan.Specifier) []string {
	args := inputArgs(inputs, 9)
	args = append(args,
		"-map", string(spec),
		"-c:a", audioCodec,
		"-compression_level", compressionLevel,
		"-mapping_family", mappingFamily,
		plan.IntermediateName(spec, plan.KindAudio),
	)
	return args
}

// SubtitleArgs extracts spec without re-encoding.
func SubtitleArgs(inputs []string, spec plan.Specifier) []string {
	args := inputArgs(inputs, 5)
	args = append(args,
		"-map", string(spec),
		"-c:s", subtitleCodecCopy,
		plan.IntermediateName(spec, plan.KindSubtitle),
	)
	return args
}

// Jobs returns one job per selected stream: audio in bucket order, then
// subtitles in their original order.
func Jobs(p *plan.Plan) []Job {
	if p == nil {
		return nil
	}
	inputs := p.Inputs()
	audio := p.AudioStreams()
	subs := p.Subtitles()
	jobs := make([]Job, 0, len(audio)+len(subs))
	for _, spec := range audio {
		jobs = append(jobs, Job{
			Specifier: spec,
			Kind:      plan.KindAudio,
			Output:    plan.IntermediateName(spec, plan.KindAudio),
			Args:      AudioArgs(inputs, spec),
		})
	}
	for _, spec := range subs {
		jobs = append(jobs, Job{
			Specifier: spec,
			Kind:      plan.KindSubtitle,
			Output:    plan.IntermediateName(spec, plan.KindSubtitle),
			Args:      SubtitleArgs(inputs, spec),
		})
	}
	return jobs
}

func inputArgs(inputs []string, extra int) []string {
	args := make([]string, 0, len(inputs)*2+extra)
	for _, input := range inputs {
		args = append(args, "-i", input)
	}
	return args
}
