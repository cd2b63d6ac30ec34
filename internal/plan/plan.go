package plan

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// DefaultVideo selects the first stream of the first input.
	DefaultVideo = "0"
	// DefaultLanguage is the output language when none is supplied.
	DefaultLanguage = "eng"
	// DefaultDestination is the output directory when none is supplied.
	DefaultDestination = "."
	// OutputExtension is the container extension of the final artifact.
	OutputExtension = "mkv"
)

var (
	// ErrNoInputs reports a plan without any input file.
	ErrNoInputs = errors.New("at least one input file is required")
	// ErrEmptySpecifier reports a blank stream specifier.
	ErrEmptySpecifier = errors.New("empty stream specifier")
)

// Options carries the raw command-line values a Plan is built from.
type Options struct {
	Inputs      []string
	Video       string
	English     []string
	Ukrainian   []string
	Russian     []string
	Other       []string
	Subtitles   []string
	TrackNames  []string
	Language    string
	Prefix      string
	Title       string
	TitleSet    bool
	Destination string
}

// Plan is the immutable stream-selection plan for one run.
type Plan struct {
	inputs      []string
	video       string
	english     []Specifier
	ukrainian   []Specifier
	russian     []Specifier
	other       []Specifier
	subtitles   []Specifier
	trackNames  []string
	language    string
	title       string
	destination string
	outputPath  string
	dummy       bool
}

// New validates opts and builds a Plan.
func New(opts Options) (*Plan, error) {
	inputs := make([]string, 0, len(opts.Inputs))
	for i, input := range opts.Inputs {
		if strings.TrimSpace(input) == "" {
			return nil, fmt.Errorf("input #%d: empty path", i+1)
		}
		inputs = append(inputs, input)
	}
	if len(inputs) == 0 {
		return nil, ErrNoInputs
	}


	p := &Plan{
		inputs:      inputs,
		video:       strings.TrimSpace(opts.Video),
		language:    outputLanguage(opts.Language),
		title:       opts.Title,
		destination: opts.Destination,
		dummy:       !opts.TitleSet,
	}
	if p.video == "" {
		p.video = DefaultVideo
	}
	if strings.TrimSpace(p.destination) == "" {
		p.destination = DefaultDestination
	}

	buckets := []struct {
		name string
		in   []string
		out  *[]Specifier
	}{
		{"audio-english", opts.English, &p.english},
		{"audio-ukrainian", opts.Ukrainian, &p.ukrainian},
		{"audio-russian", opts.Russian, &p.russian},
		{"audio-other", opts.Other, &p.other},
		{"subtitles", opts.Subtitles, &p.subtitles},
	}
	for _, b := range buckets {
		specs, err := parseSpecifiers(b.in)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", b.name, err)
		}
		*b.out = specs
	}

	p.trackNames = make([]string, 0, len(opts.TrackNames))
	for _, name := range opts.TrackNames {
		p.trackNames = append(p.trackNames, AliasTrackName(name))
	}

	p.outputPath = OutputPath(p.destination, opts.Prefix, p.title)
	return p, nil
}

// OutputPath joins destination, the optional prefix, and title into the final
// artifact path.
func OutputPath(destination, prefix, title string) string {
	var b strings.Builder
	b.WriteString(destination)
	b.WriteString("/")
	if prefix != "" {
		b.WriteString(prefix)
		b.WriteString(".")
	}
	b.WriteString(title)
	b.WriteString(".")
	b.WriteString(OutputExtension)
	return b.String()
}

// AliasTrackName expands the single-letter track name shortcuts.
func AliasTrackName(name string) string {
	switch strings.ToLower(name) {
	case "o":
		return NameOriginal
	case "d":
		return NameDub
	default:
		return name
	}
}

// outputLanguage returns the trimmed value, or DefaultLanguage when blank.
// The value is otherwise handed to mkvmerge as given.
func outputLanguage(value string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return DefaultLanguage
}

func parseSpecifiers(values []string) ([]Specifier, error) {
	specs := make([]Specifier, 0, len(values))
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return nil, ErrEmptySpecifier
		}
		specs = append(specs, Specifier(trimmed))
	}
	return specs, nil
}

// Inputs returns the input paths in command-line order.
func (p *Plan) Inputs() []string { return cloneStrings(p.inputs) }

// PrimaryInput is the input the video stream is taken from.
func (p *Plan) PrimaryInput() string { return p.inputs[0] }

// Video returns the video stream specifier.
func (p *Plan) Video() string { return p.video }

func (p *Plan) English() []Specifier   { return cloneSpecs(p.english) }
func (p *Plan) Ukrainian() []Specifier { return cloneSpecs(p.ukrainian) }
func (p *Plan) Russian() []Specifier   { return cloneSpecs(p.russian) }
func (p *Plan) Other() []Specifier     { return cloneSpecs(p.other) }
func (p *Plan) Subtitles() []Specifier { return cloneSpecs(p.subtitles) }

// Streams returns the specifiers selected for bucket.
func (p *Plan) Streams(bucket Bucket) []Specifier {
	switch bucket {
	case English:
		return p.English()
	case Ukrainian:
		return p.Ukrainian()
	case Russian:
		return p.Russian()
	case Other:
		return p.Other()
	case Subtitles:
		return p.Subtitles()
	default:
		return nil
	}
}

// AudioStreams concatenates the audio buckets in bucket order.
func (p *Plan) AudioStreams() []Specifier {
	out := make([]Specifier, 0, len(p.english)+len(p.ukrainian)+len(p.russian)+len(p.other))
	out = append(out, p.english...)
	out = append(out, p.ukrainian...)
	out = append(out, p.russian...)
	out = append(out, p.other...)
	return out
}

// TrackNames returns the aliased track names.
func (p *Plan) TrackNames() []string { return cloneStrings(p.trackNames) }

// Language returns the output language code exactly as configured.
func (p *Plan) Language() string { return p.language }

// Title returns the output title; empty in dummy mode.
func (p *Plan) Title() string { return p.title }

// Destination returns the output directory.
func (p *Plan) Destination() string { return p.destination }

// OutputPath returns the final artifact path.
func (p *Plan) OutputPath() string { return p.outputPath }

// Dummy reports whether the run only passes the inputs through ffmpeg.
func (p *Plan) Dummy() bool { return p.dummy }

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func cloneSpecs(in []Specifier) []Specifier {
	out := make([]Specifier, len(in))
	copy(out, in)
	return out
}
