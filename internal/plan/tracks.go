package plan

import (
	"strings"

	"trackmux/internal/textutil"
)

// Track names used when the positional list runs out.
const (
	NameOriginal = "Original"
	NameDub      = "Dub"
)

// Specifier identifies one stream inside one input, as "container:stream".
type Specifier string

// Kind distinguishes the two intermediate artifact formats.
type Kind int

const (
	KindAudio Kind = iota
	KindSubtitle
)

// Extension returns the intermediate file extension for the kind.
func (k Kind) Extension() string {
	if k == KindSubtitle {
		return "srt"
	}
	return "ogg"
}

func (k Kind) String() string {
	if k == KindSubtitle {
		return "subtitle"
	}
	return "audio"
}

// Bucket is one of the selection groups that drive language tags and default
// track names. Buckets are processed in declaration order.
type Bucket int

const (
	English Bucket = iota
	Ukrainian
	Russian
	Other
	Subtitles
)

// Buckets lists every bucket in processing order.
var Buckets = []Bucket{English, Ukrainian, Russian, Other, Subtitles}

func (b Bucket) String() string {
	switch b {
	case English:
		return "ENG"
	case Ukrainian:
		return "UKR"
	case Russian:
		return "RUS"
	case Other:
		return "OTH"
	case Subtitles:
		return "SUB"
	default:
		return "UNKNOWN"
	}
}

// Kind reports the artifact kind produced for streams in the bucket.
func (b Bucket) Kind() Kind {
	if b == Subtitles {
		return KindSubtitle
	}
	return KindAudio
}

// Track is one extra track of the final container, in mux order.
type Track struct {
	Bucket    Bucket
	Specifier Specifier
	Kind      Kind
	Language  string
	Name      string
	File      string
}

// IntermediateName derives the per-stream artifact file name. Distinct
// specifiers never collide and the two kinds use different extensions.
func IntermediateName(spec Specifier, kind Kind) string {
	return strings.ReplaceAll(string(spec), ":", "_") + "." + kind.Extension()
}

// DefaultTrackName is the name given to a track of bucket once the supplied
// track names are exhausted.
func DefaultTrackName(bucket Bucket, language string) string {
	switch bucket {
	case English:
		return NameOriginal
	case Ukrainian:
		return NameDub
	case Russian:
		return textutil.Ternary(language == "rus", NameOriginal, NameDub)
	case Other:
		return textutil.Ternary(language == "eng", NameDub, NameOriginal)
	case Subtitles:
		return textutil.Ternary(language != "eng", NameDub, NameOriginal)
	default:
		return NameOriginal
	}
}

// BucketLanguage is the language tag applied to tracks of bucket. Other audio
// takes the output language; subtitles are always tagged English.
func BucketLanguage(bucket Bucket, language string) string {
	switch bucket {
	case English, Subtitles:
		return "eng"
	case Ukrainian:
		return "ukr"
	case Russian:
		return "rus"
	default:
		return language
	}
}

// Tracks returns every selected stream in mux order with its language, name,
// and intermediate file resolved. Track names are consumed by a single cursor
// across all buckets.
func (p *Plan) Tracks() []Track {
	tracks := make([]Track, 0, len(p.AudioStreams())+len(p.subtitles))
	next := 0
	for _, bucket := range Buckets {
		for _, spec := range p.Streams(bucket) {
			name := DefaultTrackName(bucket, p.language)
			if next < len(p.trackNames) {
				name = p.trackNames[next]
				next++
			}
			kind := bucket.Kind()
			tracks = append(tracks, Track{
				Bucket:    bucket,
				Specifier: spec,
				Kind:      kind,
				Language:  BucketLanguage(bucket, p.language),
				Name:      name,
				File:      IntermediateName(spec, kind),
			})
		}
	}
	return tracks
}

// Intermediates lists the artifact files the transcode phase produces, in the
// same order as Tracks.
func (p *Plan) Intermediates() []string {
	tracks := p.Tracks()
	files := make([]string, 0, len(tracks))
	for _, t := range tracks {
		files = append(files, t.File)
	}
	return files
}
