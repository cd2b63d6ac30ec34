// Package plan models the stream-selection plan for a single trackmux run.
//
// A Plan is built once from command-line values and never mutated afterwards.
// It owns the language buckets of audio stream specifiers, the subtitle
// specifiers, the positional track-name list, and the derived output path and
// dummy flag. It also encodes the naming rules shared by the transcode and mux
// phases: intermediate file names, bucket languages, and default track names.
//
// The String method renders the operator report printed before any process is
// spawned; its layout is stable and relied on by scripts that wrap trackmux.
package plan
