// Package remux runs a plan end to end.
//
// A full run has three phases. Transcode launches one ffmpeg process per
// selected stream, all at once, and waits for every one of them. Mux runs
// mkvmerge over the primary input's video and the intermediates. Cleanup
// removes the intermediates, and only happens after a successful mux so a
// failed mux leaves everything needed to retry by hand. A dummy run is a
// single ffmpeg call that lists the inputs and nothing else.
//
// Every failure is fatal: the first error aborts the run and is returned
// wrapped in one of the phase sentinels.
package remux
