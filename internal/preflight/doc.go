// Package preflight provides readiness checks for the filesystem paths a
// trackmux run depends on.
//
// RunAll is called after the plan is built and before any child process is
// spawned: inputs must be readable files, the working directory must accept
// the intermediate artifacts, and the destination must accept the final
// container. A failed check aborts the run so no transcode work is wasted on a
// mux that cannot be written.
package preflight
