package preflight

import (
	"errors"
	"fmt"
	"strings"

	"trackmux/internal/plan"
)

// ErrFailed reports that at least one preflight check did not pass.
var ErrFailed = errors.New("preflight failed")

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes the checks applicable to p. workDir is where intermediates
// are written. Dummy runs only read their inputs.
func RunAll(p *plan.Plan, workDir string) []Result {
	if p == nil {
		return nil
	}

	var results []Result
	for i, input := range p.Inputs() {
		results = append(results, CheckInputFile(fmt.Sprintf("Input #%d", i+1), input))
	}
	if p.Dummy() {
		return results
	}

	results = append(results, CheckDirectoryAccess("Working directory", workDir))
	results = append(results, CheckDirectoryAccess("Destination", p.Destination()))
	return results
}

// Err folds failed results into a single error wrapping ErrFailed.
func Err(results []Result) error {
	var failed []string
	for _, r := range results {
		if !r.Passed {
			failed = append(failed, fmt.Sprintf("%s: %s", r.Name, r.Detail))
		}
	}
	if len(failed) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrFailed, strings.Join(failed, "; "))
}
