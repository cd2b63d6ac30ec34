package remux

import (
	"trackmux/internal/mux"
	"trackmux/internal/plan"
	"trackmux/internal/transcode"
)

// Phase names used in logs and dry-run output.
const (
	PhaseProbe     = "probe"
	PhaseTranscode = "transcode"
	PhaseMux       = "mux"
	PhaseCleanup   = "cleanup"
)

// Step is one command in a script along with the phase that runs it.
type Step struct {
	Phase string
	// Label identifies the stream a transcode step extracts.
	Label   string
	Command Command
}

// Script is everything a run executes, in order.
type Script struct {
	Steps []Step
	// Cleanup lists the intermediates removed after a successful mux.
	Cleanup []string
}

// Phase returns the steps belonging to name.
func (s Script) Phase(name string) []Step {
	var steps []Step
	for _, step := range s.Steps {
		if step.Phase == name {
			steps = append(steps, step)
		}
	}
	return steps
}

// Commands returns the script a run of p would execute.
func (r *Runner) Commands(p *plan.Plan) Script {
	if p == nil {
		return Script{}
	}
	if p.Dummy() {
		return Script{Steps: []Step{{
			Phase:   PhaseProbe,
			Command: Command{Name: r.tools.FFmpeg, Args: transcode.ProbeArgs(p.Inputs()), Stream: true},
		}}}
	}

	jobs := transcode.Jobs(p)
	script := Script{
		Steps:   make([]Step, 0, len(jobs)+1),
		Cleanup: make([]string, 0, len(jobs)),
	}
	for _, job := range jobs {
		script.Steps = append(script.Steps, Step{
			Phase:   PhaseTranscode,
			Label:   string(job.Specifier),
			Command: Command{Name: r.tools.FFmpeg, Args: job.Args},
		})
		script.Cleanup = append(script.Cleanup, job.Output)
	}
	script.Steps = append(script.Steps, Step{
		Phase:   PhaseMux,
		Command: Command{Name: r.tools.MKVMerge, Args: mux.Args(p), Stream: true},
	})
	return script
}
