// Package deploy runs the staging steps in a fixed order with per-step
// failure isolation: a failed step is logged and the sequence continues.
// There is no rollback; partially-applied state from a failed step is left
// as-is for the imaging engineer to inspect.
package deploy

import (
	"context"
	"log/slog"
	"time"
)

// Step is one unit of the deployment sequence.
type Step interface {
	Name() string
	Run(ctx context.Context) error
}

// Summary reports what the sequence did.
type Summary struct {
	Completed []string
	Failed    []string
	Elapsed   time.Duration
}

// Sequence runs steps strictly one after another.
type Sequence struct {
	log   *slog.Logger
	steps []Step
}

// NewSequence builds a sequence over the given steps.
func NewSequence(log *slog.Logger, steps ...Step) *Sequence {
	return &Sequence{log: log, steps: steps}
}

// Run executes every step in order. Step errors are logged and swallowed;
// the summary is the only global outcome.
func (s *Sequence) Run(ctx context.Context) Summary {
	start := time.Now()
	var sum Summary

	for _, step := range s.steps {
		s.log.Info("step starting", "step", step.Name())
		if err := step.Run(ctx); err != nil {
			s.log.Error("step failed, continuing", "step", step.Name(), "err", err)
			sum.Failed = append(sum.Failed, step.Name())
			continue
		}
		s.log.Info("step completed", "step", step.Name())
		sum.Completed = append(sum.Completed, step.Name())
	}

	sum.Elapsed = time.Since(start)
	s.log.Info("deployment sequence finished",
		"completed", len(sum.Completed), "failed", len(sum.Failed), "elapsed", sum.Elapsed)
	return sum
}
