package mirror

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Step adapts a mirror Job to the deployment sequence.
type Step struct {
	Job    Job
	Runner Runner
	Log    *slog.Logger
}

// Name implements deploy.Step.
func (s *Step) Name() string { return "mirror" }

// Run performs the mirror. A missing source is a logged warning, not an
// error; copy failures surface as an error the sequence logs and moves past.
func (s *Step) Run(ctx context.Context) error {
	class, err := Run(ctx, s.Runner, s.Log, s.Job)
	if err != nil {
		if errors.Is(err, ErrSourceMissing) {
			return nil
		}
		return err
	}
	if class.Severity() == SeverityFailure {
		return fmt.Errorf("mirror finished with %s", class)
	}
	return nil
}
