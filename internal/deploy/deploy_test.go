package deploy_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osdeploy/winstage/internal/deploy"
	"github.com/osdeploy/winstage/internal/logging"
)

type recordedStep struct {
	name string
	err  error
	runs int
}

func (s *recordedStep) Name() string { return s.name }

func (s *recordedStep) Run(ctx context.Context) error {
	s.runs++
	return s.err
}

func TestSequence_RunsAllSteps(t *testing.T) {
	a := &recordedStep{name: "a"}
	b := &recordedStep{name: "b"}

	sum := deploy.NewSequence(logging.Discard(), a, b).Run(context.Background())

	assert.Equal(t, []string{"a", "b"}, sum.Completed)
	assert.Empty(t, sum.Failed)
	assert.Equal(t, 1, a.runs)
	assert.Equal(t, 1, b.runs)
}

func TestSequence_FailureIsNonFatal(t *testing.T) {
	a := &recordedStep{name: "mirror", err: errors.New("copy errors exceeded retries")}
	b := &recordedStep{name: "branding"}
	c := &recordedStep{name: "install", err: errors.New("1 of 2 packages failed")}
	d := &recordedStep{name: "app-associations"}

	sum := deploy.NewSequence(logging.Discard(), a, b, c, d).Run(context.Background())

	assert.Equal(t, []string{"branding", "app-associations"}, sum.Completed)
	assert.Equal(t, []string{"mirror", "install"}, sum.Failed)
	assert.Equal(t, 1, d.runs, "steps after a failure still run")
}

func TestSequence_Empty(t *testing.T) {
	sum := deploy.NewSequence(logging.Discard()).Run(context.Background())
	assert.Empty(t, sum.Completed)
	assert.Empty(t, sum.Failed)
}
