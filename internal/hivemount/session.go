// Package hivemount mounts an on-disk user-profile registry hive under a
// temporary alias, applies a sequence of value writes, and unmounts it.
//
// The sequence is a small state machine:
//
//	Unmounted -> Mounting -> Mounted -> Writing -> Unmounting -> Unmounted
//
// A mount failure goes straight back to Unmounted with nothing to clean up.
// A write failure still passes through Unmounting: once a hive is mounted,
// the unmount runs on every exit path, exactly once.
package hivemount

import (
	"context"
	"fmt"
	"log/slog"
	"os"
)

const regTool = "reg"

// Runner is the subset of execx.Runner the session needs.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (int, error)
}

// Session owns the collaborators for hive mutation. One Session may run any
// number of mount sequences, but aliases are an exclusive slot: a hive must
// be fully unmounted before the same alias is reused, and concurrent use of
// one alias is not supported.
type Session struct {
	runner Runner
	writer KeyWriter
	log    *slog.Logger
}

// NewSession builds a Session around the given process runner and key writer.
func NewSession(runner Runner, writer KeyWriter, log *slog.Logger) *Session {
	return &Session{runner: runner, writer: writer, log: log}
}

// WithMountedHive loads hivePath under HKLM\alias, applies writes in order,
// and unloads the hive before returning.
//
// Returned errors wrap ErrHiveNotFound, ErrMountFailed, or ErrWriteFailed.
// Partially-applied writes are preserved on write failure. Unmount failures
// are logged as warnings and never change the returned outcome.
func (s *Session) WithMountedHive(ctx context.Context, hivePath, alias string, writes []Write) error {
	if _, err := os.Stat(hivePath); err != nil {
		return fmt.Errorf("%w: %s", ErrHiveNotFound, hivePath)
	}

	s.cleanupStale(ctx, alias)

	s.log.Debug("loading hive", "hive", hivePath, "alias", alias)
	code, err := s.runner.Run(ctx, regTool, "load", `HKLM\`+alias, hivePath)
	if err != nil || code != 0 {
		// Nothing mounted; straight back to Unmounted.
		if err != nil {
			return fmt.Errorf("%w: %s under %s: %v", ErrMountFailed, hivePath, alias, err)
		}
		return fmt.Errorf("%w: %s under %s: reg load exited %d", ErrMountFailed, hivePath, alias, code)
	}

	var writeErr error
	defer func() {
		if code, err := s.runner.Run(ctx, regTool, "unload", `HKLM\`+alias); err != nil || code != 0 {
			s.log.Warn("failed to unload hive", "alias", alias, "exitCode", code, "err", err)
		} else {
			s.log.Debug("unloaded hive", "alias", alias)
		}
	}()

	for _, w := range writes {
		if writeErr = s.apply(alias, w); writeErr != nil {
			break
		}
	}
	if writeErr != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, writeErr)
	}
	return nil
}

// cleanupStale unloads a leftover mount under alias, e.g. from a crashed
// previous run. Best effort: a cleanup failure is a warning and the new
// mount attempt proceeds regardless.
func (s *Session) cleanupStale(ctx context.Context, alias string) {
	code, err := s.runner.Run(ctx, regTool, "query", `HKLM\`+alias)
	if err != nil || code != 0 {
		return // alias not active
	}

	s.log.Warn("stale hive mount detected, unloading", "alias", alias)
	if code, err := s.runner.Run(ctx, regTool, "unload", `HKLM\`+alias); err != nil || code != 0 {
		s.log.Warn("failed to unload stale mount", "alias", alias, "exitCode", code, "err", err)
	}
}

func (s *Session) apply(alias string, w Write) error {
	switch w.Kind {
	case KindDWord:
		if err := s.writer.SetDWord(alias, w.Key, w.Name, w.DWord); err != nil {
			return err
		}
		s.log.Info("set registry value", "alias", alias, "key", w.Key, "name", w.Name, "value", w.DWord)
	default:
		if err := s.writer.SetString(alias, w.Key, w.Name, w.Str); err != nil {
			return err
		}
		s.log.Info("set registry value", "alias", alias, "key", w.Key, "name", w.Name, "value", w.Str)
	}
	return nil
}
