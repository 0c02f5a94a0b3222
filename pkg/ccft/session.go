package ccft

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/thecodeteam/goodbye"
)

// Session tracks the files cleaned for the duration of a single lint run so
// they can be restored exactly once, however the run ends.
type Session struct {
	cleaner *Cleaner
	cleaned FileSet

	once       sync.Once
	restoreErr error
}

// Begin cleans paths and returns a session which must be closed to put the
// originals back. If cleaning fails part way, whatever was already cleaned
// is restored before the error is returned.
func (c *Cleaner) Begin(ctx context.Context, paths ...string) (*Session, error) {
	cleaned, err := c.Clean(ctx, paths...)
	s := &Session{cleaner: c, cleaned: cleaned}

	if err != nil {
		if rerr := s.Close(context.Background()); rerr != nil {
			return nil, errors.Join(err, rerr)
		}
		return nil, err
	}

	return s, nil
}

func (s *Session) Cleaned() FileSet {
	return s.cleaned
}

// Close restores every file cleaned by the session. A file which cannot be
// restored does not stop the others; all failures are returned together.
// Calls after the first return the first call's result.
func (s *Session) Close(ctx context.Context) error {
	s.once.Do(func() {
		if len(s.cleaned) == 0 || s.cleaner.opts.DryRun {
			return
		}

		ctx = context.WithoutCancel(ctx)
		failures := []error{}

		for _, path := range s.cleaned.Paths() {
			restored, err := s.cleaner.Restore(ctx, s.cleaner.BackupPath(path))
			if err == nil && !restored.Has(path) {
				err = fmt.Errorf("'%s' was not restored", path)
			}

			if err != nil {
				failures = append(failures, err)
			}
		}

		s.restoreErr = errors.Join(failures...)
	})

	return s.restoreErr
}

// RestoreOnExit makes sure the session is closed when the process is
// interrupted before Close is reached.
func (s *Session) RestoreOnExit() {
	goodbye.Register(func(ctx context.Context, sig os.Signal) {
		if err := s.Close(ctx); err != nil {
			s.cleaner.logger.Error().Err(err).Msg("Could not restore cleaned files")
		}
	})
}

// Run cleans paths, calls fn and restores the cleaned files afterwards, even
// if fn fails or panics.
func (c *Cleaner) Run(ctx context.Context, paths []string, fn func(ctx context.Context, cleaned FileSet) error) (err error) {
	session, err := c.Begin(ctx, paths...)
	if err != nil {
		return err
	}

	defer func() {
		if rerr := session.Close(context.Background()); rerr != nil {
			err = errors.Join(err, rerr)
		}
	}()

	return fn(ctx, session.Cleaned())
}
