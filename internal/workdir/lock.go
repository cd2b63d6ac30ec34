// Package workdir guards the directory that receives intermediate track
// files so two runs cannot overwrite each other's artifacts.
package workdir

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
)

// LockFileName is created inside the guarded directory while a run holds it.
const LockFileName = ".trackmux.lock"

// ErrLocked reports that another process already holds the directory lock.
var ErrLocked = errors.New("working directory is locked by another trackmux run")

// Lock is an exclusive advisory lock on a working directory.
type Lock struct {
	path string
	lock *flock.Flock
}

// Acquire takes the lock for dir without blocking.
func Acquire(dir string) (*Lock, error) {
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, LockFileName)
	fl := flock.New(path)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock %s: %w", path, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLocked, path)
	}
	return &Lock{path: path, lock: fl}, nil
}

// Path returns the lock file location.
func (l *Lock) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

// Release unlocks the directory. The lock file stays in place: removing it
// would let a run still holding the old file and a run creating a new one both
// believe they own the lock. Safe on a nil Lock.
func (l *Lock) Release() error {
	if l == nil || l.lock == nil {
		return nil
	}
	if err := l.lock.Unlock(); err != nil {
		return fmt.Errorf("release lock %s: %w", l.path, err)
	}
	return nil
}
