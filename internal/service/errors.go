package service

import "errors"

var (
	ErrNoHeartsAvailable  = errors.New("no hearts available")
	ErrStaleInput         = errors.New("stale input")
	ErrPersistenceFailure = errors.New("failed to persist session completion")
	ErrNoActiveSession    = errors.New("no active session")
	ErrSessionInProgress  = errors.New("session already in progress")
	ErrSessionPaused      = errors.New("session is paused")
	ErrUndoUnavailable    = errors.New("nothing to undo")
	ErrNoChallenges       = errors.New("no challenges available")
)
