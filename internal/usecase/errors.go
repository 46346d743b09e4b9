package usecase

import (
	"errors"
	"fmt"
)

var (
	// ErrRunInProgress is returned when a run is triggered while another is active.
	ErrRunInProgress = errors.New("a check run is already in progress")
	// ErrNoDestination is returned when no destination channel has been set.
	ErrNoDestination = errors.New("destination channel is not set")
	// ErrUserNotRegistered is returned when unregistering an unknown user.
	ErrUserNotRegistered = errors.New("user is not registered")
)

// Resource names one of the global judge resources fetched per run.
type Resource string

const (
	ResourceProblemModels Resource = "problem-models"
	ResourceProblemInfos  Resource = "problems"
)

// GlobalFetchError aborts a run: a global resource could not be fetched.
type GlobalFetchError struct {
	Resource Resource
	Err      error
}

func (e *GlobalFetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Resource, e.Err)
}

func (e *GlobalFetchError) Unwrap() error { return e.Err }

// UserFetchError reports that the submissions of one user could not be fetched.
type UserFetchError struct {
	User string
	Err  error
}

func (e *UserFetchError) Error() string {
	return fmt.Sprintf("fetch submissions of %s: %v", e.User, e.Err)
}

func (e *UserFetchError) Unwrap() error { return e.Err }
