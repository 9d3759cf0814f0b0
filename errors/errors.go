package errors

import "fmt"

var (
	ErrWorkerPanic     = fmt.Errorf("worker panic")
	ErrPipelineStopped = fmt.Errorf("chat pipeline stopped")
	ErrInvalidEnvelope = fmt.Errorf("invalid chat envelope")
	ErrAlreadyStarted  = fmt.Errorf("chat handler already started")
	ErrCheckTimeout    = fmt.Errorf("permission check timed out")
	ErrEmptyWords      = fmt.Errorf("no words have been found")
)
