package engine

import "errors"

// All engine errors are local, synchronous, and recoverable by the caller;
// the HTTP layer maps them to 4xx responses.
var (
	ErrValidation        = errors.New("response does not match question kind")
	ErrUnknownQuestion   = errors.New("question not found in session")
	ErrIncompleteAnswer  = errors.New("current question has not been answered")
	ErrAlreadyCompleted  = errors.New("quiz session already completed")
	ErrAtStart           = errors.New("already at the first question")
	ErrUnknownCareerPath = errors.New("career path not found in knowledge base")
)
