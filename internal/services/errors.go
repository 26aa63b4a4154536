package services

import (
	"errors"
	"fmt"
)

// Reader terminal states. Neither confirms anything about the outfit beyond
// the generic message.
var (
	ErrOutfitNotFound = errors.New("outfit not found")
	ErrOutfitPrivate  = errors.New("outfit is private")
)

// ValidationError marks a missing or empty required field. Handlers map it to
// a 400 response; everything else from this package is a store failure and
// surfaces as a 500 with the raw message.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}
