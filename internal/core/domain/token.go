package domain

import "errors"

// Token verification failure causes. Callers must treat all three as
// "unauthenticated"; the distinct cause exists for logging.
var (
	ErrTokenMalformed = errors.New("token malformed")
	ErrTokenSignature = errors.New("token signature invalid")
	ErrTokenExpired   = errors.New("token expired")
)
