package actor

import (
	"github.com/google/uuid"
)

// NewRunID generates a UUID version 4 string (RFC 4122) identifying one
// stageManager invocation in log output.
func NewRunID() string {
	return uuid.NewString()
}
