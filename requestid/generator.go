package requestid

import "github.com/google/uuid"

// Generator returns a new identifier on every call.
type Generator func() string

// NewUUID returns a random version 4 UUID in canonical lowercase form.
func NewUUID() string {
	return uuid.NewString()
}
