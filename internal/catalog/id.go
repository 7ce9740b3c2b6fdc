package catalog

import "github.com/oklog/ulid/v2"

// NewID returns a unique, time-ordered id for records created at runtime.
func NewID() string {
	return ulid.Make().String()
}
