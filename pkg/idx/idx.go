// Package idx mints the lexicographically sortable identifiers used for
// user records and request correlation.
package idx

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

type ID string

var (
	mu      sync.Mutex
	once    sync.Once
	entropy *ulid.MonotonicEntropy
)

// New returns a ULID for the current UTC time. IDs minted within the same
// millisecond are still strictly increasing.
func New() ID {
	return NewAt(time.Now().UTC())
}

// NewAt returns a ULID carrying the given timestamp.
func NewAt(t time.Time) ID {
	once.Do(func() {
		entropy = ulid.Monotonic(rand.Reader, 0)
	})

	mu.Lock()
	defer mu.Unlock()
	return ID(ulid.MustNew(ulid.Timestamp(t), entropy).String())
}

func (id ID) String() string { return string(id) }
