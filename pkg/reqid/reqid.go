// Package reqid generates lexicographically sortable request IDs for
// correlating SDK requests with server logs. IDs are ULIDs produced from a
// shared monotonic entropy source, so IDs generated within the same
// millisecond still sort in creation order.
package reqid

import (
	"crypto/rand"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// ErrInvalid reports a malformed request ID string.
var ErrInvalid = errors.New("reqid: invalid request id")

var (
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
)

// New returns a new ULID-based request ID using the current time in UTC.
func New() string {
	return NewAt(time.Now().UTC())
}

// NewAt generates a request ID at the provided time, useful for tests.
func NewAt(t time.Time) string {
	mu.Lock()
	defer mu.Unlock()

	if entropy == nil {
		entropy = ulid.Monotonic(rand.Reader, 0)
	}

	return ulid.MustNew(ulid.Timestamp(t), entropy).String()
}

// Parse validates a request ID string and returns its canonical form.
func Parse(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrInvalid
	}

	id, err := ulid.ParseStrict(s)
	if err != nil {
		return "", ErrInvalid
	}

	return id.String(), nil
}

// Time extracts the embedded UTC timestamp from a request ID. Invalid IDs
// return the zero time.
func Time(s string) time.Time {
	id, err := ulid.ParseStrict(s)
	if err != nil {
		return time.Time{}
	}
	return ulid.Time(id.Time())
}
