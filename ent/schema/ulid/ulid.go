package ulid

import (
	"crypto/rand"
	"database/sql/driver"
	"fmt"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// ID implements a prefixed ULID used as the primary key of every entity.
type ID string

var (
	once    sync.Once
	entropy *ulid.MonotonicEntropy
	mu      sync.Mutex
)

func defaultEntropy() *ulid.MonotonicEntropy {
	once.Do(func() {
		entropy = ulid.Monotonic(rand.Reader, 0)
	})
	return entropy
}

// MustNew returns a new prefixed ULID. It panics only when the entropy
// source fails, which is not recoverable.
func MustNew(prefix string) ID {
	mu.Lock()
	defer mu.Unlock()
	return ID(prefix + ulid.MustNew(ulid.Timestamp(time.Now()), defaultEntropy()).String())
}

// Value implements driver.Valuer.
func (u ID) Value() (driver.Value, error) {
	return string(u), nil
}

// Scan implements sql.Scanner.
func (u *ID) Scan(src interface{}) error {
	if src == nil {
		return fmt.Errorf("ulid: expected a value, got nil")
	}
	switch v := src.(type) {
	case string:
		*u = ID(v)
	case []byte:
		*u = ID(v)
	case ID:
		*u = v
	default:
		return fmt.Errorf("ulid: unexpected type %T", v)
	}
	return nil
}
