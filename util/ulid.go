package util

import (
	"crypto/rand"
	"io"
	"sync"
	"time"

	"github.com/oklog/ulid"
)

var ulidpool = NewULIDPool()

type ULIDPool struct {
	entropy io.Reader
	sync.Mutex
}

func NewULIDPool() *ULIDPool {
	return &ULIDPool{
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

func (u *ULIDPool) New() ulid.ULID {
	u.Lock()
	defer u.Unlock()

	return ulid.MustNew(ulid.Timestamp(time.Now()), u.entropy)
}

// ULID returns new monotonic ULID; ULIDs made in the same millisecond are
// still ordered.
func ULID() ulid.ULID {
	return ulidpool.New()
}
