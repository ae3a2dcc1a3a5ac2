package ulid

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// NewULID generates a new ULID string. Batch IDs depend on ULID's
// lexicographic time ordering so listed batches come back in upload order.
var NewULID = func() string {
	return ulid.MustNew(ulid.Timestamp(time.Now().UTC()), ulid.DefaultEntropy()).String()
}
