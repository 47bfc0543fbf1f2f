// Package store holds the detection record log: an append-only collaborator
// with full-scan reads. The production deployment uses a hosted spreadsheet;
// the local default is sqlite. Both satisfy the same contract.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/recyclelens/backend-go/internal/models"
)

// ErrStoreUnavailable is returned when the backing service cannot be reached
// or returns malformed output for an entire read or write. Appends are not
// retried; reads degrade to an empty snapshot at the service boundary.
var ErrStoreUnavailable = errors.New("detection store unavailable")

// TimestampFormat is the second-precision write timestamp layout.
const TimestampFormat = "2006-01-02 15:04:05"

// Store is the detection record log. Append assigns the write timestamp
// itself; records are never mutated or deleted afterwards. ReadAll returns
// every stored record in storage order as an untyped table for the
// normalizer.
type Store interface {
	Append(ctx context.Context, rec models.DetectionRecord) error
	ReadAll(ctx context.Context) (models.RawTable, error)
}

// nowFunc is injectable for tests.
type nowFunc func() time.Time
