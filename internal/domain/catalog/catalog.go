// Package catalog persists normalized pricing plans and matches freshly
// computed fingerprints against previously saved ones.
package catalog

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/FACorreiaa/mdr-plan-scanner/internal/domain/normalization"
)

var (
	// ErrEmptyPlanName rejects a commit without an operator-supplied name.
	ErrEmptyPlanName = errors.New("plan name is required")
	// ErrNoRecords rejects a commit with an empty normalized record set.
	ErrNoRecords = errors.New("normalized record set is empty")
	// ErrCatalogChanged reports that the catalog was modified by another
	// writer between load and append. The commit is rejected; nothing is
	// written.
	ErrCatalogChanged = errors.New("catalog changed since it was last read")
)

// Entry is one persisted catalog row: a single normalized record tagged
// with the plan it belongs to. Entries are immutable once written; the
// catalog does not enforce plan-name uniqueness, only the first-seen
// fingerprint per name is used for matching.
type Entry struct {
	PlanName    string
	Record      normalization.Record
	Fingerprint string
	CreatedAt   time.Time
}

// Store is the persistence contract for the plan catalog. Implementations
// auto-initialize an empty catalog at their configured location.
type Store interface {
	Load(ctx context.Context) ([]Entry, error)
	Append(ctx context.Context, entries []Entry) error
}

// NewEntries builds the batch of catalog rows for one plan commit. The
// whole batch shares a plan name, fingerprint and a single creation
// timestamp. Empty input is a user error caught before any store mutation.
func NewEntries(planName, fp string, records []normalization.Record, now time.Time) ([]Entry, error) {
	if strings.TrimSpace(planName) == "" {
		return nil, ErrEmptyPlanName
	}
	if len(records) == 0 {
		return nil, ErrNoRecords
	}
	entries := make([]Entry, len(records))
	for i, r := range records {
		entries[i] = Entry{
			PlanName:    planName,
			Record:      r,
			Fingerprint: fp,
			CreatedAt:   now,
		}
	}
	return entries, nil
}
