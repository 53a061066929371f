// Package custody derives an asset's current holder from its transaction
// ledger. This is the single canonical derivation: checkout preconditions,
// checkin preconditions, the custody read endpoint and the overdue scanner all
// resolve holders through this package, never through ad-hoc queries, so the
// derivation cannot diverge between call sites under backdated entries.
package custody

import (
	"sort"
	"time"

	"custodia/internal/domain/entity"

	"github.com/google/uuid"
)

// Custody is the ledger-derived custody state of one asset.
type Custody struct {
	// HolderID is the user holding the asset, or nil when the asset is at rest.
	HolderID *uuid.UUID
	// Since is the effective date of the active check-out; zero when no holder.
	Since time.Time
}

// HasHolder reports whether the asset is currently checked out.
func (c Custody) HasHolder() bool {
	return c.HolderID != nil
}

// Resolve derives the current holder from an asset's transaction history.
//
// The history may arrive in any order. Entries are ordered by effective date
// descending with insertion order (created_at, then id) breaking ties, since
// backdated entries are permitted and insertion order is not chronological
// order. The holder is the user of the head entry if and only if that entry is
// a CHECK_OUT; any other head, or an empty history, means the asset is at
// rest. The input slice is not modified.
func Resolve(history []*entity.CustodyTransaction) Custody {
	if len(history) == 0 {
		return Custody{}
	}

	ordered := make([]*entity.CustodyTransaction, len(history))
	copy(ordered, history)

	sort.SliceStable(ordered, func(i, j int) bool {
		if !ordered[i].Date.Equal(ordered[j].Date) {
			return ordered[i].Date.After(ordered[j].Date)
		}
		if !ordered[i].CreatedAt.Equal(ordered[j].CreatedAt) {
			return ordered[i].CreatedAt.After(ordered[j].CreatedAt)
		}

		return ordered[i].ID.String() > ordered[j].ID.String()
	})

	head := ordered[0]
	if head.Action != entity.ActionCheckOut {
		return Custody{}
	}

	holderID := head.UserID

	return Custody{
		HolderID: &holderID,
		Since:    head.Date,
	}
}

// IsOverdue reports whether an asset with the given derived custody and due
// date is overdue at the reference instant: a holder is present, a due date is
// set, and the due date has passed.
func IsOverdue(c Custody, returnDate *time.Time, now time.Time) bool {
	return c.HasHolder() && returnDate != nil && returnDate.Before(now)
}
