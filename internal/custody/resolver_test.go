package custody

import (
	"testing"
	"time"

	"custodia/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(n int) time.Time {
	return time.Date(2026, time.March, n, 12, 0, 0, 0, time.UTC)
}

func tx(action entity.TransactionAction, date, createdAt time.Time, userID uuid.UUID) *entity.CustodyTransaction {
	return &entity.CustodyTransaction{
		ID:        uuid.New(),
		Action:    action,
		Date:      date,
		AssetID:   uuid.New(),
		UserID:    userID,
		CreatedAt: createdAt,
	}
}

func TestResolve_EmptyHistory(t *testing.T) {
	c := Resolve(nil)

	assert.False(t, c.HasHolder())
	assert.Nil(t, c.HolderID)
}

func TestResolve_LatestIsCheckOut(t *testing.T) {
	holder := uuid.New()
	history := []*entity.CustodyTransaction{
		tx(entity.ActionCheckIn, day(1), day(1), uuid.New()),
		tx(entity.ActionCheckOut, day(3), day(3), holder),
		tx(entity.ActionCheckOut, day(2), day(2), uuid.New()),
	}

	c := Resolve(history)

	require.True(t, c.HasHolder())
	assert.Equal(t, holder, *c.HolderID)
	assert.Equal(t, day(3), c.Since)
}

func TestResolve_LatestIsCheckIn(t *testing.T) {
	history := []*entity.CustodyTransaction{
		tx(entity.ActionCheckOut, day(1), day(1), uuid.New()),
		tx(entity.ActionCheckIn, day(2), day(2), uuid.New()),
	}

	c := Resolve(history)

	assert.False(t, c.HasHolder())
}

func TestResolve_OrdersByEffectiveDateNotInsertion(t *testing.T) {
	// A backdated check-in is inserted after the check-out but dated before
	// it: the check-out is still the ledger's tip.
	holder := uuid.New()
	history := []*entity.CustodyTransaction{
		tx(entity.ActionCheckOut, day(5), day(5), holder),
		tx(entity.ActionCheckIn, day(2), day(6), uuid.New()),
	}

	c := Resolve(history)

	require.True(t, c.HasHolder())
	assert.Equal(t, holder, *c.HolderID)
}

func TestResolve_TieBrokenByInsertionOrder(t *testing.T) {
	// Same effective date: the later-inserted entry wins.
	sameDate := day(4)
	history := []*entity.CustodyTransaction{
		tx(entity.ActionCheckOut, sameDate, day(4).Add(1*time.Hour), uuid.New()),
		tx(entity.ActionCheckIn, sameDate, day(4).Add(2*time.Hour), uuid.New()),
	}

	c := Resolve(history)

	assert.False(t, c.HasHolder())
}

func TestResolve_DoesNotMutateInput(t *testing.T) {
	first := tx(entity.ActionCheckIn, day(1), day(1), uuid.New())
	second := tx(entity.ActionCheckOut, day(2), day(2), uuid.New())
	history := []*entity.CustodyTransaction{first, second}

	Resolve(history)

	assert.Same(t, first, history[0])
	assert.Same(t, second, history[1])
}

func TestResolve_CheckoutThenCheckinRoundTrip(t *testing.T) {
	holder := uuid.New()
	history := []*entity.CustodyTransaction{
		tx(entity.ActionCheckOut, day(1), day(1), holder),
	}

	c := Resolve(history)
	require.True(t, c.HasHolder())
	assert.Equal(t, holder, *c.HolderID)

	history = append(history, tx(entity.ActionCheckIn, day(2), day(2), uuid.New()))

	assert.False(t, Resolve(history).HasHolder())
}

func TestIsOverdue(t *testing.T) {
	holder := uuid.New()
	held := Custody{HolderID: &holder, Since: day(1)}
	atRest := Custody{}
	due := day(3)

	tests := []struct {
		name       string
		custody    Custody
		returnDate *time.Time
		now        time.Time
		want       bool
	}{
		{name: "past due while held", custody: held, returnDate: &due, now: day(4), want: true},
		{name: "not yet due", custody: held, returnDate: &due, now: day(2), want: false},
		{name: "no due date", custody: held, returnDate: nil, now: day(4), want: false},
		{name: "no holder", custody: atRest, returnDate: &due, now: day(4), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsOverdue(tt.custody, tt.returnDate, tt.now))
		})
	}
}
