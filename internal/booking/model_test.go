package booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shareit/shareit-backend/internal/item"
	"github.com/shareit/shareit-backend/internal/user"
)

func TestStatusTransitions(t *testing.T) {
	all := []Status{StatusWaiting, StatusApproved, StatusRejected, StatusCanceled}

	for _, from := range all {
		for _, to := range all {
			want := from == StatusWaiting && (to == StatusApproved || to == StatusRejected)
			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}

	assert.False(t, StatusWaiting.IsTerminal())
	assert.True(t, StatusApproved.IsTerminal())
	assert.True(t, StatusRejected.IsTerminal())
	assert.True(t, StatusCanceled.IsTerminal())
}

func TestStateMatches(t *testing.T) {
	now := time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)
	at := func(h int) time.Time { return now.Add(time.Duration(h) * time.Hour) }

	past := &Booking{Start: at(-3), End: at(-1), Status: StatusApproved}
	current := &Booking{Start: at(-1), End: at(1), Status: StatusWaiting}
	startsNow := &Booking{Start: now, End: at(1), Status: StatusWaiting}
	endsNow := &Booking{Start: at(-1), End: now, Status: StatusApproved}
	future := &Booking{Start: at(1), End: at(2), Status: StatusRejected}

	tests := []struct {
		state State
		b     *Booking
		want  bool
	}{
		{StateAll, past, true},
		{StateAll, future, true},
		{StateCurrent, current, true},
		{StateCurrent, startsNow, true},
		{StateCurrent, endsNow, true},
		{StateCurrent, past, false},
		{StateCurrent, future, false},
		{StatePast, past, true},
		{StatePast, endsNow, false},
		{StateFuture, future, true},
		{StateFuture, startsNow, false},
		{StateWaiting, current, true},
		{StateWaiting, past, false},
		{StateRejected, future, true},
		{StateRejected, current, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.state.Matches(tt.b, now), "%s %v-%v", tt.state, tt.b.Start, tt.b.End)
	}
}

func TestParseState(t *testing.T) {
	st, err := ParseState("")
	require.NoError(t, err)
	assert.Equal(t, StateAll, st)

	for _, name := range []string{"ALL", "CURRENT", "PAST", "FUTURE", "WAITING", "REJECTED"} {
		st, err := ParseState(name)
		require.NoError(t, err)
		assert.Equal(t, State(name), st)
	}

	_, err = ParseState("current")
	require.Error(t, err)
	assert.Equal(t, "Unknown state: current", err.Error())
}

func TestMemoryUpdateStatusIsAtomic(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository(item.NewMemoryRepository(), user.NewMemoryRepository())

	b := &Booking{ItemID: 1, BookerID: 1, Status: StatusWaiting}
	require.NoError(t, repo.Create(ctx, b))

	const workers = 16
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		wins    int
		decided int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			to := StatusApproved
			if i%2 == 1 {
				to = StatusRejected
			}
			err := repo.UpdateStatus(ctx, b.ID, StatusWaiting, to)

			mu.Lock()
			defer mu.Unlock()
			switch err {
			case nil:
				wins++
			case ErrAlreadyDecided:
				decided++
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, wins)
	assert.Equal(t, workers-1, decided)

	assert.ErrorIs(t, repo.UpdateStatus(ctx, 404, StatusWaiting, StatusApproved), ErrNotFound)
}
