package registry

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goalmesh/goalmesh/core"
	"github.com/goalmesh/goalmesh/internal/testutil"
	"github.com/goalmesh/goalmesh/lifecycle"
)

var epoch = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

// stubFactory builds lifecycles as scriptable stubs and records them so tests
// can flip statuses after acceptance.
type stubFactory struct {
	stubs []*testutil.StubLifecycle
}

func (f *stubFactory) new(core.GoalInfo) core.Lifecycle {
	stub := &testutil.StubLifecycle{CurrentStatus: core.StatusAccepted}
	f.stubs = append(f.stubs, stub)
	return stub
}

func TestRegistry_AddTracksDistinctGoals(t *testing.T) {
	clock := testutil.NewFakeClock(epoch)
	reg := New(clock, lifecycle.New, 0)

	ids := []core.GoalID{core.NewGoalID(), core.NewGoalID(), core.NewGoalID()}
	for _, id := range ids {
		_, err := reg.Add(core.GoalInfo{ID: id})
		require.NoError(t, err)
	}

	assert.Equal(t, len(ids), reg.Len())
	for _, id := range ids {
		assert.True(t, reg.Exists(id))
	}
	assert.False(t, reg.Exists(core.NewGoalID()))
}

func TestRegistry_AddRejectsDuplicateIdentity(t *testing.T) {
	reg := New(testutil.NewFakeClock(epoch), lifecycle.New, 0)
	id := core.NewGoalID()

	_, err := reg.Add(core.GoalInfo{ID: id})
	require.NoError(t, err)

	_, err = reg.Add(core.GoalInfo{ID: id})
	require.ErrorIs(t, err, core.ErrDuplicateGoal)
	assert.Equal(t, 1, reg.Len(), "failed accept must not grow the registry")
}

func TestRegistry_AddOverwritesCallerStamp(t *testing.T) {
	clock := testutil.NewFakeClock(epoch)
	reg := New(clock, lifecycle.New, 0)

	bogus := epoch.Add(-24 * time.Hour)
	h, err := reg.Add(core.GoalInfo{ID: core.NewGoalID(), Stamp: bogus})
	require.NoError(t, err)
	assert.Equal(t, epoch, h.Info().Stamp, "caller-provided stamp must be replaced")
}

func TestRegistry_AddStampsNonDecreasing(t *testing.T) {
	clock := testutil.NewFakeClock(epoch)
	reg := New(clock, lifecycle.New, 0)

	a, err := reg.Add(core.GoalInfo{ID: core.NewGoalID()})
	require.NoError(t, err)
	b, err := reg.Add(core.GoalInfo{ID: core.NewGoalID()})
	require.NoError(t, err)

	assert.False(t, b.Info().Stamp.Before(a.Info().Stamp))
}

func TestRegistry_AddPropagatesClockError(t *testing.T) {
	clock := testutil.NewFakeClock(epoch)
	clock.Err = errors.New("clock jumped")
	reg := New(clock, lifecycle.New, 0)

	_, err := reg.Add(core.GoalInfo{ID: core.NewGoalID()})
	require.Error(t, err)
	assert.Equal(t, 0, reg.Len())
}

func TestRegistry_AddHonorsCapacity(t *testing.T) {
	reg := New(testutil.NewFakeClock(epoch), lifecycle.New, 2)

	_, err := reg.Add(core.GoalInfo{ID: core.NewGoalID()})
	require.NoError(t, err)
	_, err = reg.Add(core.GoalInfo{ID: core.NewGoalID()})
	require.NoError(t, err)

	_, err = reg.Add(core.GoalInfo{ID: core.NewGoalID()})
	require.ErrorIs(t, err, core.ErrCapacity)
	assert.Equal(t, 2, reg.Len())
}

func TestRegistry_RemoveCompactedSwapsLastIntoSlot(t *testing.T) {
	factory := &stubFactory{}
	reg := New(testutil.NewFakeClock(epoch), factory.new, 0)

	var ids []core.GoalID
	for i := 0; i < 3; i++ {
		id := core.NewGoalID()
		ids = append(ids, id)
		_, err := reg.Add(core.GoalInfo{ID: id})
		require.NoError(t, err)
	}

	require.NoError(t, reg.RemoveCompacted(0))
	assert.Equal(t, 2, reg.Len())
	assert.Equal(t, ids[2], reg.At(0).ID(), "last entry moves into the vacated slot")
	assert.Equal(t, ids[1], reg.At(1).ID())
	assert.False(t, reg.Exists(ids[0]))
	assert.Equal(t, 1, factory.stubs[0].CloseCalls, "lifecycle finalized before removal")
}

func TestRegistry_RemoveCompactedReturnsFinalizeError(t *testing.T) {
	factory := &stubFactory{}
	reg := New(testutil.NewFakeClock(epoch), factory.new, 0)

	id := core.NewGoalID()
	_, err := reg.Add(core.GoalInfo{ID: id})
	require.NoError(t, err)
	factory.stubs[0].CloseErr = errors.New("resource leak")

	err = reg.RemoveCompacted(0)
	require.Error(t, err)
	assert.Equal(t, 0, reg.Len(), "entry is removed even when finalize fails")
	assert.False(t, reg.Exists(id))
}

func TestRegistry_RemoveCompactedRejectsBadIndex(t *testing.T) {
	reg := New(testutil.NewFakeClock(epoch), lifecycle.New, 0)
	require.ErrorIs(t, reg.RemoveCompacted(0), core.ErrInvalidArgument)
	require.ErrorIs(t, reg.RemoveCompacted(-1), core.ErrInvalidArgument)
}
