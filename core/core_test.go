package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoalID_ZeroIsWildcard(t *testing.T) {
	assert.True(t, ZeroGoalID.IsZero())
	assert.True(t, GoalID{}.IsZero())
	assert.False(t, NewGoalID().IsZero())
}

func TestGoalID_ParseRoundTrip(t *testing.T) {
	id := NewGoalID()
	parsed, err := ParseGoalID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	_, err = ParseGoalID("not-a-uuid")
	assert.Error(t, err)
}

func TestStatus_ActiveAndTerminalPartition(t *testing.T) {
	active := []Status{StatusAccepted, StatusExecuting, StatusCanceling}
	terminal := []Status{StatusSucceeded, StatusCanceled, StatusAborted}

	for _, s := range active {
		assert.True(t, s.IsActive(), s.String())
		assert.False(t, s.IsTerminal(), s.String())
	}
	for _, s := range terminal {
		assert.False(t, s.IsActive(), s.String())
		assert.True(t, s.IsTerminal(), s.String())
	}
	assert.False(t, StatusUnknown.IsActive())
	assert.False(t, StatusUnknown.IsTerminal())
}

func TestNewBatchError(t *testing.T) {
	assert.NoError(t, NewBatchError(nil))
	assert.NoError(t, NewBatchError([]error{nil, nil}))

	errA := errors.New("a")
	errB := errors.New("b")
	err := NewBatchError([]error{errA, nil, errB})
	require.Error(t, err)
	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errB)

	var batch *BatchError
	require.ErrorAs(t, err, &batch)
	assert.Len(t, batch.Errs, 2)
}

func TestChannelKind_String(t *testing.T) {
	names := map[ChannelKind]string{
		SubmitGoalChannel:  "submit_goal",
		CancelChannel:      "cancel",
		FetchResultChannel: "fetch_result",
		FeedbackChannel:    "feedback",
		StatusChannel:      "status",
	}
	for kind, want := range names {
		assert.Equal(t, want, kind.String())
	}
}

func TestSystemClock_Now(t *testing.T) {
	now, err := SystemClock{}.Now()
	require.NoError(t, err)
	assert.False(t, now.IsZero())
}
