package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goalmesh/goalmesh/core"
)

func newHandle(t *testing.T) *Handle {
	t.Helper()
	h, ok := New(core.GoalInfo{ID: core.NewGoalID()}).(*Handle)
	require.True(t, ok)
	return h
}

func TestHandle_StartsAccepted(t *testing.T) {
	h := newHandle(t)
	assert.Equal(t, core.StatusAccepted, h.Status())
	assert.True(t, h.Active())
	assert.True(t, h.Cancelable())
}

func TestHandle_TransitionTable(t *testing.T) {
	tests := []struct {
		name   string
		events []Event
		want   core.Status
	}{
		{"execute", []Event{EventExecute}, core.StatusExecuting},
		{"cancel from accepted", []Event{EventCancelGoal}, core.StatusCanceling},
		{"cancel while executing", []Event{EventExecute, EventCancelGoal}, core.StatusCanceling},
		{"succeed", []Event{EventExecute, EventSucceed}, core.StatusSucceeded},
		{"abort", []Event{EventExecute, EventAbort}, core.StatusAborted},
		{"canceled", []Event{EventExecute, EventCancelGoal, EventCanceled}, core.StatusCanceled},
		{"succeed after cancel", []Event{EventExecute, EventCancelGoal, EventSucceed}, core.StatusSucceeded},
		{"abort after cancel", []Event{EventCancelGoal, EventAbort}, core.StatusAborted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHandle(t)
			for _, ev := range tt.events {
				require.NoError(t, h.Apply(ev))
			}
			assert.Equal(t, tt.want, h.Status())
		})
	}
}

func TestHandle_InvalidTransitions(t *testing.T) {
	tests := []struct {
		name   string
		events []Event
		bad    Event
	}{
		{"succeed before executing", nil, EventSucceed},
		{"canceled without canceling", []Event{EventExecute}, EventCanceled},
		{"execute twice", []Event{EventExecute}, EventExecute},
		{"cancel a canceling goal", []Event{EventCancelGoal}, EventCancelGoal},
		{"event on terminal goal", []Event{EventExecute, EventSucceed}, EventExecute},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHandle(t)
			for _, ev := range tt.events {
				require.NoError(t, h.Apply(ev))
			}
			before := h.Status()
			err := h.Apply(tt.bad)
			require.Error(t, err)
			assert.Equal(t, before, h.Status(), "failed transition must not change status")
		})
	}
}

func TestHandle_CancelableExcludesCanceling(t *testing.T) {
	h := newHandle(t)
	require.NoError(t, h.Cancel())
	assert.True(t, h.Active(), "canceling is still active")
	assert.False(t, h.Cancelable(), "canceling goal is not cancelable again")
}

func TestHandle_TerminalIsInactive(t *testing.T) {
	h := newHandle(t)
	require.NoError(t, h.Execute())
	require.NoError(t, h.Succeed())
	assert.False(t, h.Active())
	assert.False(t, h.Cancelable())
}

func TestHandle_CloseRejectsFurtherEvents(t *testing.T) {
	h := newHandle(t)
	require.NoError(t, h.Close())
	require.NoError(t, h.Close(), "close is idempotent")
	assert.Error(t, h.Execute())
}
