package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlarmQueue_AddRearmsOnlyWhenEarlier(t *testing.T) {
	q := &alarmQueue{}
	base := time.Unix(1000, 0)

	at, rearm := q.add(AlarmIntent{Type: AlarmTurnEnd, ScheduledFor: base.Add(60 * time.Second)})
	require.True(t, rearm)
	assert.Equal(t, base.Add(60*time.Second), at)

	// Later intent: no rearm needed
	_, rearm = q.add(AlarmIntent{Type: AlarmPlayerCleanup, ScheduledFor: base.Add(90 * time.Second)})
	assert.False(t, rearm)

	// Earlier intent: wake-up moves forward
	at, rearm = q.add(AlarmIntent{Type: AlarmBuzzTimeout, ScheduledFor: base.Add(10 * time.Second)})
	require.True(t, rearm)
	assert.Equal(t, base.Add(10*time.Second), at)
}

func TestAlarmQueue_CancelRemovesAllOfType(t *testing.T) {
	q := &alarmQueue{}
	base := time.Unix(1000, 0)

	// Stale intents of the same type can accumulate across buzz cycles
	q.add(AlarmIntent{Type: AlarmTurnEnd, ScheduledFor: base.Add(30 * time.Second)})
	q.add(AlarmIntent{Type: AlarmTurnEnd, ScheduledFor: base.Add(45 * time.Second)})
	q.add(AlarmIntent{Type: AlarmPlayerCleanup, ScheduledFor: base.Add(20 * time.Second)})

	q.cancel(AlarmTurnEnd)

	require.Len(t, q.pending, 1)
	assert.Equal(t, AlarmPlayerCleanup, q.pending[0].Type)
}

func TestAlarmQueue_TakeDueDrainsEverythingDue(t *testing.T) {
	q := &alarmQueue{}
	base := time.Unix(1000, 0)

	q.add(AlarmIntent{Type: AlarmTurnEnd, ScheduledFor: base.Add(5 * time.Second)})
	q.add(AlarmIntent{Type: AlarmPlayerCleanup, ScheduledFor: base.Add(10 * time.Second)})
	q.add(AlarmIntent{Type: AlarmBuzzTimeout, ScheduledFor: base.Add(20 * time.Second)})

	// Both due intents fire in one wake-up, not just the earliest
	due := q.takeDue(base.Add(10 * time.Second))
	require.Len(t, due, 2)
	assert.Equal(t, AlarmTurnEnd, due[0].Type)
	assert.Equal(t, AlarmPlayerCleanup, due[1].Type)

	require.Len(t, q.pending, 1)
	assert.Equal(t, AlarmBuzzTimeout, q.pending[0].Type)
}

func TestAlarmQueue_RearmToRemainingMinimum(t *testing.T) {
	q := &alarmQueue{}
	base := time.Unix(1000, 0)

	q.add(AlarmIntent{Type: AlarmTurnEnd, ScheduledFor: base.Add(5 * time.Second)})
	q.add(AlarmIntent{Type: AlarmPlayerCleanup, ScheduledFor: base.Add(15 * time.Second)})
	q.takeDue(base.Add(5 * time.Second))

	at, ok := q.rearm()
	require.True(t, ok)
	assert.Equal(t, base.Add(15*time.Second), at)

	q.takeDue(base.Add(15 * time.Second))
	_, ok = q.rearm()
	assert.False(t, ok)
	assert.True(t, q.nextAt.IsZero())
}

func TestAlarmQueue_Clear(t *testing.T) {
	q := &alarmQueue{}
	q.add(AlarmIntent{Type: AlarmTurnEnd, ScheduledFor: time.Unix(1000, 0)})

	q.clear()

	assert.Empty(t, q.pending)
	assert.True(t, q.nextAt.IsZero())
}
