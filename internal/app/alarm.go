package app

import "time"

// AlarmType tags a pending timed intent.
type AlarmType string

const (
	AlarmTurnEnd       AlarmType = "turn_end"
	AlarmPlayerCleanup AlarmType = "player_cleanup"
	AlarmBuzzTimeout   AlarmType = "buzz_timeout"
)

// AlarmIntent is one queued timed action. Intents live only in memory until
// they fire or are cancelled.
type AlarmIntent struct {
	Type         AlarmType
	ScheduledFor time.Time
}

// alarmQueue multiplexes several logically independent timeouts onto a single
// schedulable wake-up. The owner arms its one timer for the minimum
// ScheduledFor across all pending intents; on wake-up it drains everything
// due and re-arms for the new minimum.
//
// All methods assume the owning session's lock is held.
type alarmQueue struct {
	pending []AlarmIntent
	nextAt  time.Time // zero when nothing is armed
}

// add queues an intent and reports whether the underlying timer must be
// re-armed (only when the new intent is earlier than the current wake-up).
func (q *alarmQueue) add(intent AlarmIntent) (time.Time, bool) {
	q.pending = append(q.pending, intent)

	earliest := q.earliest()
	if q.nextAt.IsZero() || earliest.Before(q.nextAt) {
		q.nextAt = earliest
		return earliest, true
	}
	return time.Time{}, false
}

// cancel drops every pending intent of the given type, however many
// accumulated. Buzz/dismiss cycles would otherwise leave stale turn_end
// intents racing the resumed timer.
func (q *alarmQueue) cancel(alarmType AlarmType) {
	kept := q.pending[:0]
	for _, intent := range q.pending {
		if intent.Type != alarmType {
			kept = append(kept, intent)
		}
	}
	q.pending = kept
}

// takeDue removes and returns every intent whose deadline has passed.
func (q *alarmQueue) takeDue(now time.Time) []AlarmIntent {
	var due []AlarmIntent
	kept := q.pending[:0]
	for _, intent := range q.pending {
		if !intent.ScheduledFor.After(now) {
			due = append(due, intent)
		} else {
			kept = append(kept, intent)
		}
	}
	q.pending = kept
	return due
}

// rearm recomputes the wake-up after firing. It returns the new minimum
// deadline, or false when the queue is empty and the timer should stay
// disarmed.
func (q *alarmQueue) rearm() (time.Time, bool) {
	if len(q.pending) == 0 {
		q.nextAt = time.Time{}
		return time.Time{}, false
	}
	q.nextAt = q.earliest()
	return q.nextAt, true
}

// clear drops everything, e.g. on restart or forfeit.
func (q *alarmQueue) clear() {
	q.pending = nil
	q.nextAt = time.Time{}
}

func (q *alarmQueue) earliest() time.Time {
	earliest := q.pending[0].ScheduledFor
	for _, intent := range q.pending[1:] {
		if intent.ScheduledFor.Before(earliest) {
			earliest = intent.ScheduledFor
		}
	}
	return earliest
}
