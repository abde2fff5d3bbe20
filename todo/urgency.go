package todo

import (
	"math"
	"time"
)

// Contributions to the urgency, loosely following https://taskwarrior.org/docs/urgency/.
const (
	urgencyCompleted = -100.0
	urgencyNext      = 15.0
	urgencyDue       = 4.0
	urgencyDueNear   = 8.0 // Also the numerator of the decay for farther due dates.
	urgencyTags      = 1.0
	urgencyBlocked   = -5.0
	urgencyBlocking  = 8.0
)

var urgencyPriority = map[string]float64{
	"H": 6,
	"M": 3.9,
	"L": 1.8,
}

// Urgency scores a todo; higher is more urgent. Completed todos score below every other todo,
// the most recently updated first. The blocked and blocking contributions are only meaningful
// after TagRelations.
func Urgency(t *Todo, now time.Time) float64 {
	var u float64
	if t.IsCompleted() {
		u = urgencyCompleted + float64(t.Updated)/1e13
	}
	if t.Metadata.Has("next") {
		u += urgencyNext
	}
	if due, ok := t.Metadata.Due(); ok {
		u += urgencyDue + dueUrgency(due.DaysFrom(now))
	}
	u += urgencyPriority[t.Metadata.Text("priority")]
	if len(t.Metadata.Tags()) != 0 {
		u += urgencyTags
	}
	if t.Blocked {
		u += urgencyBlocked
	}
	if t.Blocking {
		u += urgencyBlocking
	}
	return u
}

// dueUrgency is maximal up to one day before the deadline and decays hyperbolically, one
// decimal of precision in the divisor, as the deadline recedes.
func dueUrgency(daysLeft int) float64 {
	if daysLeft <= 1 {
		return urgencyDueNear
	}
	divisor := math.Round((1+float64(daysLeft)/7)*10) / 10
	return urgencyDueNear / divisor
}
