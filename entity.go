package mlqueue

import "fmt"

const (
	emergencyWeight = 5.0

	// waitingWeight is the score gained for every minute spent waiting.
	waitingWeight = 0.2
)

// Entity represents a person waiting at the counter. Its priority score is
// derived from the category, the emergency flag and the waiting time, and is
// recomputed whenever one of those changes, so it is never stale.
//
// Entities are values. The copy held by a [Queue] is owned by the queue until
// it is dequeued.
type Entity struct {
	id        int
	category  Category
	emergency bool
	waiting   int
	score     float64
}

// NewEntity creates an [Entity] with its priority score computed. Inputs are
// not validated: an unknown category is accepted and contributes nothing to
// the score.
func NewEntity(id int, category Category, emergency bool, waitingMinutes int) Entity {
	e := Entity{
		id:        id,
		category:  category,
		emergency: emergency,
		waiting:   waitingMinutes,
	}
	e.recomputeScore()
	return e
}

func (e *Entity) recomputeScore() {
	var emergency float64
	if e.emergency {
		emergency = emergencyWeight
	}
	e.score = emergency + e.category.Weight() + waitingWeight*float64(e.waiting)
}

// AdvanceWaiting adds the given number of minutes to the waiting time and
// recomputes the priority score. Waiting time never decreases, so a negative
// value is a programming error and panics.
func (e *Entity) AdvanceWaiting(minutes int) {
	if minutes < 0 {
		panic(fmt.Sprintf("mlqueue: negative waiting time advance %d for entity %d", minutes, e.id))
	}
	e.waiting += minutes
	e.recomputeScore()
}

// ServiceDuration returns how many minutes serving the entity takes. It
// depends on the category alone.
func (e Entity) ServiceDuration() int {
	return e.category.ServiceDuration()
}

// ID returns the caller assigned identifier.
func (e Entity) ID() int { return e.id }

// Category returns the service category.
func (e Entity) Category() Category { return e.category }

// Emergency reports whether the entity was flagged as an emergency.
func (e Entity) Emergency() bool { return e.emergency }

// WaitingMinutes returns the accumulated waiting time.
func (e Entity) WaitingMinutes() int { return e.waiting }

// Score returns the current priority score.
func (e Entity) Score() float64 { return e.score }

func (e Entity) String() string {
	return fmt.Sprintf("ID: %d, Service: %s, Emergency: %s, Waiting: %d min, Priority: %.2f",
		e.id, e.category, yesNo(e.emergency), e.waiting, e.score)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
