package mlqueue

import (
	"fmt"
	"iter"
)

// MetricsHook defines hooks for monitoring enqueue, dequeue, and
// reclassification events.
type MetricsHook interface {
	OnEnqueue(e Entity, lane Lane)
	OnDequeue(e Entity, lane Lane)
	OnReclassify(e Entity, from, to Lane)
}

// Queue is a multi-level priority queue that supports the following
// operations:
//
//   - Enqueue into the lane chosen by [Classify]
//   - Dequeue and Peek, served strictly High, Medium, then Low
//   - Aging of every waiting entity after time has elapsed
//   - Metrics hooks for enqueue, dequeue, and reclassification events
//
// Within a lane entities are dequeued in FIFO order. A Queue is not safe for
// concurrent use; it is owned by a single driving loop.
type Queue struct {
	metrics MetricsHook

	lanes [laneCount]list[Entity]
	size  int
}

// New creates a new empty [Queue] with the given options.
func New(opts ...Option) *Queue {
	o := &Options{}
	for _, opt := range opts {
		opt(o)
	}

	return &Queue{
		metrics: o.Metrics,
	}
}

// Enqueue classifies the [Entity] and appends it to the tail of its lane. It
// always succeeds.
func (q *Queue) Enqueue(e Entity) {
	lane := q.push(e)

	if q.metrics != nil {
		q.metrics.OnEnqueue(e, lane)
	}
}

func (q *Queue) push(e Entity) Lane {
	lane := Classify(e)
	q.lanes[lane.lane].pushBack(e)
	q.size++
	return lane
}

// Dequeue removes and returns the head of the highest non-empty lane. It
// returns false when the queue is empty, which is an expected condition
// rather than an error.
func (q *Queue) Dequeue() (Entity, bool) {
	e, lane, ok := q.pop()
	if !ok {
		return Entity{}, false
	}

	if q.metrics != nil {
		q.metrics.OnDequeue(e, lane)
	}
	return e, true
}

func (q *Queue) pop() (Entity, Lane, bool) {
	for _, lane := range Lanes.All() {
		if e, ok := q.lanes[lane.lane].popFront(); ok {
			q.size--
			return e, lane, true
		}
	}
	return Entity{}, Lane{}, false
}

// Peek returns the [Entity] Dequeue would return without removing it. It
// returns false when the queue is empty.
func (q *Queue) Peek() (Entity, bool) {
	for _, lane := range Lanes.All() {
		if e, ok := q.lanes[lane.lane].front(); ok {
			return e, true
		}
	}
	return Entity{}, false
}

// Len returns the number of entities waiting across all lanes.
func (q *Queue) Len() int {
	return q.size
}

// IsEmpty reports whether no entity is waiting.
func (q *Queue) IsEmpty() bool {
	return q.Len() == 0
}

// LaneLen returns the number of entities waiting in the given lane.
func (q *Queue) LaneLen(lane Lane) int {
	return q.lanes[lane.lane].len
}

// ApplyElapsedTime adds the given minutes to the waiting time of every
// entity in the queue and classifies each of them again, so an entity whose
// score has crossed [MediumScoreThreshold] moves lanes.
//
// Entities are drained in dequeue order and re-enqueued in that same order,
// which keeps FIFO order within every lane. The pass costs O(n). Zero minutes
// changes nothing and returns immediately. Negative minutes panic before the
// queue is touched.
func (q *Queue) ApplyElapsedTime(minutes int) {
	if minutes < 0 {
		panic(fmt.Sprintf("mlqueue: negative elapsed time %d", minutes))
	}
	if minutes == 0 || q.IsEmpty() {
		return
	}

	type drained struct {
		entity Entity
		lane   Lane
	}

	waiting := make([]drained, 0, q.size)
	for {
		e, lane, ok := q.pop()
		if !ok {
			break
		}
		waiting = append(waiting, drained{e, lane})
	}

	for _, d := range waiting {
		d.entity.AdvanceWaiting(minutes)
		lane := q.push(d.entity)

		if lane != d.lane && q.metrics != nil {
			q.metrics.OnReclassify(d.entity, d.lane, lane)
		}
	}
}

// All returns an iterator over the waiting entities paired with their lane,
// in the order repeated calls to Dequeue would return them. The queue is not
// modified and must not be modified while iterating.
func (q *Queue) All() iter.Seq2[Lane, Entity] {
	return func(yield func(Lane, Entity) bool) {
		for _, lane := range Lanes.All() {
			for e := range q.lanes[lane.lane].all() {
				if !yield(lane, e) {
					return
				}
			}
		}
	}
}

// Drain returns an iterator that dequeues entities until the queue is empty
// or the consumer stops.
func (q *Queue) Drain() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		for {
			e, ok := q.Dequeue()
			if !ok {
				return
			}

			if !yield(e) {
				return
			}
		}
	}
}
