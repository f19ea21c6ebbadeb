package mlqueue

import "iter"

// Service records a single completed service at the [Counter].
type Service struct {
	// Seq is the 1-based position of the service in the run.
	Seq int

	// StartedAt is the counter clock, in minutes, when the service began.
	StartedAt int

	Entity   Entity
	Duration int
}

// Summary describes a completed run of the [Counter].
type Summary struct {
	Services []Service

	// TotalMinutes is the sum of every service duration, which is also the
	// final value of the counter clock.
	TotalMinutes int
}

// Counter serves a [Queue] one entity at a time. Serving an entity advances
// the counter clock by its service duration and applies that duration as
// waiting time to everyone still in the queue.
type Counter struct {
	queue *Queue
	clock int
	seq   int
}

// NewCounter creates a [Counter] serving the given queue, with its clock at
// zero.
func NewCounter(q *Queue) *Counter {
	return &Counter{queue: q}
}

// ServeNext dequeues the next entity, serves it and ages the remaining
// queue. It returns false when there is nobody left to serve.
func (c *Counter) ServeNext() (Service, bool) {
	e, ok := c.queue.Dequeue()
	if !ok {
		return Service{}, false
	}

	c.seq++
	s := Service{
		Seq:       c.seq,
		StartedAt: c.clock,
		Entity:    e,
		Duration:  e.ServiceDuration(),
	}

	c.clock += s.Duration
	c.queue.ApplyElapsedTime(s.Duration)

	return s, true
}

// Services returns an iterator that serves entities until the queue is
// empty. The queue has already been aged when each [Service] is yielded.
func (c *Counter) Services() iter.Seq[Service] {
	return func(yield func(Service) bool) {
		for {
			s, ok := c.ServeNext()
			if !ok {
				return
			}

			if !yield(s) {
				return
			}
		}
	}
}

// Run serves every waiting entity and returns a [Summary] of the services.
func (c *Counter) Run() Summary {
	var sum Summary
	for s := range c.Services() {
		sum.Services = append(sum.Services, s)
		sum.TotalMinutes += s.Duration
	}
	return sum
}

// Elapsed returns the counter clock in minutes.
func (c *Counter) Elapsed() int {
	return c.clock
}
