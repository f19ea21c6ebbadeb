// Package mlqueue implements a multi-level priority queue for a service
// counter, together with a single-threaded driver that serves the queue.
//
// Entities wait in one of three FIFO lanes (High, Medium and Low). The lane
// is chosen from the entity's category, its emergency flag and a priority
// score that grows with waiting time. Lanes are always served in order, so
// a High entity is served before any Medium entity regardless of when it
// arrived.
//
// After every service the elapsed time is applied to everyone still waiting
// and each entity is classified again, which lets long-waiting Low entities
// climb into the Medium lane and prevents indefinite starvation.
package mlqueue
