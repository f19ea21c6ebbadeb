package mlqueue

import "iter"

// list is a singly linked FIFO list. Values are appended at the tail and
// removed from the head, both in constant time.
//
// It is not safe for concurrent use.
type list[T any] struct {
	head, tail *node[T]
	len        int
}

type node[T any] struct {
	val  T
	next *node[T]
}

func (ls *list[T]) pushBack(v T) {
	n := &node[T]{val: v}
	if ls.tail == nil {
		ls.head = n
	} else {
		ls.tail.next = n
	}
	ls.tail = n
	ls.len++
}

func (ls *list[T]) popFront() (v T, ok bool) {
	n := ls.head
	if n == nil {
		return v, false
	}

	ls.head = n.next
	if ls.head == nil {
		ls.tail = nil
	}
	n.next = nil // release the link so the node can be collected.
	ls.len--
	return n.val, true
}

func (ls *list[T]) front() (v T, ok bool) {
	if ls.head == nil {
		return v, false
	}
	return ls.head.val, true
}

// all yields values from head to tail without removing them.
func (ls *list[T]) all() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := ls.head; n != nil; n = n.next {
			if !yield(n.val) {
				return
			}
		}
	}
}
