package mlqueue

import (
	"slices"
	"testing"
)

func TestList(t *testing.T) {
	t.Parallel()

	var ls list[int]

	if _, ok := ls.popFront(); ok {
		t.Fatal("expected pop from an empty list to fail")
	}
	if _, ok := ls.front(); ok {
		t.Fatal("expected front of an empty list to fail")
	}

	for i := range 5 {
		ls.pushBack(i)
	}
	if ls.len != 5 {
		t.Fatalf("expected length 5, got: %d", ls.len)
	}

	if got := slices.Collect(ls.all()); !slices.Equal(got, []int{0, 1, 2, 3, 4}) {
		t.Errorf("mismatch:\n  got:  %v\n  want: %v", got, []int{0, 1, 2, 3, 4})
	}

	for want := range 5 {
		if v, ok := ls.front(); !ok || v != want {
			t.Fatalf("front mismatch:\n  got:  %d\n  want: %d", v, want)
		}
		if v, ok := ls.popFront(); !ok || v != want {
			t.Fatalf("pop mismatch:\n  got:  %d\n  want: %d", v, want)
		}
	}

	if ls.head != nil || ls.tail != nil || ls.len != 0 {
		t.Error("expected list to be reset once drained")
	}

	// The list is reusable after being emptied.
	ls.pushBack(42)
	if v, ok := ls.popFront(); !ok || v != 42 {
		t.Errorf("mismatch:\n  got:  %d\n  want: %d", v, 42)
	}
}
