package idastar

import "testing"

// TestTracker_ReferenceCounts drives enter/leave directly: overlapping
// holds on one cell must nest as true reference counts, with frontier
// membership tracking the zero crossing rather than each call.
func TestTracker_ReferenceCounts(t *testing.T) {
	tr := NewTracker()

	tr.enter(2, 3)
	tr.enter(2, 3)
	if d := tr.ActiveDepth(2, 3); d != 2 {
		t.Errorf("ActiveDepth after two enters = %d; want 2", d)
	}
	if !tr.BeingVisited(2, 3) {
		t.Error("BeingVisited = false while held; want true")
	}
	if fr := tr.Frontier(); len(fr) != 1 || fr[0] != [2]int{2, 3} {
		t.Errorf("Frontier = %v; want [(2,3)]", fr)
	}

	tr.leave(2, 3)
	if d := tr.ActiveDepth(2, 3); d != 1 {
		t.Errorf("ActiveDepth after one leave = %d; want 1", d)
	}
	if !tr.BeingVisited(2, 3) {
		t.Error("BeingVisited = false with one hold remaining; want true")
	}

	tr.leave(2, 3)
	if d := tr.ActiveDepth(2, 3); d != 0 {
		t.Errorf("ActiveDepth after final leave = %d; want 0", d)
	}
	if tr.BeingVisited(2, 3) {
		t.Error("BeingVisited = true after final leave; want false")
	}
	if fr := tr.Frontier(); len(fr) != 0 {
		t.Errorf("Frontier = %v after final leave; want empty", fr)
	}
}

// TestTracker_FrontierRowMajor pins the snapshot order: sorted by row,
// then by column.
func TestTracker_FrontierRowMajor(t *testing.T) {
	tr := NewTracker()
	tr.enter(1, 0)
	tr.enter(0, 1)
	tr.enter(0, 0)

	want := [][2]int{{0, 0}, {1, 0}, {0, 1}}
	got := tr.Frontier()
	if len(got) != len(want) {
		t.Fatalf("Frontier = %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Frontier = %v; want %v", got, want)
		}
	}
}

// TestTracker_ResetDropsState verifies a reset clears counts and frontier
// so a Tracker can be reused across searches.
func TestTracker_ResetDropsState(t *testing.T) {
	tr := NewTracker()
	tr.enter(0, 0)
	tr.enter(4, 4)
	tr.enter(4, 4)

	tr.reset()
	if d := tr.ActiveDepth(4, 4); d != 0 {
		t.Errorf("ActiveDepth after reset = %d; want 0", d)
	}
	if tr.BeingVisited(0, 0) {
		t.Error("BeingVisited = true after reset; want false")
	}
	if fr := tr.Frontier(); len(fr) != 0 {
		t.Errorf("Frontier = %v after reset; want empty", fr)
	}
}
