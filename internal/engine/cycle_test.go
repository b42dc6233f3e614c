package engine

import "testing"

func TestCycleDetectorFirstSightingNotSeen(t *testing.T) {
	d := newCycleDetector()
	hash := [32]byte{1}
	_, seenBefore := d.observe(hash, 0)
	if seenBefore {
		t.Fatal("expected first sighting to report not seen before")
	}
}

func TestCycleDetectorReportsPriorGeneration(t *testing.T) {
	d := newCycleDetector()
	hash := [32]byte{1}
	d.observe(hash, 3)
	prev, seenBefore := d.observe(hash, 9)
	if !seenBefore {
		t.Fatal("expected repeat sighting to report seen before")
	}
	if prev != 3 {
		t.Errorf("expected prior generation 3, got %d", prev)
	}
}

func TestCycleDetectorLastSeenUpdates(t *testing.T) {
	d := newCycleDetector()
	hash := [32]byte{1}
	d.observe(hash, 3)
	d.observe(hash, 9)
	prev, seenBefore := d.observe(hash, 20)
	if !seenBefore || prev != 9 {
		t.Errorf("expected last-seen update to 9, got prev=%d seenBefore=%v", prev, seenBefore)
	}
}
