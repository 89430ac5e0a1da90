package watcher

import (
	"testing"
	"time"
)

const testInterval = 50 * time.Millisecond

func awaitSignal(t *testing.T, tr *Trigger, timeout time.Duration) {
	t.Helper()
	select {
	case <-tr.Output():
	case <-time.After(timeout):
		t.Fatal("timed out waiting for trigger signal")
	}
}

func Test_Trigger_SinglePoke(t *testing.T) {
	tr := NewTrigger(testInterval)
	tr.Poke()
	awaitSignal(t, tr, 500*time.Millisecond)
}

func Test_Trigger_BurstCoalescesToOneSignal(t *testing.T) {
	tr := NewTrigger(testInterval)

	for i := 0; i < 20; i++ {
		tr.Poke()
	}

	awaitSignal(t, tr, 500*time.Millisecond)

	// The burst must not have queued a second signal.
	select {
	case <-tr.Output():
		t.Error("expected a single coalesced signal for the burst")
	case <-time.After(3 * testInterval):
	}
}

func Test_Trigger_SeparateWindowsSignalSeparately(t *testing.T) {
	tr := NewTrigger(testInterval)

	tr.Poke()
	awaitSignal(t, tr, 500*time.Millisecond)

	tr.Poke()
	awaitSignal(t, tr, 500*time.Millisecond)
}

func Test_Trigger_NoPokeNoSignal(t *testing.T) {
	tr := NewTrigger(testInterval)

	select {
	case <-tr.Output():
		t.Error("expected no signal without activity")
	case <-time.After(3 * testInterval):
	}
}
