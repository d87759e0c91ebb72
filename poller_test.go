package main

import (
	"testing"
	"time"
)

// scriptedKeys replays a per-key sequence of sampled states, repeating the
// final state once the script runs out.
type scriptedKeys struct {
	script map[int][]bool
	pos    map[int]int
}

func newScriptedKeys(script map[int][]bool) *scriptedKeys {
	return &scriptedKeys{script: script, pos: make(map[int]int)}
}

func (s *scriptedKeys) sample(vk int) bool {
	seq, ok := s.script[vk]
	if !ok || len(seq) == 0 {
		return false
	}
	i := s.pos[vk]
	if i >= len(seq) {
		i = len(seq) - 1
	}
	s.pos[vk]++
	return seq[i]
}

func countingBinding(vk int, n *int) keyBinding {
	return keyBinding{vk: vk, act: func(*controller) { *n++ }}
}

func TestPollerFiresOncePerPress(t *testing.T) {
	fired := 0
	keys := newScriptedKeys(map[int][]bool{
		vkF2: {false, true, true, true, false, false},
	})
	p := newPoller([]keyBinding{countingBinding(vkF2, &fired)}, keys.sample)

	for n := 0; n < 6; n++ {
		p.tick(nil)
	}
	if fired != 1 {
		t.Errorf("fired %d times for one press-and-release, want 1", fired)
	}
}

func TestPollerFiresPerRisingEdge(t *testing.T) {
	fired := 0
	keys := newScriptedKeys(map[int][]bool{
		vkF3: {true, false, true, false, true},
	})
	p := newPoller([]keyBinding{countingBinding(vkF3, &fired)}, keys.sample)

	for n := 0; n < 5; n++ {
		p.tick(nil)
	}
	if fired != 3 {
		t.Errorf("fired %d times for three presses, want 3", fired)
	}
}

func TestPollerLatchesAreIndependent(t *testing.T) {
	// Two keys held down across overlapping windows; each must fire exactly
	// once even while the other is down.
	var f2, f5 int
	keys := newScriptedKeys(map[int][]bool{
		vkF2: {true, true, true, false, false},
		vkF5: {false, true, true, true, false},
	})
	p := newPoller([]keyBinding{
		countingBinding(vkF2, &f2),
		countingBinding(vkF5, &f5),
	}, keys.sample)

	for n := 0; n < 5; n++ {
		p.tick(nil)
	}
	if f2 != 1 || f5 != 1 {
		t.Errorf("fired F2=%d F5=%d, want 1 each", f2, f5)
	}
}

func TestPollerDrivesController(t *testing.T) {
	rec := &recorder{}
	c := rec.controller(defaultConfig())
	keys := newScriptedKeys(map[int][]bool{
		vkF2: {true, false},
		vkF3: {false, true},
	})
	p := newPoller(defaultBindings(), keys.sample)

	p.tick(c) // F2 edge: toggle on
	if !c.enabled {
		t.Fatal("F2 press should toggle on")
	}
	p.tick(c) // F3 edge: gamma +0.1
	if !almostEqual(c.gamma, gammaDefault+gammaStep) {
		t.Errorf("gamma = %v, want %v", c.gamma, gammaDefault+gammaStep)
	}
}

func TestPollerRunStops(t *testing.T) {
	p := newPoller(defaultBindings(), func(int) bool { return false })
	stop := make(chan struct{})
	done := make(chan struct{})

	go func() {
		p.run(nil, stop)
		close(done)
	}()
	close(stop)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("run did not return after stop")
	}
}
