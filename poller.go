package main

import "time"

// pollInterval bounds hotkey reaction latency. 50 ms keeps the CPU cost of
// sampling four keys negligible at ~20 polls a second.
const pollInterval = 50 * time.Millisecond

// Virtual-key codes for the fixed hotkeys.
const (
	vkF2 = 0x71
	vkF3 = 0x72
	vkF4 = 0x73
	vkF5 = 0x74
)

// keyBinding maps one virtual key to one controller transition.
type keyBinding struct {
	vk  int
	act func(*controller)
}

func defaultBindings() []keyBinding {
	return []keyBinding{
		{vkF2, (*controller).toggle},
		{vkF3, func(c *controller) { c.changeGamma(gammaStep) }},
		{vkF4, func(c *controller) { c.changeGamma(-gammaStep) }},
		{vkF5, (*controller).cycleColorMode},
	}
}

// poller samples raw key state at a fixed interval and fires a binding's
// action on the rising edge only: a key held across many polls fires once.
// Each key gets its own latch, so simultaneous presses of different keys
// are all detected.
type poller struct {
	bindings []keyBinding
	sample   func(vk int) bool
	wasDown  map[int]bool
}

func newPoller(bindings []keyBinding, sample func(vk int) bool) *poller {
	return &poller{
		bindings: bindings,
		sample:   sample,
		wasDown:  make(map[int]bool),
	}
}

// tick samples every bound key once, firing actions for keys that went
// from up to down since the previous tick.
func (p *poller) tick(c *controller) {
	for _, b := range p.bindings {
		down := p.sample(b.vk)
		if down && !p.wasDown[b.vk] {
			b.act(c)
		}
		p.wasDown[b.vk] = down
	}
}

// run drives tick until stop is closed. The stop check happens once per
// iteration at the sleep boundary; there is no other cancellation point.
func (p *poller) run(c *controller, stop <-chan struct{}) {
	t := time.NewTicker(pollInterval)
	defer t.Stop()
	for {
		select {
		case <-stop:
			return
		case <-t.C:
			p.tick(c)
		}
	}
}
