package main

import "math"

const (
	gammaMin     = 0.1
	gammaMax     = 4.4
	gammaStep    = 0.1
	gammaNeutral = 1.0
	gammaDefault = 2.0
)

func clampGamma(g float64) float64 {
	return math.Max(gammaMin, math.Min(gammaMax, g))
}

// controller owns the gamma state for the process lifetime. The poller
// drives it from a single goroutine, so no locking. Collaborators are
// injected as plain functions.
type controller struct {
	gamma   float64
	enabled bool
	mode    colorMode
	cfg     config

	apply   func(gammaRamp)
	persist func(config)
	render  func(enabled bool, gamma float64, mode colorMode)
}

func newController(cfg config, apply func(gammaRamp), persist func(config), render func(bool, float64, colorMode)) *controller {
	return &controller{
		gamma:   clampGamma(cfg.Gamma),
		mode:    parseColorMode(cfg.ColorMode),
		cfg:     cfg,
		apply:   apply,
		persist: persist,
		render:  render,
	}
}

// applyCurrent installs the ramp matching the current state: the user's
// curve when enabled, the neutral 1.0 curve otherwise.
func (c *controller) applyCurrent() {
	g := gammaNeutral
	if c.enabled {
		g = c.gamma
	}
	c.apply(buildRamp(g, c.mode))
}

// toggle flips the curve on or off. The enabled flag is transient and
// never persisted.
func (c *controller) toggle() {
	c.enabled = !c.enabled
	c.applyCurrent()
	c.renderStatus()
}

// changeGamma nudges the gamma value, clamped to [gammaMin, gammaMax],
// and persists it even while the curve is switched off.
func (c *controller) changeGamma(delta float64) {
	c.gamma = clampGamma(c.gamma + delta)
	if c.enabled {
		c.applyCurrent()
	}
	c.save()
	c.renderStatus()
}

// cycleColorMode advances all → blue → all.
func (c *controller) cycleColorMode() {
	c.mode = c.mode.next()
	if c.enabled {
		c.applyCurrent()
	}
	c.save()
	c.renderStatus()
}

// reset forces the display back to neutral. Runs once at startup and once
// on the way out, whatever state the process is in.
func (c *controller) reset() {
	c.enabled = false
	c.applyCurrent()
}

func (c *controller) save() {
	c.cfg.Gamma = c.gamma
	c.cfg.ColorMode = c.mode.String()
	c.persist(c.cfg)
}

func (c *controller) renderStatus() {
	c.render(c.enabled, c.gamma, c.mode)
}
