// Reference build: event-driven global hotkeys via golang.design/x/hotkey
// instead of the polling loop in the main binary. Self-contained on purpose:
// no config, no status memoization, primary display only. Kept as a
// comparison point for the RegisterHotKey event model.

//go:build windows

package main

import (
	"fmt"
	"log"
	"math"
	"os"
	"os/signal"
	"unsafe"

	"golang.design/x/hotkey"
	"golang.org/x/sys/windows"
)

const (
	vkF2 = 0x71
	vkF3 = 0x72
	vkF4 = 0x73
	vkF5 = 0x74
)

type gammaRamp [3][256]uint16

var (
	modUser32 = windows.NewLazySystemDLL("user32.dll")
	modGdi32  = windows.NewLazySystemDLL("gdi32.dll")

	procGetDC              = modUser32.NewProc("GetDC")
	procReleaseDC          = modUser32.NewProc("ReleaseDC")
	procSetDeviceGammaRamp = modGdi32.NewProc("SetDeviceGammaRamp")
)

func buildRamp(gamma float64, blueOnly bool) gammaRamp {
	var ramp gammaRamp
	inv := 1.0 / gamma
	for i := 0; i < 256; i++ {
		y := math.Pow(float64(i)/255.0, inv)
		v := uint16(math.Max(0, math.Min(65535, math.Round(y*65535))))
		if blueOnly {
			linear := uint16(i * 257)
			ramp[0][i], ramp[1][i], ramp[2][i] = linear, linear, v
		} else {
			ramp[0][i], ramp[1][i], ramp[2][i] = v, v, v
		}
	}
	return ramp
}

func applyRamp(ramp gammaRamp) {
	hdc, _, _ := procGetDC.Call(0)
	if hdc == 0 {
		log.Printf("gamma: GetDC failed")
		return
	}
	defer procReleaseDC.Call(0, hdc)
	if ret, _, err := procSetDeviceGammaRamp.Call(hdc, uintptr(unsafe.Pointer(&ramp))); ret == 0 {
		log.Printf("gamma: SetDeviceGammaRamp failed: %v", err)
	}
}

func main() {
	gamma := 2.0
	enabled := false
	blueOnly := false

	applyCurrent := func() {
		g := 1.0
		if enabled {
			g = gamma
		}
		applyRamp(buildRamp(g, blueOnly))
		state := "OFF"
		if enabled {
			state = "ON"
		}
		channels := "all"
		if blueOnly {
			channels = "blue"
		}
		fmt.Printf("gamma %.1f %s [%s]\n", gamma, channels, state)
	}

	register := func(vk int, fn func()) {
		hk := hotkey.New(nil, hotkey.Key(vk))
		if err := hk.Register(); err != nil {
			log.Printf("hotkey 0x%x: %v", vk, err)
			return
		}
		go func() {
			for range hk.Keydown() {
				fn()
			}
		}()
	}

	register(vkF2, func() { enabled = !enabled; applyCurrent() })
	register(vkF3, func() { gamma = math.Min(4.4, gamma+0.1); applyCurrent() })
	register(vkF4, func() { gamma = math.Max(0.1, gamma-0.1); applyCurrent() })
	register(vkF5, func() { blueOnly = !blueOnly; applyCurrent() })

	applyCurrent()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	<-interrupt

	enabled = false
	applyCurrent()
}
