//go:build windows

package main

import (
	"iter"
	"log"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	modUser32 = windows.NewLazySystemDLL("user32.dll")
	modGdi32  = windows.NewLazySystemDLL("gdi32.dll")

	procEnumDisplayDevicesW = modUser32.NewProc("EnumDisplayDevicesW")
	procGetDC               = modUser32.NewProc("GetDC")
	procReleaseDC           = modUser32.NewProc("ReleaseDC")
	procCreateDCW           = modGdi32.NewProc("CreateDCW")
	procDeleteDC            = modGdi32.NewProc("DeleteDC")
	procSetDeviceGammaRamp  = modGdi32.NewProc("SetDeviceGammaRamp")
)

const displayDeviceActive = 0x00000001

// displayDeviceW mirrors the Win32 DISPLAY_DEVICEW struct.
type displayDeviceW struct {
	cb           uint32
	DeviceName   [32]uint16
	DeviceString [128]uint16
	StateFlags   uint32
	DeviceID     [128]uint16
	DeviceKey    [128]uint16
}

// displayDevice describes one graphics output device as reported by the OS.
type displayDevice struct {
	name   string
	active bool
}

// displayDevices enumerates display devices from index 0 until
// EnumDisplayDevicesW signals exhaustion. Each range restarts the
// enumeration from scratch.
func displayDevices() iter.Seq[displayDevice] {
	return func(yield func(displayDevice) bool) {
		for i := uintptr(0); ; i++ {
			var dd displayDeviceW
			dd.cb = uint32(unsafe.Sizeof(dd))
			ret, _, _ := procEnumDisplayDevicesW.Call(0, i, uintptr(unsafe.Pointer(&dd)), 0)
			if ret == 0 {
				return
			}
			dev := displayDevice{
				name:   windows.UTF16ToString(dd.DeviceName[:]),
				active: dd.StateFlags&displayDeviceActive != 0,
			}
			if !yield(dev) {
				return
			}
		}
	}
}

// applyRamp installs the ramp on every active display device. All failures
// are best-effort: a device that refuses a DC is skipped, and if no device
// DC could be acquired at all the ramp goes to the primary display instead.
func applyRamp(ramp gammaRamp) {
	display, _ := windows.UTF16PtrFromString("DISPLAY")

	applied := false
	for dev := range displayDevices() {
		if !dev.active {
			continue
		}
		name, err := windows.UTF16PtrFromString(dev.name)
		if err != nil {
			continue
		}
		hdc, _, _ := procCreateDCW.Call(
			uintptr(unsafe.Pointer(display)),
			uintptr(unsafe.Pointer(name)),
			0, 0,
		)
		if hdc == 0 {
			log.Printf("gamma: CreateDCW(%s) failed", dev.name)
			continue
		}
		func() {
			defer procDeleteDC.Call(hdc)
			setRamp(hdc, &ramp, dev.name)
		}()
		applied = true
	}
	if applied {
		return
	}

	// Nothing enumerated: fall back to the primary display.
	hdc, _, _ := procGetDC.Call(0)
	if hdc == 0 {
		log.Printf("gamma: GetDC failed")
		return
	}
	defer procReleaseDC.Call(0, hdc)
	setRamp(hdc, &ramp, "primary")
}

func setRamp(hdc uintptr, ramp *gammaRamp, name string) {
	ret, _, err := procSetDeviceGammaRamp.Call(hdc, uintptr(unsafe.Pointer(ramp)))
	if ret == 0 {
		log.Printf("gamma: SetDeviceGammaRamp(%s) failed: %v", name, err)
	}
}
