//go:build windows

package main

import "golang.org/x/sys/windows"

// lockSingleInstance creates the process-wide named mutex. The handle is
// deliberately never closed; the OS reclaims it at exit.
func lockSingleInstance() {
	name, _ := windows.UTF16PtrFromString("GammaKeyMutex")
	windows.CreateMutex(nil, false, name)
}
