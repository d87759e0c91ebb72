//go:build windows

package main

var procGetAsyncKeyState = modUser32.NewProc("GetAsyncKeyState")

// keyDown reports whether the virtual key is currently held, regardless of
// which window has focus. The high bit of GetAsyncKeyState carries the
// current state; the low "was pressed since last call" bit is ignored.
func keyDown(vk int) bool {
	ret, _, _ := procGetAsyncKeyState.Call(uintptr(vk))
	return ret&0x8000 != 0
}
