//go:build !windows

package main

func keyDown(int) bool { return false }
