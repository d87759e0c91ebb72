//go:build !windows

package main

func syncAutostart(bool) {}
