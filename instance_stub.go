//go:build !windows

package main

func lockSingleInstance() {}
