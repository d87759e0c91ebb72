//go:build windows

package main

import (
	"log"
	"os"

	"golang.org/x/sys/windows/registry"
)

const (
	runKey       = `Software\Microsoft\Windows\CurrentVersion\Run`
	runValueName = "GammaKey"
)

// syncAutostart brings the registry Run entry in line with the config.
// With no UI surface, the config file is the only switch for this.
func syncAutostart(want bool) {
	have := isAutostartEnabled()
	switch {
	case want && !have:
		if err := autostartEnable(); err != nil {
			log.Printf("autostart: enable failed: %v", err)
		} else {
			log.Printf("autostart: enabled")
		}
	case !want && have:
		if err := autostartDisable(); err != nil {
			log.Printf("autostart: disable failed: %v", err)
		} else {
			log.Printf("autostart: disabled")
		}
	}
}

func isAutostartEnabled() bool {
	k, err := registry.OpenKey(registry.CURRENT_USER, runKey, registry.QUERY_VALUE)
	if err != nil {
		return false
	}
	defer k.Close()
	_, _, err = k.GetStringValue(runValueName)
	return err == nil
}

func autostartEnable() error {
	exePath, err := os.Executable()
	if err != nil {
		return err
	}
	k, err := registry.OpenKey(registry.CURRENT_USER, runKey, registry.SET_VALUE)
	if err != nil {
		return err
	}
	defer k.Close()
	return k.SetStringValue(runValueName, `"`+exePath+`"`)
}

func autostartDisable() error {
	k, err := registry.OpenKey(registry.CURRENT_USER, runKey, registry.SET_VALUE)
	if err != nil {
		return err
	}
	defer k.Close()
	return k.DeleteValue(runValueName)
}
