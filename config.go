package main

import (
	"encoding/json"
	"log"
	"os"
)

type hotkeyNames struct {
	Toggle     string `json:"toggle"`
	Increase   string `json:"increase"`
	Decrease   string `json:"decrease"`
	CycleColor string `json:"cycle_color"`
}

type config struct {
	Gamma     float64 `json:"gamma"`
	ColorMode string  `json:"color_mode"`
	Autostart bool    `json:"autostart"`
	// Hotkeys is written out for future remapping, but the current build
	// keeps F2-F5 hardcoded and never reads it back.
	Hotkeys hotkeyNames `json:"hotkeys"`
}

func defaultConfig() config {
	return config{
		Gamma:     gammaDefault,
		ColorMode: modeAll.String(),
		Hotkeys: hotkeyNames{
			Toggle:     "F2",
			Increase:   "F3",
			Decrease:   "F4",
			CycleColor: "F5",
		},
	}
}

// configStore reads and writes the JSON config file. The enabled flag is
// deliberately not part of the file; gamma always starts switched off.
type configStore struct {
	path string
}

// load returns the file contents merged over defaults. A missing file is a
// normal cold start, not an error.
func (s configStore) load() config {
	cfg := defaultConfig()
	data, err := os.ReadFile(s.path)
	if err != nil {
		log.Printf("config: no config file, using defaults")
		return cfg
	}
	// Unmarshal over the pre-filled struct so missing keys keep defaults.
	if err := json.Unmarshal(data, &cfg); err != nil {
		log.Printf("config: parse error: %v, using defaults", err)
		return defaultConfig()
	}
	return cfg
}

// save writes atomically via a temp file so an interrupted write can't
// truncate the previous config.
func (s configStore) save(cfg config) {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		log.Printf("config: marshal error: %v", err)
		return
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		log.Printf("config: write error: %v", err)
		return
	}
	if err := os.Rename(tmp, s.path); err != nil {
		log.Printf("config: rename error: %v", err)
	}
}
