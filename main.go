package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"time"
)

var version = ""

func displayVersion() string {
	if version != "" {
		return version
	}
	return "dev"
}

type isoLogWriter struct{ w io.Writer }

func (lw isoLogWriter) Write(p []byte) (int, error) {
	return fmt.Fprintf(lw.w, "%s %s", time.Now().Format("2006-01-02 15:04:05"), p)
}

func main() {
	log.SetFlags(0)
	if runtime.GOOS != "windows" {
		log.Fatal("gammakey only runs on Windows")
	}

	lockSingleInstance()

	dataDir := filepath.Join(os.Getenv("LocalAppData"), "GammaKey")
	os.MkdirAll(dataDir, 0o755)
	if f, err := os.OpenFile(filepath.Join(dataDir, "log.txt"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
		log.SetOutput(isoLogWriter{f})
	}
	log.Printf("GammaKey %s starting", displayVersion())

	cleanOldBinary()
	go autoUpdate()

	store := configStore{path: filepath.Join(dataDir, "config.json")}
	cfg := store.load()
	syncAutostart(cfg.Autostart)

	present := newPresenter(os.Stdout)
	ctrl := newController(cfg, applyRamp, store.save, present.render)

	// The display starts neutral no matter what the config says, and goes
	// back to neutral on the way out, interrupt included.
	ctrl.reset()
	defer func() {
		ctrl.reset()
		log.Printf("neutral gamma restored, exiting")
	}()
	ctrl.renderStatus()

	stop := make(chan struct{})
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	go func() {
		<-interrupt
		close(stop)
	}()

	newPoller(defaultBindings(), keyDown).run(ctrl, stop)
}
