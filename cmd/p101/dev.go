package main

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/howeyc/fsnotify"

	"github.com/ezrec/p101/console"
)

// devMode runs the key script, then re-runs it on a fresh machine
// whenever the file changes on disk.
func devMode(script string, decimals int, verbose bool) error {
	script = filepath.Clean(script)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	if err := watcher.Watch(filepath.Dir(script)); err != nil {
		return err
	}

	run := time.After(1 * time.Millisecond)
	for {
		select {
		case <-run:
			log.Printf("dev: run %s", filepath.Base(script))
			if err := devRun(script, decimals, verbose); err != nil {
				log.Printf("dev: %v", err)
			}
		case ev := <-watcher.Event:
			if ev.Name == script && !ev.IsAttrib() {
				run = time.After(100 * time.Millisecond)
			}
		case err := <-watcher.Error:
			log.Printf("dev: watcher: %v", err)
		}
	}
}

// devRun feeds the script to a fresh machine.
func devRun(script string, decimals int, verbose bool) error {
	inf, err := os.Open(script)
	if err != nil {
		return err
	}
	defer inf.Close()

	sess := console.NewSession(inf, os.Stdout)
	sess.Verbose = verbose
	if err := sess.Machine.SetDecimals(decimals); err != nil {
		return err
	}

	return sess.Run()
}
