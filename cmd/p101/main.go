// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Command p101 emulates a Programma 101 style desktop calculator.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ezrec/p101/console"
)

// Version of the p101 tool.
const Version = "0.1.0"

func main() {
	var panel bool
	var dev bool
	var decimals int
	var verbose bool
	var version bool

	flag.BoolVar(&panel, "panel", false, "Interactive front panel")
	flag.BoolVar(&dev, "dev", false, "Watch the key script, re-run it on change")
	flag.IntVar(&decimals, "decimals", 0, "Digits printed after the decimal point")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&version, "version", false, "Print the version and exit")

	flag.Parse()

	if version {
		fmt.Printf("p101 %v\n", Version)
		return
	}

	if flag.NArg() > 1 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args()[1:])
	}

	script := ""
	if flag.NArg() == 1 {
		script = flag.Arg(0)
	}

	if panel {
		if err := runPanel(decimals, verbose); err != nil {
			log.Fatal(err)
		}
		return
	}

	if dev {
		if script == "" {
			log.Fatalf("%v: -dev needs a key script", os.Args[0])
		}
		if err := devMode(script, decimals, verbose); err != nil {
			log.Fatal(err)
		}
		return
	}

	input := io.Reader(os.Stdin)
	if script != "" {
		inf, err := os.Open(script)
		if err != nil {
			log.Fatalf("%v: %v", script, err)
		}
		defer inf.Close()
		input = inf
	}

	sess := console.NewSession(input, os.Stdout)
	sess.Verbose = verbose
	if err := sess.Machine.SetDecimals(decimals); err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}

	if err := sess.Run(); err != nil {
		log.Fatal(err)
	}
}
