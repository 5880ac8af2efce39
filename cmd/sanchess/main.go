// sanchess plays a game of chess from moves in Standard Algebraic Notation
// read on standard input, printing the board after every move.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/sanchess-go/internal/config"
)

const programVersion = "0.1.0"

// Exit codes.
const (
	exitOK        = 0
	exitFailure   = 1
	exitIntegrity = 2
)

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(exitOK)
	}

	if *version {
		fmt.Printf("sanchess version %s\n", programVersion)
		os.Exit(exitOK)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	setupLogFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitFailure)
	}

	os.Exit(run(os.Stdin, cfg))
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(exitFailure)
	}
	cfg.SetLog(file)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: sanchess [options] < moves\n\n")
	fmt.Fprintf(os.Stderr, "Plays a chess game from SAN moves, one per line.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nInput:\n")
	fmt.Fprintf(os.Stderr, "  e4, Nf3, exd5, O-O, e8=Q   a move (trailing +, #, ! and ? are ignored)\n")
	fmt.Fprintf(os.Stderr, "  quit                        stop the game\n")
	fmt.Fprintf(os.Stderr, "  resign                      the side to move resigns\n")
}
