package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/awnumar/memguard"
	"github.com/peterbourgon/ff/v3/ffcli"

	"heartlock/internal/card"
	"heartlock/internal/ui"
)

const defaultTickMS = 18

func main() {
	rootFlagSet := flag.NewFlagSet("heartlock", flag.ExitOnError)

	runFlagSet := flag.NewFlagSet("heartlock run", flag.ExitOnError)
	runTick := runFlagSet.Int("tick", defaultTickMS, "Cutscene frame delay in milliseconds")

	ambushFlagSet := flag.NewFlagSet("heartlock ambush", flag.ExitOnError)
	ambushTimeout := ambushFlagSet.Int("timeout", defaultAmbushTimeout, "Idle timeout in seconds before springing the card")
	ambushOnce := ambushFlagSet.Bool("once", false, "Spring the card immediately and exit")

	runCmd := &ffcli.Command{
		Name:       "run",
		ShortUsage: "heartlock run [flags]",
		ShortHelp:  "Play the card in the current terminal",
		FlagSet:    runFlagSet,
		Exec: func(ctx context.Context, args []string) error {
			return execRun(*runTick)
		},
	}

	ambushCmd := &ffcli.Command{
		Name:       "ambush",
		ShortUsage: "heartlock ambush [flags]",
		ShortHelp:  "Watch a tmux client and spring the card when it goes idle",
		FlagSet:    ambushFlagSet,
		Exec: func(ctx context.Context, args []string) error {
			return execAmbush(*ambushTimeout, *ambushOnce)
		},
	}

	// Root command defaults to playing the card, so the bare binary can be
	// handed over as-is.
	rootCmd := &ffcli.Command{
		ShortUsage:  "heartlock [flags] <subcommand>",
		ShortHelp:   "An interactive terminal greeting card with lock questions",
		LongHelp:    "Controls:\n  A/B/C/D   Answer a lock question\n  Y/N       Answer the final lock",
		FlagSet:     rootFlagSet,
		Subcommands: []*ffcli.Command{runCmd, ambushCmd},
		Exec: func(ctx context.Context, args []string) error {
			return execRun(defaultTickMS)
		},
	}

	if err := rootCmd.ParseAndRun(context.Background(), os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func execRun(tickMS int) error {
	guard, err := ui.Acquire()
	if err != nil {
		return err
	}
	// Deferred so the terminal comes back on every exit path, panics
	// included. Release itself never fails the process.
	defer guard.Release()
	defer memguard.Purge()

	started := time.Now()
	renderer := ui.NewRenderer(guard.Screen(), started)
	input := ui.NewReader(guard.Screen())
	cutscene := ui.NewCutscene(renderer, time.Duration(tickMS)*time.Millisecond)

	return card.NewSequencer(renderer, input, cutscene, card.Deck()).Run()
}
