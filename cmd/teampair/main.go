// Command teampair pairs team leaders with juniors from a YAML roster.
//
// Usage:
//
//	teampair build -f roster.yaml [-o teams.yaml] [--seed N] [--rounds R]
//	               [--noise F] [--stagnation K] [--parallel P] [-v]
//	teampair score -f roster.yaml (-a "2,0,1" | -r teams.yaml)
//
// Defaults come from TEAMPAIR_SEED, TEAMPAIR_ROUNDS, TEAMPAIR_NOISE,
// TEAMPAIR_STAGNATION, TEAMPAIR_PARALLELISM and TEAMPAIR_LOG_LEVEL.
// A seed of 0 draws a fresh seed from the clock; the seed actually used is
// logged so any run can be replayed.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	cfg, err := loadConfig(nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = newApp(cfg).rootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
