// internal/app/options.go
package app

import (
	"enemy-variety/internal/config"
	"enemy-variety/internal/defs"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
)

// Options are the command-line settings shared by both front ends.
type Options struct {
	Seed        int64
	DefsPath    string
	SpritesPath string
	Profile     string
	Interval    float64
}

// ParseFlags parses args (without the program name).
func ParseFlags(name string, args []string, output io.Writer) (Options, error) {
	var opts Options
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Int64Var(&opts.Seed, "seed", 0, "random seed, 0 means time based")
	fs.StringVar(&opts.DefsPath, "defs", config.DefaultDefsPath, "enemy definitions JSON")
	fs.StringVar(&opts.SpritesPath, "sprites", config.DefaultSpritesPath, "directory with sprite sheets")
	fs.StringVar(&opts.Profile, "profile", "", "write a profile: cpu or mem")
	fs.Float64Var(&opts.Interval, "interval", config.SpawnInterval, "spawn interval in milliseconds")
	if err := fs.Parse(args); err != nil {
		return Options{}, err
	}
	if err := opts.validate(); err != nil {
		fmt.Fprintf(output, "%s: %v\n", name, err)
		return Options{}, err
	}
	return opts, nil
}

func (o Options) validate() error {
	if o.Interval <= 0 {
		return fmt.Errorf("interval must be positive, got %v", o.Interval)
	}
	switch o.Profile {
	case "", ProfileCPU, ProfileMem:
		return nil
	}
	return fmt.Errorf("unknown profile mode %q", o.Profile)
}

// ExitCode maps a ParseFlags error to a process exit code.
func ExitCode(err error) int {
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	return 2
}

// LoadLibrary reads the definitions file. A missing file is not an error:
// the built-in definitions are used instead.
func LoadLibrary(path string) (defs.Library, error) {
	if path == "" {
		return defs.DefaultEnemies(), nil
	}
	lib, err := defs.LoadEnemyDefinitions(path)
	if errors.Is(err, os.ErrNotExist) {
		log.Printf("No enemy definitions at %s, using built-in ones", path)
		return defs.DefaultEnemies(), nil
	}
	return lib, err
}

// NewWorldFromOptions wires a world from parsed options.
func NewWorldFromOptions(opts Options, lib defs.Library) *World {
	w := NewWorld(WorldOptions{
		Seed:          opts.Seed,
		Library:       lib,
		SpawnInterval: opts.Interval,
	})
	log.Printf("World %vx%v, spawn interval %v ms, seed %d", w.Width, w.Height, opts.Interval, w.Rng.Seed())
	return w
}
