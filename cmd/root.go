/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vipcxj/randfactory/internal/config"
	"github.com/vipcxj/randfactory/internal/export"
	"github.com/vipcxj/randfactory/internal/sample"
)

const ShortDesc = "Draw uniformly distributed numbers and points from closed intervals"

const LongDesc = `randfactory draws uniformly distributed unsigned integers, floating-point
numbers and 2D points from closed intervals such as [1,6] or [0.5,2].
Values come from a fast process-wide generator, a reproducible seeded
stream (--seed) or the operating system CSPRNG (--source crypto), and can be
printed as plain text, JSON, or shell assignments to eval in scripts.`

// app carries the state shared by every subcommand once the persistent
// flags are resolved.
type app struct {
	configPath string
	verbose    bool
	flags      config.Config
	seed       uint64

	cfg     config.Config
	log     *slog.Logger
	sampler *sample.Sampler
}

func (a *app) options() export.Options {
	return export.Options{
		Format:  a.cfg.Format,
		Shell:   a.cfg.Shell,
		Name:    a.cfg.Name,
		Persist: a.cfg.Persist,
	}
}

// setup merges flags over the loaded configuration and builds the logger
// and sampler.
func (a *app) setup(cmd *cobra.Command) error {
	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.configPath != "" {
		a.log.Debug("loaded config", "path", a.configPath)
	}

	flags := cmd.Flags()
	if flags.Changed("source") {
		cfg.Source = a.flags.Source
	}
	if flags.Changed("seed") {
		cfg.Seed = &a.seed
	}
	if flags.Changed("count") {
		cfg.Count = a.flags.Count
	}
	if flags.Changed("format") {
		cfg.Format = a.flags.Format
	}
	if flags.Changed("shell") {
		cfg.Shell = a.flags.Shell
	}
	if flags.Changed("name") {
		cfg.Name = a.flags.Name
	}
	if flags.Changed("persist") {
		cfg.Persist = a.flags.Persist
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// 给了 seed 但没指定 source 时，默认使用可复现的 seeded
	if cfg.Seed != nil {
		switch cfg.Source {
		case sample.SourceKindFast:
			cfg.Source = sample.SourceKindSeeded
		case sample.SourceKindCrypto:
			a.log.Warn("seed is ignored by the crypto source")
		}
	}

	src, seed, err := sample.NewSource(cfg.Source, cfg.Seed)
	if err != nil {
		return err
	}
	if cfg.Source == sample.SourceKindSeeded {
		a.log.Debug("random source", "kind", cfg.Source, "seed", seed)
	} else {
		a.log.Debug("random source", "kind", cfg.Source)
	}

	a.cfg = cfg
	a.sampler = sample.New(src)
	return nil
}

func newRootCmd() *cobra.Command {
	a := &app{flags: config.Default()}

	rootCmd := &cobra.Command{
		Use:           "randfactory",
		Short:         ShortDesc,
		Long:          LongDesc,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "Log diagnostics to stderr")
	pf.Var(newEnumValue(&a.flags.Source, sample.SourceKindString, sample.SourceKindStrings()),
		"source", fmt.Sprintf("Random source, one of %v", sample.SourceKindStrings()))
	pf.Uint64Var(&a.seed, "seed", 0, "Seed for a reproducible stream (implies --source seeded)")
	pf.IntVarP(&a.flags.Count, "count", "c", a.flags.Count, "Number of values to draw")
	pf.VarP(newEnumValue(&a.flags.Format, export.FormatString, export.FormatStrings()),
		"format", "f", fmt.Sprintf("Output format, one of %v", export.FormatStrings()))
	pf.Var(newEnumValue(&a.flags.Shell, export.ShellTypeString, export.ShellTypeStrings()),
		"shell", fmt.Sprintf("Shell syntax for --format env, one of %v", export.ShellTypeStrings()))
	pf.StringVarP(&a.flags.Name, "name", "n", a.flags.Name, "Variable name for --format env")
	pf.BoolVar(&a.flags.Persist, "persist", false, "Emit persistent assignments (export, setx) for --format env")

	rootCmd.AddCommand(newIntCmd(a), newFloatCmd(a), newPointCmd(a), newReplayCmd(a))
	return rootCmd
}

// Execute runs the command line in os.Args and returns the exit status.
func Execute() int {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
