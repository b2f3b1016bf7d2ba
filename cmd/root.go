// Package cmd implements the tautology command line.
package cmd

import (
	"errors"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/propcalc/tautology/config"
	"github.com/propcalc/tautology/logs"
	"github.com/propcalc/tautology/present"
	"github.com/propcalc/tautology/resolver"
	"github.com/propcalc/tautology/tableau"
)

// ErrRejected is returned when a formula could not be evaluated.
// The reason was already displayed.
var ErrRejected = errors.New("formula rejected")

// flags are the settings given on the command line.
type flags struct {
	cfgFile  string
	json     bool
	verify   bool
	verbose  bool
	maxSteps int
	timeout  time.Duration
}

// app is what commands need to evaluate and display formulas.
type app struct {
	resolver *resolver.Resolver
	renderer present.Renderer
	log      *slog.Logger
	closer   io.Closer
}

// NewRootCmd returns the tautology command and its subcommands.
func NewRootCmd() *cobra.Command {
	var fl flags
	var a app
	root := &cobra.Command{
		Use:   "tautology [formula]",
		Short: "Check propositional formulas",
		Long: `tautology checks whether a propositional formula is well formed,
whether it is a tautology, and prints its truth table.

Atoms are single uppercase letters (V included). Operators, from lowest to highest priority:
  <-> ↔   equivalence
  ->  →   implication
  v   ∨   disjunction
  ^   ∧   conjunction
  ~   ¬   negation`,
		Example:       `  tautology "(P -> Q) <-> (~Q -> ~P)"`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd, fl)
		},
		RunE: a.closing(func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return a.evaluate(cmd.OutOrStdout(), strings.Join(args, " "))
		}),
	}
	pf := root.PersistentFlags()
	pf.StringVar(&fl.cfgFile, "config", "", "config file (default: $TAUTOLOGY_CONFIG or ./tautology.toml)")
	pf.BoolVar(&fl.json, "json", false, "print results as JSON")
	pf.BoolVar(&fl.verify, "verify", false, "check every verdict with the SAT solver")
	pf.BoolVarP(&fl.verbose, "verbose", "v", false, "log each step of the tableau search")
	pf.IntVar(&fl.maxSteps, "max-steps", 0, "maximum number of tableau expansions, 0 for no limit")
	pf.DurationVar(&fl.timeout, "timeout", 0, "maximum duration of a tableau search, 0 for no limit")
	root.AddCommand(newSelfTestCmd(&a), newReplCmd(&a))
	return root
}

// Execute runs the tautology command with the arguments of the process.
func Execute() error {
	return NewRootCmd().Execute()
}

// init loads the configuration, overrides it with the flags that were set, and builds the app.
func (a *app) init(cmd *cobra.Command, fl flags) error {
	var cfg *config.Config
	var err error
	if fl.cfgFile != "" {
		cfg, err = config.Load(fl.cfgFile)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}
	changed := cmd.Flags().Changed
	if changed("json") && fl.json {
		cfg.Output.Format = "json"
	}
	if changed("verify") {
		cfg.Output.Verify = fl.verify
	}
	if fl.verbose {
		cfg.Log.Level = "debug"
	}
	if changed("max-steps") {
		cfg.Prover.MaxSteps = fl.maxSteps
	}
	if changed("timeout") {
		cfg.Prover.Timeout = config.Duration{Duration: fl.timeout}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	log, closer, err := logs.New(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.log = log
	a.closer = closer
	a.resolver = resolver.New(resolver.Options{
		Prover: tableau.Options{
			MaxSteps: cfg.Prover.MaxSteps,
			Timeout:  cfg.Prover.Timeout.Duration,
		},
		MaxVariables: cfg.Table.MaxVariables,
		Verify:       cfg.Output.Verify,
		Logger:       log,
	})
	if cfg.Output.Format == "json" {
		a.renderer = present.JSON{}
	} else {
		a.renderer = present.Text{}
	}
	return nil
}

// closing wraps run so that the resources of the app are released once it returns,
// whether it failed or not.
func (a *app) closing(run func(cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		defer func() {
			if err := a.closer.Close(); err != nil {
				a.log.Warn("could not close log file", "error", err)
			}
		}()
		return run(cmd, args)
	}
}

// evaluate evaluates input and displays the result on w.
func (a *app) evaluate(w io.Writer, input string) error {
	res := a.resolver.Evaluate(input)
	if err := a.renderer.Render(w, input, res); err != nil {
		return err
	}
	if !res.Success {
		return ErrRejected
	}
	return nil
}
