// Package app assembles a groundlink binary from a name, an options struct,
// and a run function: cobra for the command surface, pflag for flags, viper
// for the optional YAML configuration file. The resulting configuration is an
// explicit value handed to the component; nothing in this package leaks
// globals into the core.
package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/groundlink-io/groundlink/pkg/log"
)

// CliOptions is the aggregate options contract a binary's option struct must
// satisfy.
type CliOptions interface {
	// AddFlags registers all flags of the binary.
	AddFlags(fs *pflag.FlagSet)

	// Validate checks the assembled configuration.
	Validate() []error
}

// RunFunc is the binary's entry point, invoked with a signal-aware context.
type RunFunc func(ctx context.Context) error

// App is a runnable command-line application.
type App struct {
	name        string
	short       string
	description string
	opts        CliOptions
	run         RunFunc

	configFile string
}

// Option configures an App during construction.
type Option func(*App)

// WithDescription sets the long help text.
func WithDescription(desc string) Option {
	return func(a *App) {
		a.description = desc
	}
}

// WithOptions binds the binary's option struct.
func WithOptions(opts CliOptions) Option {
	return func(a *App) {
		a.opts = opts
	}
}

// WithRunFunc sets the entry point.
func WithRunFunc(run RunFunc) Option {
	return func(a *App) {
		a.run = run
	}
}

// NewApp creates an App.
func NewApp(name, short string, options ...Option) *App {
	a := &App{
		name:  name,
		short: short,
	}
	for _, o := range options {
		o(a)
	}
	return a
}

// Run executes the application and exits the process on error.
func (a *App) Run() {
	cmd := a.buildCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func (a *App) buildCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           a.name,
		Short:         a.short,
		Long:          a.description,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCommand(cmd)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&a.configFile, "config", "c", "", "Path to a YAML configuration file.")
	if a.opts != nil {
		a.opts.AddFlags(fs)
	}

	return cmd
}

func (a *App) runCommand(cmd *cobra.Command) error {
	if a.opts != nil {
		if err := a.loadConfig(cmd.Flags()); err != nil {
			return err
		}

		if errs := a.opts.Validate(); len(errs) > 0 {
			for _, err := range errs {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			return fmt.Errorf("%d configuration error(s)", len(errs))
		}
	}

	if a.run == nil {
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	defer log.Info("Shutdown complete", "app", a.name)
	return a.run(ctx)
}

// loadConfig merges an optional YAML file underneath the flag values:
// explicit flags always win over file values, file values win over defaults.
func (a *App) loadConfig(fs *pflag.FlagSet) error {
	if a.configFile == "" {
		return nil
	}

	v := viper.New()
	v.SetConfigFile(a.configFile)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %s: %w", a.configFile, err)
	}

	var applyErr error
	fs.VisitAll(func(f *pflag.Flag) {
		if applyErr != nil || f.Changed || !v.IsSet(f.Name) {
			return
		}
		if err := fs.Set(f.Name, v.GetString(f.Name)); err != nil {
			applyErr = fmt.Errorf("config key %s: %w", f.Name, err)
		}
	})
	return applyErr
}
