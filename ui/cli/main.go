// Copyright (c) 2026 Keydash Team
// Keydash - API key dashboard
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the command-line interface for Keydash using Cobra. It
// defines the root command (which launches the TUI), the persistent flags
// and the shared startup that loads config, i18n and logging.

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/toeirei/keydash/buildvars"
	"github.com/toeirei/keydash/internal/clipboard"
	"github.com/toeirei/keydash/internal/config"
	"github.com/toeirei/keydash/internal/dashboard"
	"github.com/toeirei/keydash/internal/i18n"
	"github.com/toeirei/keydash/internal/logging"
	"github.com/toeirei/keydash/internal/tui"
	"golang.org/x/term"
)

var version = "dev"   // this will be set by the linker
var gitCommit = "dev" // set at build time with the short commit SHA
var buildDate = ""    // set at build time (RFC3339)
var cfgFile string
var verbose bool

var appConfig config.Config

// isTerminal reports whether fd is a terminal. Tests replace it.
var isTerminal = func(fd uintptr) bool { return term.IsTerminal(int(fd)) }

// logFile is the open log.file target, closed when the command finishes.
var logFile *os.File

func setupDefaultServices(cmd *cobra.Command, args []string) error {
	configPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	appConfig, err = config.LoadConfig[config.Config](cmd, config.Defaults(), configPath)
	// A missing file is expected on first run; write the defaults so the
	// user has something to edit.
	if errors.As(err, &viper.ConfigFileNotFoundError{}) {
		if writeErr := config.WriteConfigFile(&appConfig, false); writeErr != nil {
			logging.Warnf("could not write default config file: %v", writeErr)
		} else {
			logging.Debugf("wrote default config to user config path")
		}
	} else if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	if appConfig.Language == "" {
		appConfig.Language = "en"
	}
	i18n.Init(appConfig.Language)

	return setupLogging(appConfig.Log)
}

func setupLogging(c config.LogConfig) error {
	if c.Level != "" {
		if err := logging.SetLevel(c.Level); err != nil {
			logging.Warnf("%v, keeping current level", err)
		}
	}
	if verbose {
		logging.SetDebug(true)
	}
	if c.File == "" {
		return nil
	}
	f, err := os.OpenFile(c.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return fmt.Errorf("open log file %s: %w", c.File, err)
	}
	logFile = f
	logging.SetOutput(f)
	return nil
}

func closeLog(cmd *cobra.Command, args []string) {
	if logFile == nil {
		return
	}
	logging.SetOutput(os.Stderr)
	_ = logFile.Close()
	logFile = nil
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	// Only proceed if the user has explicitly set the --config flag.
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}

// newState builds the dashboard data from the loaded config.
func newState(c config.Config) *dashboard.State {
	return dashboard.New(dashboard.Options{
		Demo:       c.Seed.Demo,
		MaxEntries: c.Activity.MaxEntries,
	})
}

// Execute runs the CLI entrypoint. The cmd/keydash main package should
// call this function and handle process exit.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return NewRootCmd().ExecuteContext(ctx)
}

func applyDefaultFlags(cmd *cobra.Command) {
	d := config.Defaults()
	// NewRootCmd may be called repeatedly in tests; pflag panics on
	// duplicate definitions.
	if cmd.PersistentFlags().Lookup("language") != nil {
		return
	}
	f := cmd.PersistentFlags()
	f.String("language", d["language"].(string), `UI language ("en", "de")`)
	f.Duration("toast.duration", d["toast.duration"].(time.Duration), "how long notifications stay visible")
	f.Bool("activity.simulate", d["activity.simulate"].(bool), "simulate incoming API traffic")
	f.Duration("activity.interval", d["activity.interval"].(time.Duration), "activity simulator interval")
	f.Int("activity.max_entries", d["activity.max_entries"].(int), "number of recent activity rows to keep")
	f.String("log.level", d["log.level"].(string), "log level (debug, info, warn, error)")
	f.String("log.file", d["log.file"].(string), "write logs to this file")
	f.Bool("seed.demo", d["seed.demo"].(bool), "start with the demo keys and activity")
}

// NewRootCmd creates and configures a new root cobra command.
// This function is used to create the main application command as well as
// fresh instances for isolated testing.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keydash",
		Short: i18n.T("cli.short"),
		Long: `Keydash shows your API keys, usage statistics and recent activity
in the terminal. Keys can be created, revealed, copied and revoked.
All data lives in memory for the length of the session.

Running without a subcommand will launch the interactive TUI.`,
		SilenceUsage:      true,
		PersistentPreRunE: setupDefaultServices,
		PersistentPostRun: closeLog,
		RunE:              runDashboard,
	}

	v, c, d := resolveBuildVersion(nil)
	compositeVersion := v
	if c != "" && c != "dev" {
		compositeVersion = compositeVersion + " (" + c + ")"
	}
	if d != "" {
		compositeVersion = compositeVersion + " built: " + d
	}
	cmd.Version = compositeVersion

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
	applyDefaultFlags(cmd)

	cmd.AddCommand(newKeysCmd(), newActivityCmd(), newVersionCmd())
	return cmd
}

func runDashboard(cmd *cobra.Command, args []string) error {
	if !isTerminal(os.Stdout.Fd()) {
		return errors.New(i18n.T("cli.not_a_terminal"))
	}
	// The TUI owns the terminal; without a log file, logs are dropped.
	if logFile == nil {
		logging.SetOutput(io.Discard)
		defer logging.SetOutput(os.Stderr)
	}

	logging.Infof("starting dashboard (language %s, simulate %t)", appConfig.Language, appConfig.Activity.Simulate)
	return tui.Run(cmd.Context(), newState(appConfig), tui.RunOptions{
		Options: tui.Options{
			Copier:        clipboard.New(),
			ToastDuration: appConfig.Toast.Duration,
		},
		Simulate: appConfig.Activity.Simulate,
		Interval: appConfig.Activity.Interval,
	})
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: i18n.T("cli.version_short"),
		Run: func(cmd *cobra.Command, args []string) {
			v, c, d := resolveBuildVersion(nil)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "version: %s\n", v)
			fmt.Fprintf(out, "commit: %s\n", c)
			if d != "" {
				fmt.Fprintf(out, "built: %s\n", d)
			}
		},
	}
}

// resolveBuildVersion computes the best-available version, commit and build
// date for the running binary. If `info` is nil, it reads build info from
// the runtime.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := buildvars.VersionOrDefault(version)
	resolvedCommit := gitCommit
	resolvedDate := buildDate

	if info == nil {
		if local, ok := debug.ReadBuildInfo(); ok {
			info = local
		}
	}

	if info != nil {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		// If Main doesn't contain the version (some build paths), try to
		// find our module in the dependencies and use that version.
		if (resolvedVersion == "dev" || resolvedVersion == "(devel)") && info.Deps != nil {
			for _, dep := range info.Deps {
				if dep.Path == "github.com/toeirei/keydash" && dep.Version != "" {
					resolvedVersion = dep.Version
					break
				}
			}
		}

		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" {
					resolvedCommit = s.Value
				}
			case "vcs.time":
				if s.Value != "" {
					resolvedDate = s.Value
				}
			}
		}
	}

	// As a last resort show the commit passed via ldflags.
	if (resolvedVersion == "dev" || resolvedVersion == "(devel)") && resolvedCommit != "" && resolvedCommit != "dev" {
		resolvedVersion = resolvedCommit
	}
	return resolvedVersion, resolvedCommit, resolvedDate
}
