package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"groupgrip/internal/config"
	"groupgrip/internal/eventbus"
	"groupgrip/internal/loader"
	"groupgrip/internal/logging"
	"groupgrip/internal/ui"
)

// flagValues holds command line overrides; only flags the user set are applied
type flagValues struct {
	configPath string
	source     string
	format     string
	delay      time.Duration
	logFile    string
	debug      bool
	noHelp     bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	flags := &flagValues{}

	cmd := &cobra.Command{
		Use:           "groupgrip [source]",
		Short:         "Browse groups and the friends you have in them",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 && !cmd.Flags().Changed("source") {
				if err := cmd.Flags().Set("source", args[0]); err != nil {
					return err
				}
			}

			cfg, err := resolveConfig(cmd.Flags(), flags)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	bindFlags(cmd.Flags(), flags)
	return cmd
}

func bindFlags(fs *pflag.FlagSet, flags *flagValues) {
	defaults := config.DefaultConfig()

	fs.StringVarP(&flags.configPath, "config", "c", "", "config file (.toml, .yaml or .yml)")
	fs.StringVarP(&flags.source, "source", "s", defaults.Source, "groups payload: file path or http(s) URL")
	fs.StringVar(&flags.format, "format", defaults.Format, "payload format: array or envelope")
	fs.DurationVar(&flags.delay, "delay", defaults.LoadDelay.Std(), "wait before loading the payload")
	fs.StringVar(&flags.logFile, "log-file", defaults.LogFile, "log file path, empty to disable logging")
	fs.BoolVar(&flags.debug, "debug", false, "log UI events")
	fs.BoolVar(&flags.noHelp, "no-help", false, "hide the key help footer")
}

// resolveConfig layers defaults, the config file and explicitly set flags
func resolveConfig(fs *pflag.FlagSet, flags *flagValues) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if flags.configPath != "" {
		loaded, err := config.LoadFromPath(flags.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if fs.Changed("source") {
		cfg.Source = flags.source
	}
	if fs.Changed("format") {
		cfg.Format = flags.format
	}
	if fs.Changed("delay") {
		cfg.LoadDelay = config.Duration(flags.delay)
	}
	if fs.Changed("log-file") {
		cfg.LogFile = flags.logFile
	}
	if fs.Changed("debug") {
		cfg.Debug = flags.debug
	}
	if fs.Changed("no-help") {
		cfg.UI.ShowHelpFooter = !flags.noHelp
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(parent context.Context, cfg *config.Config) error {
	if parent == nil {
		parent = context.Background()
	}

	logger, closeLog, err := logging.New(cfg.LogFile, cfg.Debug)
	if err != nil {
		return err
	}
	defer closeLog()

	// Create context for graceful shutdown
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bus := eventbus.New(logger)
	defer bus.Close()
	subscribeDiagnostics(bus, logger)

	ldr := loader.New(loader.NewSource(cfg.Source), cfg.Format)
	logger.Info("starting",
		zap.String("source", ldr.Source()),
		zap.String("format", cfg.Format),
		zap.Duration("load_delay", cfg.LoadDelay.Std()))

	model := ui.NewModel(ctx, cfg, ldr, bus, logger)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		logger.Error("error running program", zap.Error(err))
		return fmt.Errorf("error running program: %w", err)
	}
	logger.Info("UI exited normally")
	return nil
}

// subscribeDiagnostics records UI events in the log at debug level
func subscribeDiagnostics(bus eventbus.EventBus, logger *zap.Logger) {
	log := logger.Named("events")

	bus.Subscribe(eventbus.EventGroupsLoaded, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.GroupsLoadedEvent); ok {
			log.Info("groups loaded", zap.String("source", event.Source), zap.Int("count", event.Count))
		}
	})
	bus.Subscribe(eventbus.EventFilterChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.FilterChangedEvent); ok {
			log.Debug("filter changed",
				zap.String("field", string(event.Field)),
				zap.String("value", event.Value),
				zap.Int("visible", event.Visible))
		}
	})
	bus.Subscribe(eventbus.EventFriendsToggled, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.FriendsToggledEvent); ok {
			log.Debug("friends toggled", zap.Int("group_id", event.GroupID), zap.Bool("expanded", event.Expanded))
		}
	})
}
