package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kapu/character-lookup-go/internal/app"
	"github.com/kapu/character-lookup-go/internal/config"
	"github.com/kapu/character-lookup-go/internal/util"
)

const tuiLogFile = "logs/lookup-tui.log"

// runtime holds what PersistentPreRunE assembles for the subcommands.
type runtime struct {
	container *app.Container
}

func (r *runtime) get() *app.Container {
	return r.container
}

func NewRootCmd(version string) *cobra.Command {
	rt := &runtime{}

	rootCmd := &cobra.Command{
		Use:   "lookup",
		Short: "Look up Mushroom Kingdom characters",
		Long: `Search the Super Mario Bros. character API, show a character card and
keep a per-session history of everything found.`,
		Version:           version,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: rt.setup,
		PersistentPostRun: rt.teardown,
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}

	addPersistentFlags(rootCmd)

	rootCmd.AddCommand(
		NewSearchCmd(rt.get),
		NewTUICmd(rt.get),
		NewServeCmd(rt.get),
	)

	return rootCmd
}

func addPersistentFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String("base-url", "", "Character API base URL (overrides LOOKUP_API_BASE_URL)")
	cmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (overrides LOG_LEVEL)")
	cmd.PersistentFlags().String("log-file", "", "Log file path (overrides LOG_FILE)")
}

func (r *runtime) setup(cmd *cobra.Command, _ []string) error {
	if r.container != nil {
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := applyFlagOverrides(cmd, cfg); err != nil {
		return err
	}

	// The TUI owns the terminal, so its logs always go to a file.
	if cmd.Name() == "tui" && cfg.Logging.File == "" {
		cfg.Logging.File = tuiLogFile
	}

	logger, err := util.NewLogger(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}

	container, err := app.Build(cfg, logger)
	if err != nil {
		return fmt.Errorf("assemble application: %w", err)
	}

	logger.Debug("Character lookup starting",
		zap.String("command", cmd.Name()),
		zap.String("log_level", cfg.Logging.Level),
	)

	r.container = container
	return nil
}

func (r *runtime) teardown(_ *cobra.Command, _ []string) {
	if r.container != nil {
		_ = r.container.Logger.Sync()
	}
}

func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()

	if flags.Changed("base-url") {
		cfg.API.BaseURL, _ = flags.GetString("base-url")
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-file") {
		cfg.Logging.File, _ = flags.GetString("log-file")
	}
	if flags.Lookup("addr") != nil && flags.Changed("addr") {
		cfg.Server.Addr, _ = flags.GetString("addr")
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}
	return nil
}
