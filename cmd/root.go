package cmd

import (
	"fmt"

	"github.com/abhisek/seqgen/internal/demo"
	"github.com/abhisek/seqgen/internal/logging"
	"github.com/abhisek/seqgen/internal/render"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewRootCmd builds the seqgen command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "seqgen",
		Short: "Structural-pattern number generators",
		Long: `seqgen demonstrates the base, adapter, composite and decorator patterns
on a small integer sequence generator.

Run without a subcommand to print the fixed demonstration.`,
		SilenceUsage: true,
		RunE:         runDemo,
	}

	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (overrides SEQGEN_LOG_LEVEL)")
	rootCmd.PersistentFlags().String("log-format", "", "Log format: console or json (overrides SEQGEN_LOG_FORMAT)")
	rootCmd.Flags().Int("count", 0, "Terms for the first base block (overrides SEQGEN_DEMO_COUNT)")
	rootCmd.Flags().Bool("color", false, "Color headers (overrides SEQGEN_COLOR)")

	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newSchemaCmd())
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

func Execute() error {
	return NewRootCmd().Execute()
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := demo.ConfigFromEnv()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("count") {
		cfg.Count, _ = cmd.Flags().GetInt("count")
	}
	if cmd.Flags().Changed("color") {
		cfg.Color, _ = cmd.Flags().GetBool("color")
	}

	logger, err := resolveLogger(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	p := render.NewText(cmd.OutOrStdout())
	if cfg.Color {
		p = render.NewStyledText(cmd.OutOrStdout())
	}
	return demo.Run(p, cfg, logger)
}

// resolveLogger builds the logger from --log-level/--log-format (highest
// priority), then SEQGEN_LOG_* env vars, then defaults.
func resolveLogger(cmd *cobra.Command) (*zap.Logger, error) {
	cfg := logging.ConfigFromEnv()
	if l, _ := cmd.Flags().GetString("log-level"); l != "" {
		cfg.Level = l
	}
	if f, _ := cmd.Flags().GetString("log-format"); f != "" {
		cfg.Format = f
	}

	logger, err := logging.NewWithWriter(cfg, cmd.ErrOrStderr())
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return logger, nil
}
