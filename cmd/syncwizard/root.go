package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"syncwizard/internal/app"
	"syncwizard/internal/config"
	"syncwizard/internal/logging"
)

const versionTemplate = `{{printf "syncwizard version %s\n" .Version}}`

func newRootCmd() *cobra.Command {
	defaults := config.DefaultConfig()
	rootCmd := &cobra.Command{
		Use:   "syncwizard",
		Short: "Set up a new synchronized folder",
		Long: `syncwizard walks you through adding a folder to synchronize:
pick the local source folder and an alias, then choose a local folder,
a network share or a folder on your remote service as the target.
The resulting folder definition is printed as YAML.`,
		Args:         cobra.NoArgs,
		Version:      version,
		SilenceUsage: true,
		RunE:         runWizard,
	}
	rootCmd.SetVersionTemplate(versionTemplate)
	config.RegisterFlags(rootCmd.Flags(), defaults)
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

func execute(rootCmd *cobra.Command) error {
	// Cobra prints the error itself.
	return rootCmd.Execute()
}

func runWizard(cmd *cobra.Command, _ []string) error {
	stored, loadErr := config.LoadConfig()
	cfg, err := config.ApplyFlags(cmd.Flags(), stored)
	if err != nil {
		return err
	}
	// An unreadable config file is left alone rather than overwritten.
	persist := &stored
	if loadErr != nil {
		persist = nil
	}

	logger, closer, err := logging.Open(cfg.LogFile, cfg.Debug)
	if err != nil {
		return err
	}
	defer closer.Close()
	if loadErr != nil {
		logger.Warn().Err(loadErr).Msg("config not loaded, using defaults")
	}

	if err := app.Run(cfg, persist, logger, cmd.OutOrStdout()); err != nil {
		logger.Error().Err(err).Msg("wizard failed")
		return fmt.Errorf("syncwizard: %w", err)
	}
	return nil
}
