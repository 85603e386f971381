package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/patchline/patchline/engine/core"
	"github.com/patchline/patchline/engine/credential"
	"github.com/patchline/patchline/pkg/config"
	"github.com/patchline/patchline/pkg/logger"
)

// RootCmd assembles the patchline command tree.
func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "patchline",
		Short: "Run chat and time-tracking integration nodes",
		Long: "Patchline executes integration nodes against their upstream APIs:\n" +
			"post and react to Mattermost messages, manage Clockify projects and\n" +
			"time entries, and feed the results into automation pipelines.",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error, disabled")
	root.PersistentFlags().Bool("log-json", false, "Emit logs as JSON")
	root.PersistentFlags().Bool("log-source", false, "Include source locations in logs")
	root.PersistentFlags().String("config", "", "Path to a YAML configuration file")
	root.PersistentFlags().String("env-file", "", "Dotenv file loaded before the configuration")
	root.PersistentFlags().String("cwd", "", "Change the working directory before running")

	root.AddCommand(
		RunCmd(),
		NodesCmd(),
		OptionsCmd(),
		ConfigCmd(),
		VersionCmd(),
	)

	return root
}

// setupContext prepares the command context: dotenv file, logger, loaded
// configuration manager, and the credential provider backed by it.
func setupContext(cmd *cobra.Command) (context.Context, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cwd, err := cmd.Flags().GetString("cwd")
	if err != nil {
		return nil, fmt.Errorf("failed to get cwd flag: %w", err)
	}
	if cwd != "" {
		pathCWD, err := core.CWDFromPath(cwd)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve working directory: %w", err)
		}
		if err := os.Chdir(pathCWD.PathStr()); err != nil {
			return nil, fmt.Errorf("failed to change working directory: %w", err)
		}
	}

	if err := loadEnvFile(cmd); err != nil {
		return nil, err
	}

	logLevel, logJSON, logSource, err := logger.GetLoggerConfig(cmd)
	if err != nil {
		return nil, err
	}
	log := logger.SetupLogger(logLevel, logJSON, logSource)
	ctx = logger.ContextWithLogger(ctx, log)

	manager := config.NewManager(config.NewService())
	if _, err := manager.Load(ctx, configSources(cmd)...); err != nil {
		return nil, err
	}
	ctx = config.ContextWithManager(ctx, manager)
	ctx = credential.ContextWithProvider(ctx, credential.NewConfigProvider())
	return ctx, nil
}

// loadEnvFile loads a dotenv file before the configuration reads the
// environment. An explicit --env-file must exist; the default .env is
// optional.
func loadEnvFile(cmd *cobra.Command) error {
	envFile, err := cmd.Flags().GetString("env-file")
	if err != nil {
		return fmt.Errorf("failed to get env-file flag: %w", err)
	}
	if envFile == "" {
		if _, statErr := os.Stat(".env"); statErr != nil {
			return nil
		}
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", envFile, err)
	}
	return nil
}

// configSources builds the precedence chain: defaults, YAML file,
// environment variables, CLI flags.
func configSources(cmd *cobra.Command) []config.Source {
	sources := []config.Source{config.NewDefaultProvider(), config.NewEnvProvider()}
	if configFile, err := cmd.Flags().GetString("config"); err == nil && configFile != "" {
		sources = append(sources, config.NewYAMLProvider(configFile))
	}
	overrides := make(map[string]any)
	if cmd.Flags().Changed("log-level") {
		if v, err := cmd.Flags().GetString("log-level"); err == nil {
			overrides["log.level"] = v
		}
	}
	if cmd.Flags().Changed("log-json") {
		if v, err := cmd.Flags().GetBool("log-json"); err == nil {
			overrides["log.json"] = v
		}
	}
	if cmd.Flags().Changed("log-source") {
		if v, err := cmd.Flags().GetBool("log-source"); err == nil {
			overrides["log.source"] = v
		}
	}
	if len(overrides) > 0 {
		sources = append(sources, config.NewCLIProvider(overrides))
	}
	return sources
}
