package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/openrobot/openrobot-go/internal/config"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	configCmd.AddCommand(newConfigInitCommand())
	configCmd.AddCommand(newConfigShowCommand(ctx))

	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Create a sample configuration file",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				defaultPath, err := config.DefaultConfigPath()
				if err != nil {
					return fmt.Errorf("determine default config path: %w", err)
				}
				target = defaultPath
			}

			if err := config.CreateSample(target); err != nil {
				return fmt.Errorf("create sample config: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote sample configuration to %s\n", target)
			fmt.Fprintln(out, "Edit the file to set token (or export OPENROBOT_API_TOKEN).")
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the configuration file")
	return cmd
}

func newConfigShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			shown := *cfg
			token := "(not set)"
			if shown.Token != "" {
				token = "(set)"
				shown.Token = "****"
			}
			path := ctx.configPath
			if path == "" {
				path = "(defaults)"
			}

			return ctx.emit(cmd, shown, func() string {
				return renderFields(
					"Path", path,
					"Token", token,
					"Ignore warning", fmt.Sprint(cfg.IgnoreWarning),
					"Handle rate limit", fmt.Sprint(cfg.HandleRateLimit),
					"Tries", fmt.Sprint(cfg.Tries),
					"Timeout", cfg.Timeout,
					"Base URL", cfg.BaseURL,
				)
			})
		},
	}
}
