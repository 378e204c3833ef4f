package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	flags := &globalFlags{}
	ctx := newCommandContext(flags)

	rootCmd := &cobra.Command{
		Use:           "openrobot",
		Short:         "OpenRobot API command-line client",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.config, "config", "c", "", "Configuration file path")
	pf.StringVar(&flags.token, "token", "", "API token (overrides environment and config)")
	pf.IntVar(&flags.tries, "tries", 0, "Requests per call while rate limited (-1 for no limit)")
	pf.BoolVar(&flags.noRateLimit, "no-ratelimit", false, "Fail on 429 instead of waiting for Retry-After")
	pf.BoolVar(&flags.json, "json", false, "Print results as JSON")
	pf.BoolVar(&flags.debug, "debug", false, "Log HTTP traffic to stderr")

	for _, cmd := range newTextCommands(ctx) {
		rootCmd.AddCommand(cmd)
	}
	for _, cmd := range newImageCommands(ctx) {
		rootCmd.AddCommand(cmd)
	}
	for _, cmd := range newTranslateCommands(ctx) {
		rootCmd.AddCommand(cmd)
	}
	for _, cmd := range newSpeechCommands(ctx) {
		rootCmd.AddCommand(cmd)
	}
	rootCmd.AddCommand(newLyricsCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
