package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/openrobot/openrobot-go/openrobot"
)

func newLyricsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "lyrics <query>...",
		Short: "Look up song lyrics",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(cmd, func(client *openrobot.Client) error {
				result, err := client.Lyrics(cmd.Context(), strings.Join(args, " "))
				if err != nil {
					return err
				}
				return ctx.emit(cmd, result, func() string {
					return fmt.Sprintf("%s - %s\n\n%s", result.Artist, result.Title, result.Lyrics)
				})
			})
		},
	}
}
