package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/openrobot/openrobot-go/openrobot"
	"github.com/openrobot/openrobot-go/openrobot/translate"
)

func newTranslateCommands(ctx *commandContext) []*cobra.Command {
	return []*cobra.Command{
		newTranslateCommand(ctx),
		newLanguagesCommand(ctx),
	}
}

func newTranslateCommand(ctx *commandContext) *cobra.Command {
	var service string
	var toLang string
	var fromLang string

	cmd := &cobra.Command{
		Use:   "translate <text>...",
		Short: "Translate text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []translate.Option
			if fromLang != "" {
				opts = append(opts, translate.WithFromLang(fromLang))
			}
			return ctx.withClient(cmd, func(client *openrobot.Client) error {
				result, err := client.Translate().Translate(cmd.Context(), translate.Service(service), strings.Join(args, " "), toLang, opts...)
				if err != nil {
					return err
				}
				return ctx.emit(cmd, result, func() string {
					return renderFields("From", result.FromLang, "To", result.ToLang, "Text", result.TranslatedText)
				})
			})
		},
	}

	cmd.Flags().StringVarP(&service, "service", "s", string(translate.ServiceGoogle), "Translation service")
	cmd.Flags().StringVarP(&toLang, "to", "t", "", "Target language code")
	cmd.Flags().StringVar(&fromLang, "from", "", "Source language code (detected when empty)")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func newLanguagesCommand(ctx *commandContext) *cobra.Command {
	var service string

	cmd := &cobra.Command{
		Use:   "languages",
		Short: "List the languages a translation service supports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(cmd, func(client *openrobot.Client) error {
				langs, err := client.Translate().Languages(cmd.Context(), translate.Service(service))
				if err != nil {
					return err
				}
				return ctx.emit(cmd, langs, func() string {
					rows := make([][]string, 0, len(langs))
					for _, l := range langs {
						rows = append(rows, []string{l.Code, l.Name})
					}
					return renderTable([]string{"Code", "Name"}, rows, nil)
				})
			})
		},
	}

	cmd.Flags().StringVarP(&service, "service", "s", string(translate.ServiceGoogle), "Translation service")
	return cmd
}
