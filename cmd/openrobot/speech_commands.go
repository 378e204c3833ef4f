package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/openrobot/openrobot-go/openrobot"
	"github.com/openrobot/openrobot-go/openrobot/speech"
)

func newSpeechCommands(ctx *commandContext) []*cobra.Command {
	return []*cobra.Command{
		newSTTCommand(ctx),
		newTTSCommand(ctx),
		newVoicesCommand(ctx),
	}
}

func newSTTCommand(ctx *commandContext) *cobra.Command {
	var service string
	var filePath string
	var language string

	cmd := &cobra.Command{
		Use:   "stt [audio-url]",
		Short: "Transcribe speech to text",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := audioSource(args, filePath)
			if err != nil {
				return err
			}
			var opts []speech.SpeechToTextOption
			if language != "" {
				opts = append(opts, speech.WithSourceLanguage(language))
			}
			return ctx.withClient(cmd, func(client *openrobot.Client) error {
				result, err := client.Speech().SpeechToText(cmd.Context(), speech.Service(service), source, opts...)
				if err != nil {
					return err
				}
				return ctx.emit(cmd, result, func() string { return strings.TrimSpace(result.Text) })
			})
		},
	}

	cmd.Flags().StringVarP(&service, "service", "s", string(speech.ServiceAzure), "Speech-to-text service")
	cmd.Flags().StringVarP(&filePath, "file", "f", "", "Upload a local audio file instead of passing a URL")
	cmd.Flags().StringVarP(&language, "language", "l", "", "Spoken language (detected when empty)")
	return cmd
}

func newTTSCommand(ctx *commandContext) *cobra.Command {
	var service string
	var voice string
	var engine string

	cmd := &cobra.Command{
		Use:   "tts <text>...",
		Short: "Synthesize speech from text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []speech.TextToSpeechOption
			if engine != "" {
				opts = append(opts, speech.WithEngine(engine))
			}
			return ctx.withClient(cmd, func(client *openrobot.Client) error {
				result, err := client.Speech().TextToSpeech(cmd.Context(), speech.Service(service), strings.Join(args, " "), voice, opts...)
				if err != nil {
					return err
				}
				return ctx.emit(cmd, result, func() string { return result.URL })
			})
		},
	}

	cmd.Flags().StringVarP(&service, "service", "s", string(speech.ServicePolly), "Text-to-speech service")
	cmd.Flags().StringVarP(&voice, "voice", "v", "", "Voice ID (see the voices command)")
	cmd.Flags().StringVar(&engine, "engine", "", "Synthesis engine")
	_ = cmd.MarkFlagRequired("voice")
	return cmd
}

func newVoicesCommand(ctx *commandContext) *cobra.Command {
	var service string
	var languages bool

	cmd := &cobra.Command{
		Use:   "voices",
		Short: "List text-to-speech voices (or speech-to-text languages with --languages)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(cmd, func(client *openrobot.Client) error {
				if languages {
					langs, err := client.Speech().SupportedLanguages(cmd.Context(), speech.Service(service))
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
				}

				voices, err := client.Speech().SupportedVoices(cmd.Context(), speech.Service(service))
				if err != nil {
					return err
				}
				return ctx.emit(cmd, voices, func() string {
					rows := make([][]string, 0, len(voices))
					for _, v := range voices {
						rows = append(rows, []string{v.ID, v.Name, v.Gender, v.LanguageCode, strings.Join(v.Engines, ", ")})
					}
					return renderTable([]string{"ID", "Name", "Gender", "Language", "Engines"}, rows, nil)
				})
			})
		},
	}

	cmd.Flags().StringVarP(&service, "service", "s", string(speech.ServicePolly), "Speech service")
	cmd.Flags().BoolVar(&languages, "languages", false, "List speech-to-text languages instead of voices")
	return cmd
}

func audioSource(args []string, filePath string) (speech.Source, error) {
	filePath = strings.TrimSpace(filePath)
	switch {
	case filePath != "" && len(args) > 0:
		return speech.Source{}, fmt.Errorf("pass either an audio URL or --file, not both")
	case filePath != "":
		data, err := os.ReadFile(filePath)
		if err != nil {
			return speech.Source{}, fmt.Errorf("read audio: %w", err)
		}
		return speech.AudioBytes(data, filepath.Base(filePath)), nil
	case len(args) > 0:
		return speech.AudioURL(args[0]), nil
	default:
		return speech.Source{}, fmt.Errorf("an audio URL or --file is required")
	}
}
