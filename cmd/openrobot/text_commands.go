package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/openrobot/openrobot-go/openrobot"
)

func newTextCommands(ctx *commandContext) []*cobra.Command {
	return []*cobra.Command{
		newGenerateCommand(ctx),
		newSentimentCommand(ctx),
		newSummarizeCommand(ctx),
		newTaskCommand(ctx),
	}
}

func newGenerateCommand(ctx *commandContext) *cobra.Command {
	var maxLength int
	var numReturn int

	cmd := &cobra.Command{
		Use:   "generate <text>...",
		Short: "Start a text generation task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []openrobot.TextGenerationOption{openrobot.WithNumReturn(numReturn)}
			if cmd.Flags().Changed("max-length") {
				opts = append(opts, openrobot.WithMaxLength(maxLength))
			}
			return ctx.withClient(cmd, func(client *openrobot.Client) error {
				result, err := client.TextGeneration(cmd.Context(), strings.Join(args, " "), opts...)
				if err != nil {
					return err
				}
				return ctx.emit(cmd, result, func() string { return renderTextGeneration(result) })
			})
		},
	}

	cmd.Flags().IntVar(&maxLength, "max-length", 0, "Maximum length of each generated text")
	cmd.Flags().IntVarP(&numReturn, "num", "n", 1, "Number of texts to generate")
	return cmd
}

func newSentimentCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "sentiment <text>...",
		Short: "Start a sentiment analysis task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(cmd, func(client *openrobot.Client) error {
				result, err := client.Sentiment(cmd.Context(), strings.Join(args, " "))
				if err != nil {
					return err
				}
				return ctx.emit(cmd, result, func() string { return renderSentiment(result) })
			})
		},
	}
}

func newSummarizeCommand(ctx *commandContext) *cobra.Command {
	var maxLength int
	var minLength int

	cmd := &cobra.Command{
		Use:   "summarize <text>...",
		Short: "Start a summarization task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []openrobot.SummarizationOption{openrobot.WithSummaryMinLength(minLength)}
			if cmd.Flags().Changed("max-length") {
				opts = append(opts, openrobot.WithSummaryMaxLength(maxLength))
			}
			return ctx.withClient(cmd, func(client *openrobot.Client) error {
				result, err := client.Summarization(cmd.Context(), strings.Join(args, " "), opts...)
				if err != nil {
					return err
				}
				return ctx.emit(cmd, result, func() string { return renderSummarization(result) })
			})
		},
	}

	cmd.Flags().IntVar(&maxLength, "max-length", 0, "Maximum summary length")
	cmd.Flags().IntVar(&minLength, "min-length", 1, "Minimum summary length")
	return cmd
}

func newTaskCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:       "task <generate|sentiment|summarize> <task-id>",
		Short:     "Fetch the state of a text task",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"generate", "sentiment", "summarize"},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, id := args[0], args[1]
			return ctx.withClient(cmd, func(client *openrobot.Client) error {
				switch kind {
				case "generate":
					result, err := client.TextGenerationGet(cmd.Context(), id)
					if err != nil {
						return err
					}
					return ctx.emit(cmd, result, func() string { return renderTextGeneration(result) })
				case "sentiment":
					result, err := client.SentimentGet(cmd.Context(), id)
					if err != nil {
						return err
					}
					return ctx.emit(cmd, result, func() string { return renderSentiment(result) })
				case "summarize":
					result, err := client.SummarizationGet(cmd.Context(), id)
					if err != nil {
						return err
					}
					return ctx.emit(cmd, result, func() string { return renderSummarization(result) })
				default:
					return fmt.Errorf("unknown task kind %q (want generate, sentiment or summarize)", kind)
				}
			})
		},
	}
}

func renderTextGeneration(r *openrobot.TextGenerationResult) string {
	pairs := []string{"Task", r.TaskID, "Status", r.Status, "Text", r.Text}
	for i, text := range r.Result {
		pairs = append(pairs, "Result "+strconv.Itoa(i+1), text)
	}
	return renderFields(pairs...)
}

func renderSentiment(r *openrobot.SentimentResult) string {
	out := renderFields("Task", r.TaskID, "Status", r.Status, "Text", r.Text)
	if len(r.Result) == 0 {
		return out
	}
	rows := make([][]string, 0, len(r.Result))
	for _, label := range r.Result {
		rows = append(rows, []string{label.Label, formatFloat(label.Score)})
	}
	return out + "\n" + renderTable([]string{"Label", "Score"}, rows, []columnAlignment{alignLeft, alignRight})
}

func renderSummarization(r *openrobot.SummarizationResult) string {
	return renderFields("Task", r.TaskID, "Status", r.Status, "Summary", r.Result)
}
