package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/openrobot/openrobot-go/openrobot"
)

func newImageCommands(ctx *commandContext) []*cobra.Command {
	return []*cobra.Command{
		newNSFWCommand(ctx),
		newCelebrityCommand(ctx),
		newOCRCommand(ctx),
	}
}

func newNSFWCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "nsfw <image-url>",
		Short: "Score an image for unsafe content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(cmd, func(client *openrobot.Client) error {
				result, err := client.NSFWCheck(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return ctx.emit(cmd, result, func() string { return renderNSFW(result) })
			})
		},
	}
}

func newCelebrityCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "celebrity <image-url>",
		Short: "Detect celebrities in an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(cmd, func(client *openrobot.Client) error {
				results, err := client.Celebrity(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return ctx.emit(cmd, results, func() string { return renderCelebrities(results) })
			})
		},
	}
}

func newOCRCommand(ctx *commandContext) *cobra.Command {
	var filePath string

	cmd := &cobra.Command{
		Use:   "ocr [image-url]",
		Short: "Read the text in an image",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := imageSource(args, filePath)
			if err != nil {
				return err
			}
			return ctx.withClient(cmd, func(client *openrobot.Client) error {
				result, err := client.OCR(cmd.Context(), source)
				if err != nil {
					return err
				}
				return ctx.emit(cmd, result, func() string { return strings.TrimSpace(result.Text) })
			})
		},
	}

	cmd.Flags().StringVarP(&filePath, "file", "f", "", "Upload a local image instead of passing a URL")
	return cmd
}

func imageSource(args []string, filePath string) (openrobot.ImageSource, error) {
	filePath = strings.TrimSpace(filePath)
	switch {
	case filePath != "" && len(args) > 0:
		return openrobot.ImageSource{}, fmt.Errorf("pass either an image URL or --file, not both")
	case filePath != "":
		data, err := os.ReadFile(filePath)
		if err != nil {
			return openrobot.ImageSource{}, fmt.Errorf("read image: %w", err)
		}
		return openrobot.ImageBytes(data), nil
	case len(args) > 0:
		return openrobot.ImageURL(args[0]), nil
	default:
		return openrobot.ImageSource{}, fmt.Errorf("an image URL or --file is required")
	}
}

func renderNSFW(r *openrobot.NSFWCheckResult) string {
	rows := make([][]string, 0, len(r.Labels))
	for _, label := range r.Labels {
		rows = append(rows, []string{label.Name, label.ParentName, formatFloat(label.Confidence)})
	}
	return renderFields("NSFW score", formatFloat(r.Score)) + "\n" +
		renderTable([]string{"Label", "Parent", "Confidence"}, rows, []columnAlignment{alignLeft, alignLeft, alignRight})
}

func renderCelebrities(results []openrobot.CelebrityResult) string {
	if len(results) == 0 {
		return "No celebrities detected"
	}
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{r.Name, formatFloat(r.MatchConfidence), strings.Join(r.URLs, ", ")})
	}
	return renderTable([]string{"Name", "Confidence", "URLs"}, rows, []columnAlignment{alignLeft, alignRight, alignLeft})
}
