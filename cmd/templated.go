// Package cmd — templated command.
// The interactive overlay workflow: verify the background template, prompt
// for the price list and output folder, then run the batch with every
// sheet composited onto the template.
package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jakerains/configpdfprocessor/config"
	"github.com/jakerains/configpdfprocessor/core/normalize"
	"github.com/jakerains/configpdfprocessor/core/output"
	"github.com/jakerains/configpdfprocessor/core/parse"
	"github.com/jakerains/configpdfprocessor/core/render"
	"github.com/jakerains/configpdfprocessor/core/source"
	"github.com/jakerains/configpdfprocessor/core/template"
	"github.com/jakerains/configpdfprocessor/logger"
)

var flagTemplatedPath string

var templatedCmd = &cobra.Command{
	Use:   "templated",
	Short: "Generate spec sheets on a pre-made background template, interactively",
	Long: `Templated runs the overlay workflow: each spec sheet is rendered into
the content band and composited onto the background template's header and
footer artwork. The price list path and output folder are prompted on stdin.`,
	Args: cobra.NoArgs,
	RunE: runTemplated,
}

func init() {
	rootCmd.AddCommand(templatedCmd)

	templatedCmd.Flags().StringVar(&flagTemplatedPath, "template", "template.pdf", "Background template PDF")
}

func runTemplated(cmd *cobra.Command, args []string) error {
	logger.Init("processor_template.log")

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if !template.Exists(flagTemplatedPath) {
		return fmt.Errorf("template PDF not found: %s (run 'configpdf template' to create one)", flagTemplatedPath)
	}

	reader := bufio.NewReader(os.Stdin)

	fmt.Println("\nPlease specify the markdown file to process:")
	fmt.Println("(You can drag and drop the file here or type the path)")
	inputPath, err := promptLine(reader)
	if err != nil {
		return err
	}
	if _, err := os.Stat(inputPath); err != nil {
		return fmt.Errorf("could not find markdown file: %s", inputPath)
	}

	fmt.Println("\nPlease specify the name for the output folder:")
	outputDir, err := promptLine(reader)
	if err != nil {
		return err
	}

	ctx := context.Background()

	markdown, err := source.New().Load(ctx, inputPath)
	if err != nil {
		return err
	}

	writer, err := output.New(outputDir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	normalizer := normalize.NewOpenAI(cfg.OpenAIKey, cfg.OpenAIModel)
	renderer := render.NewTemplatedSheetRenderer()

	if err := runBatch(ctx, markdown, parse.New(), normalizer, renderer, flagTemplatedPath, writer); err != nil {
		return err
	}

	fmt.Printf("\nProcessing complete! Files are located in: %s\n", writer.OutputDir)
	return nil
}

// promptLine reads one line from stdin, trimming whitespace and any
// surrounding quotes left by drag-and-drop.
func promptLine(reader *bufio.Reader) (string, error) {
	fmt.Print("> ")
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	line = strings.TrimSpace(line)
	line = strings.Trim(line, `"'`)
	if line == "" {
		return "", fmt.Errorf("empty input")
	}
	return line, nil
}
