// Package cmd — generate command.
// Orchestrates the pipeline: source → parse → normalize → render → write.
// One output document per parsed product; a failed product is logged and
// skipped, the batch continues.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jakerains/configpdfprocessor/config"
	"github.com/jakerains/configpdfprocessor/core"
	"github.com/jakerains/configpdfprocessor/core/normalize"
	"github.com/jakerains/configpdfprocessor/core/output"
	"github.com/jakerains/configpdfprocessor/core/parse"
	"github.com/jakerains/configpdfprocessor/core/render"
	"github.com/jakerains/configpdfprocessor/core/source"
	"github.com/jakerains/configpdfprocessor/core/template"
	"github.com/jakerains/configpdfprocessor/logger"
)

// Flag variables.
var (
	flagPDF       bool
	flagMarkdown  bool
	flagJSON      bool
	flagTemplate  string
	flagOutputDir string
)

var generateCmd = &cobra.Command{
	Use:   "generate <input>",
	Short: "Generate spec sheets from a markdown price list",
	Long: `Generate parses a pipe-delimited markdown price list, structures each
product configuration, and writes one spec sheet per product.

The input is a local file or an http(s) URL. HTML pages are converted to
markdown before parsing.

Examples:
  configpdf generate 2024config.md
  configpdf generate 2024config.md --output_dir ./sheets
  configpdf generate https://example.com/pricelist --json
  configpdf generate 2024config.md --template template.pdf`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	// Output format flags (mutually exclusive; PDF is the default).
	generateCmd.Flags().BoolVar(&flagPDF, "pdf", false, "Output PDF spec sheets (default)")
	generateCmd.Flags().BoolVar(&flagMarkdown, "markdown", false, "Output markdown spec sheets")
	generateCmd.Flags().BoolVar(&flagJSON, "json", false, "Output structured JSON records")

	generateCmd.Flags().StringVar(&flagTemplate, "template", "", "Background template PDF to composite under each sheet")
	generateCmd.Flags().StringVar(&flagOutputDir, "output_dir", "", "Output directory (default: ./output)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	logger.Init("processor.log")

	if err := validateFlags(); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if flagTemplate != "" && !template.Exists(flagTemplate) {
		return fmt.Errorf("template PDF not found: %s (run 'configpdf template' to create one)", flagTemplate)
	}

	ctx := context.Background()

	markdown, err := source.New().Load(ctx, args[0])
	if err != nil {
		return err
	}

	writer, err := output.New(flagOutputDir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	normalizer := normalize.NewOpenAI(cfg.OpenAIKey, cfg.OpenAIModel)

	return runBatch(ctx, markdown, parse.New(), normalizer, selectRenderer(), flagTemplate, writer)
}

// runBatch parses the price list and processes every product through
// normalize → render → (overlay) → write. Per-product failures are logged
// and counted but do not abort the batch.
func runBatch(
	ctx context.Context,
	markdown string,
	parser core.Parser,
	normalizer core.Normalizer,
	renderer core.Renderer,
	templatePath string,
	writer *output.Writer,
) error {
	products := parser.Parse(markdown)
	if len(products) == 0 {
		return fmt.Errorf("no products found in the price list")
	}

	fmt.Fprintf(os.Stdout, "Found %d products to process\n", len(products))
	fmt.Fprintf(os.Stdout, "Output will be saved to: %s\n", writer.OutputDir)

	var errCount int
	for i, product := range products {
		fmt.Fprintf(os.Stdout, "[%d/%d] Processing %s\n", i+1, len(products), product.Name)
		logger.Info("processing product", "index", i+1, "total", len(products), "product", product.Name)

		path, err := processProduct(ctx, product, normalizer, renderer, templatePath, writer)
		if err != nil {
			fmt.Fprintf(os.Stderr, "  ✗ Error: %v\n", err)
			logger.Error("product failed", "product", product.Name, "error", err)
			errCount++
			continue
		}
		fmt.Fprintf(os.Stdout, "  ✓ Written: %s\n", path)
		logger.Info("generated spec sheet", "product", product.Name, "path", path)
	}

	if errCount > 0 {
		fmt.Fprintf(os.Stderr, "\n%d/%d products failed\n", errCount, len(products))
	}
	return nil
}

// processProduct runs one product through the back half of the pipeline.
func processProduct(
	ctx context.Context,
	product core.RawProduct,
	normalizer core.Normalizer,
	renderer core.Renderer,
	templatePath string,
	writer *output.Writer,
) (string, error) {
	record := normalize.Resolve(ctx, normalizer, product)

	data, err := renderer.Render(record)
	if err != nil {
		return "", fmt.Errorf("render: %w", err)
	}

	if templatePath != "" {
		data, err = template.Overlay(data, templatePath)
		if err != nil {
			return "", fmt.Errorf("overlay: %w", err)
		}
	}

	path, err := writer.Write(product.Name, data, renderer.Extension())
	if err != nil {
		return "", fmt.Errorf("write: %w", err)
	}
	return path, nil
}

// validateFlags checks that at most one output format is chosen and that
// the overlay path is only combined with PDF output.
func validateFlags() error {
	formatCount := 0
	if flagPDF {
		formatCount++
	}
	if flagMarkdown {
		formatCount++
	}
	if flagJSON {
		formatCount++
	}
	if formatCount > 1 {
		return fmt.Errorf("only one output format allowed per run (got %d)", formatCount)
	}

	if flagTemplate != "" && (flagMarkdown || flagJSON) {
		return fmt.Errorf("--template only applies to PDF output")
	}
	return nil
}

// selectRenderer creates the appropriate Renderer based on flags.
// PDF is the default; the overlay path uses the templated layout.
func selectRenderer() core.Renderer {
	switch {
	case flagMarkdown:
		return render.NewMarkdownRenderer()
	case flagJSON:
		return render.NewJSONRenderer()
	case flagTemplate != "":
		return render.NewTemplatedSheetRenderer()
	default:
		return render.NewSheetRenderer()
	}
}
