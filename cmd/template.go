// Package cmd — template command.
// Writes the editable background template PDF that the overlay workflow
// composites spec sheets onto.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakerains/configpdfprocessor/core/template"
	"github.com/jakerains/configpdfprocessor/logger"
)

var templateCmd = &cobra.Command{
	Use:   "template [path]",
	Short: "Create an editable background template PDF",
	Long: `Template writes a starter background PDF with placeholder header and
footer bands. Edit the bands in a PDF editor, then use the file with
'configpdf templated' or 'configpdf generate --template'.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTemplate,
}

func init() {
	rootCmd.AddCommand(templateCmd)
}

func runTemplate(cmd *cobra.Command, args []string) error {
	logger.Init("template_creator.log")

	path := "template.pdf"
	if len(args) == 1 {
		path = args[0]
	}

	if err := template.CreateBackground(path); err != nil {
		return err
	}
	logger.Info("template created", "path", path)

	fmt.Println("\nTemplate created successfully!")
	fmt.Println("\nInstructions:")
	fmt.Println("1. Open", path, "in your PDF editor")
	fmt.Println("2. Add your desired header content in the gray header area")
	fmt.Println("3. Add your desired footer content in the gray footer area")
	fmt.Println("4. Save the modified template")
	fmt.Println("5. The template is now ready to use with 'configpdf templated'")
	fmt.Println("\nNote: Do not modify the content area between the markers")
	return nil
}
