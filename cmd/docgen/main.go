// Command docgen exercises the document-generation engine from the shell:
// validating uploaded templates, listing their variables, rendering them
// against a JSON data file, and merging rendered documents. All persistence
// is confined to this binary; the engine itself only sees byte buffers.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/leaseforge/docgen/pkg/docgen"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "docgen",
	Short: "Lease document generation: validate, render, and merge DOCX templates",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := docgen.GetGlobalConfig().LogLevel
		if verbose {
			level = "debug"
		}
		logger, err := docgen.NewLogger(level)
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}
		docgen.SetLogger(logger)
		return nil
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [template.docx]",
	Short: "Check a template for structural validity and report warnings",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		buf, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read template: %w", err)
		}
		return printJSON(docgen.ValidateTemplateFormat(buf))
	},
}

var variablesCmd = &cobra.Command{
	Use:   "variables [template.docx]",
	Short: "List the placeholder variables a template uses",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		buf, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read template: %w", err)
		}
		parsed, err := docgen.ParseDocxTemplate(buf)
		if err != nil {
			return err
		}
		return printJSON(docgen.ValidateVariables(parsed.Variables))
	},
}

var renderCmd = &cobra.Command{
	Use:   "render [template.docx] [data.json] [output.docx]",
	Short: "Render a template with data from a JSON file",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		buf, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read template: %w", err)
		}

		raw, err := os.ReadFile(args[1])
		if err != nil {
			return fmt.Errorf("read data: %w", err)
		}
		var data docgen.TemplateData
		if err := json.Unmarshal(raw, &data); err != nil {
			return fmt.Errorf("parse data: %w", err)
		}

		rendered, err := docgen.RenderTemplate(buf, data)
		if err != nil {
			return err
		}
		return os.WriteFile(args[2], rendered, 0o644)
	},
}

var previewCmd = &cobra.Command{
	Use:   "preview [template.docx] [data.json]",
	Short: "Print a text-only preview of a rendered template",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		buf, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read template: %w", err)
		}
		parsed, err := docgen.ParseDocxTemplate(buf)
		if err != nil {
			return err
		}

		raw, err := os.ReadFile(args[1])
		if err != nil {
			return fmt.Errorf("read data: %w", err)
		}
		var data docgen.TemplateData
		if err := json.Unmarshal(raw, &data); err != nil {
			return fmt.Errorf("parse data: %w", err)
		}

		fmt.Println(docgen.PreviewTemplateContent(parsed.RawText, data))
		return nil
	},
}

var mergeCmd = &cobra.Command{
	Use:   "merge [output.docx] [input.docx...]",
	Short: "Merge rendered documents into one, with page breaks between them",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		buffers := make([][]byte, 0, len(args)-1)
		for _, path := range args[1:] {
			buf, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}
			buffers = append(buffers, buf)
		}

		merged, err := docgen.MergeDocuments(buffers)
		if err != nil {
			return err
		}
		return os.WriteFile(args[0], merged, 0o644)
	},
}

var pagebreakCmd = &cobra.Command{
	Use:   "pagebreak [input.docx] [output.docx]",
	Short: "Append a trailing page break to a document",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		buf, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read document: %w", err)
		}
		out, err := docgen.AddPageBreak(buf)
		if err != nil {
			return err
		}
		return os.WriteFile(args[1], out, 0o644)
	},
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the variable catalog grouped by category",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printJSON(docgen.BuildVariableSchema())
	},
}

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Print a sample data object covering the variable catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printJSON(docgen.GetSampleData())
	},
}

func printJSON(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(validateCmd, variablesCmd, renderCmd, previewCmd, mergeCmd, pagebreakCmd, schemaCmd, sampleCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
