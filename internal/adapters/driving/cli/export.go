package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write all contacts and notes as YAML",
	Long: `Write all contacts and notes to a YAML document.

Without a file, or with -, the document goes to standard output.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Replace all contacts and notes from a YAML document",
	Long: `Replace all contacts and notes with the contents of a YAML document
written by 'lotus export'. With -, the document is read from standard input.

The import is all-or-nothing: an invalid document leaves the current data
untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	if stateService == nil {
		return errStateServiceMissing
	}

	if len(args) == 0 || args[0] == "-" {
		return stateService.Export(cmd.Context(), cmd.OutOrStdout())
	}

	f, err := os.OpenFile(args[0], os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	if err := stateService.Export(cmd.Context(), f); err != nil {
		f.Close() //nolint:errcheck // export error takes precedence
		return fmt.Errorf("failed to export: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}

	cmd.Printf("Exported to %s\n", args[0])
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	if stateService == nil {
		return errStateServiceMissing
	}

	var r io.Reader
	if args[0] == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open import file: %w", err)
		}
		defer f.Close()
		r = f
	}

	if err := stateService.Import(cmd.Context(), r); err != nil {
		return fmt.Errorf("failed to import: %w", err)
	}

	cmd.Printf("Imported %s\n", args[0])
	return nil
}
