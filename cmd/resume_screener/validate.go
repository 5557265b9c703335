package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a JSON document against a JSON Schema",
	RunE:  runValidate,
}

var (
	validateSchemaFile string
	validateInputFile  string
)

func init() {
	validateCmd.Flags().StringVarP(&validateSchemaFile, "schema", "s", "", "Path to JSON Schema file (required)")
	validateCmd.Flags().StringVarP(&validateInputFile, "in", "i", "", "Path to JSON document (required)")

	if err := validateCmd.MarkFlagRequired("schema"); err != nil {
		panic(fmt.Sprintf("failed to mark schema flag as required: %v", err))
	}
	if err := validateCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	if _, err := os.Stat(validateInputFile); err != nil {
		return fmt.Errorf("JSON file not found: %s", validateInputFile)
	}

	out := cmd.OutOrStdout()
	err := schemas.ValidateJSON(validateSchemaFile, validateInputFile)
	if err == nil {
		_, _ = fmt.Fprintf(out, "Validation passed\n")
		return nil
	}

	var validationErr *schemas.ValidationError
	if errors.As(err, &validationErr) {
		_, _ = fmt.Fprintf(out, "Validation failed\n")
		for _, fe := range validationErr.Errors {
			_, _ = fmt.Fprintf(out, "  - %s: %s\n", fe.Field, fe.Message)
		}
		return fmt.Errorf("%s does not match %s", validateInputFile, validateSchemaFile)
	}
	return err
}
