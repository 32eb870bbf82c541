package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/schemas"
	schemafiles "github.com/jonathan/resume-analyzer/schemas"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a JSON file against an embedded schema",
	Long: fmt.Sprintf(`Validates a JSON document against one of the embedded schemas.

Available schemas: %s`, strings.Join(schemafiles.Names, ", ")),
	RunE: runValidate,
}

var (
	validateSchemaName string
	validateJSONPath   string
)

func init() {
	validateCmd.Flags().StringVar(&validateSchemaName, "schema", "", "Schema name, with or without the .schema.json suffix (required)")
	validateCmd.Flags().StringVar(&validateJSONPath, "json", "", "Path to JSON file to validate (required)")

	if err := validateCmd.MarkFlagRequired("schema"); err != nil {
		panic(fmt.Sprintf("failed to mark schema flag as required: %v", err))
	}
	if err := validateCmd.MarkFlagRequired("json"); err != nil {
		panic(fmt.Sprintf("failed to mark json flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

// schemaFileName resolves a schema name such as "company_profile" to its embedded file.
func schemaFileName(name string) (string, error) {
	if !strings.HasSuffix(name, ".schema.json") {
		name += ".schema.json"
	}
	for _, known := range schemafiles.Names {
		if known == name {
			return name, nil
		}
	}
	return "", fmt.Errorf("unknown schema %q (available: %s)", name, strings.Join(schemafiles.Names, ", "))
}

func runValidate(cmd *cobra.Command, _ []string) error {
	name, err := schemaFileName(validateSchemaName)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(validateJSONPath)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}

	if err := schemas.ValidateDocument(name, data); err != nil {
		var ve *schemas.ValidationError
		if errors.As(err, &ve) {
			_, _ = fmt.Fprintln(os.Stderr, "Validation failed:")
			for _, fe := range ve.Errors {
				_, _ = fmt.Fprintf(os.Stderr, "  - %s: %s\n", fe.Field, fe.Message)
			}
		}
		return fmt.Errorf("validation failed: %w", err)
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Validation passed")
	return nil
}
