package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/rendering"
	"github.com/jonathan/resume-analyzer/internal/schemas"
	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a structured résumé to LaTeX",
	Long: `Renders a résumé build request (JSON matching resume_request.schema.json) with one of the LaTeX templates.

The template is taken from --template, then the request's template_id, then the default.`,
	RunE: runRender,
}

var (
	renderInputFile  string
	renderTemplateID string
	renderOutput     string
)

func init() {
	renderCmd.Flags().StringVarP(&renderInputFile, "input", "i", "", "Path to the résumé request JSON (required)")
	renderCmd.Flags().StringVarP(&renderTemplateID, "template", "t", "", "Template id (overrides template_id in the request)")
	renderCmd.Flags().StringVarP(&renderOutput, "out", "o", "", "Output .tex file (defaults to stdout)")

	if err := renderCmd.MarkFlagRequired("input"); err != nil {
		panic(fmt.Sprintf("failed to mark input flag as required: %v", err))
	}

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	data, err := os.ReadFile(renderInputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	req, err := loadResumeRequest(data)
	if err != nil {
		return err
	}

	templateID := req.Template()
	if id := strings.ToLower(strings.TrimSpace(renderTemplateID)); id != "" {
		if !rendering.IsKnownTemplate(id) {
			return fmt.Errorf("unknown template %q", renderTemplateID)
		}
		templateID = id
	}

	latex, err := rendering.Render(req, templateID)
	if err != nil {
		return err
	}

	if renderOutput == "" {
		_, err := cmd.OutOrStdout().Write(latex)
		return err
	}

	if err := os.MkdirAll(filepath.Dir(renderOutput), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(renderOutput, latex, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	_, _ = fmt.Fprintf(os.Stderr, "Rendered %s template to %s\n", rendering.GetTemplate(templateID).Name, renderOutput)
	return nil
}

// loadResumeRequest validates data against the résumé request schema and the struct
// validation rules.
func loadResumeRequest(data []byte) (*types.ResumeRequest, error) {
	if err := schemas.ValidateResumeRequest(data); err != nil {
		return nil, err
	}

	var req types.ResumeRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse resume request: %w", err)
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid resume request: %w", err)
	}
	return &req, nil
}
