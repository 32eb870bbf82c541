package main

import (
	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/rendering"
	"github.com/spf13/cobra"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List résumé templates",
	Long:  "Lists the available LaTeX résumé templates. With --role or --company, the suggested template is marked.",
	RunE:  runTemplates,
}

var (
	templatesRole    string
	templatesCompany string
	templatesJSON    bool
)

func init() {
	templatesCmd.Flags().StringVar(&templatesRole, "role", "", "Target role used to suggest a template")
	templatesCmd.Flags().StringVar(&templatesCompany, "company", "", "Target company used to suggest a template")
	templatesCmd.Flags().BoolVar(&templatesJSON, "json", false, "Print the templates as JSON")

	rootCmd.AddCommand(templatesCmd)
}

func runTemplates(cmd *cobra.Command, _ []string) error {
	templates := rendering.Templates()

	suggested := ""
	if templatesRole != "" || templatesCompany != "" {
		suggested = rendering.SuggestTemplate(templatesRole, templatesCompany)
	}

	if templatesJSON {
		return writeJSON(cmd.OutOrStdout(), map[string]any{
			"templates": templates,
			"suggested": suggested,
		})
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintTemplates(templates, suggested)
	return nil
}
