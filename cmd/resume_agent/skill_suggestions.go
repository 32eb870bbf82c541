package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-analyzer/internal/knowledge"
	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/skills"
	"github.com/spf13/cobra"
)

var skillSuggestionsCmd = &cobra.Command{
	Use:   "skill-suggestions",
	Short: "Suggest trending and role-specific skills",
	Long:  "Suggests trending and role-specific skills to learn. When --industry names a known industry (e.g. software_engineering, data_science), the skill categories it treats as essential and preferred are printed too.",
	RunE:  runSkillSuggestions,
}

var (
	skillSuggestionsConfigPath string
	skillSuggestionsIndustry   string
	skillSuggestionsRole       string
	skillSuggestionsJSON       bool
)

func init() {
	skillSuggestionsCmd.Flags().StringVar(&skillSuggestionsConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	skillSuggestionsCmd.Flags().StringVar(&skillSuggestionsIndustry, "industry", "", "Industry (e.g. technology, software_engineering, data_science)")
	skillSuggestionsCmd.Flags().StringVar(&skillSuggestionsRole, "role", "", "Target role (e.g. \"data scientist\")")
	skillSuggestionsCmd.Flags().BoolVar(&skillSuggestionsJSON, "json", false, "Print the suggestions as JSON")

	rootCmd.AddCommand(skillSuggestionsCmd)
}

// industryFocus returns the display names of the categories an industry treats as
// essential and preferred. ok is false when the industry has no profile.
func industryFocus(kb *knowledge.SkillBase, industry string) (essential, preferred []string, ok bool) {
	focus, ok := kb.Industry(industry)
	if !ok {
		return nil, nil, false
	}

	names := func(keys []string) []string {
		out := make([]string, 0, len(keys))
		for _, key := range keys {
			if c, found := kb.Category(key); found {
				out = append(out, c.DisplayName())
			}
		}
		return out
	}
	return names(focus.Essential), names(focus.Preferred), true
}

func runSkillSuggestions(cmd *cobra.Command, _ []string) error {
	cfg, err := loadCommandConfig(skillSuggestionsConfigPath, false)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("industry") {
		cfg.Industry = skillSuggestionsIndustry
	}
	if cmd.Flags().Changed("role") {
		cfg.Role = skillSuggestionsRole
	}
	if cmd.Flags().Changed("json") {
		cfg.JSON = skillSuggestionsJSON
	}

	kb := knowledge.Skills()
	suggestions := skills.NewAnalyzer(kb).Suggestions(cfg.Industry, cfg.Role)

	if cfg.JSON {
		return writeJSON(cmd.OutOrStdout(), suggestions)
	}

	printer := observability.NewPrinter(cmd.OutOrStdout())
	printer.PrintSkillSuggestions(&suggestions)
	if cfg.Industry != "" {
		essential, preferred, ok := industryFocus(kb, cfg.Industry)
		if !ok {
			_, _ = fmt.Fprintf(os.Stderr, "Note: no category profile for industry %q\n", cfg.Industry)
		}
		printer.PrintIndustryFocus(cfg.Industry, essential, preferred)
	}
	return nil
}
