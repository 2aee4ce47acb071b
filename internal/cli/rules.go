package cli

import (
	"fmt"

	"github.com/gnoir0t/asnbuild/internal/config"
	"github.com/gnoir0t/asnbuild/internal/rules"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(rulesCmd)
}

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List available association rules",
	Long: `List built-in association rules and any user-defined rules found in
~/.asnbuild/rules/. User rules override built-ins of the same name.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		all, err := rules.All(appFS, config.RulesDir())
		if err != nil {
			return fmt.Errorf("listing rules: %w", err)
		}

		defaultRule := config.DefaultRule()
		for _, r := range all {
			marker := " "
			if r.Name == defaultRule {
				marker = "*"
			}
			fmt.Printf("%s %-10s %-20s schema %s\n", marker, r.Name, r.ASNRule, r.SchemaVersion)
		}
		return nil
	},
}
