package cli

import (
	"fmt"

	"github.com/gnoir0t/asnbuild/internal/asn"
	"github.com/spf13/cobra"
)

var showRule string

func init() {
	showCmd.Flags().StringVar(&showRule, "rule", "", "Rule whose key table the manifest uses (default: configured default_rule)")
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show <manifest>",
	Short: "Print a summary of an association manifest",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rule, err := resolveRule(showRule)
		if err != nil {
			return err
		}

		m, err := asn.Load(appFS, args[0], rule.Keys)
		if err != nil {
			return err
		}

		fmt.Printf("rule:     %s\n", m.Rule)
		fmt.Printf("asn_type: %s\n", m.ASNType)
		for i, p := range m.Products {
			fmt.Printf("product %d: %s (%d member(s))\n", i, p.Name, len(p.Members))
			for _, mem := range p.Members {
				fmt.Printf("  %-12s %s\n", mem.Role, mem.Path)
			}
		}
		return nil
	},
}
