package cli

import (
	"fmt"

	"github.com/gnoir0t/asnbuild/internal/asn"
	"github.com/spf13/cobra"
)

var setTypeRule string

func init() {
	setTypeCmd.Flags().StringVar(&setTypeRule, "rule", "", "Rule whose key table the manifest uses (default: configured default_rule)")
	rootCmd.AddCommand(setTypeCmd)
}

var setTypeCmd = &cobra.Command{
	Use:   "set-type <manifest> <asn-type>",
	Short: "Set the processing-mode tag of an existing manifest",
	Long: `Set the asn_type tag of an existing association manifest and write it
back. The tag is not checked against the rule; the downstream pipeline
decides whether it can process it.

Example:
  asnbuild set-type examp_A_asn.json spec2`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		manifestPath, tag := args[0], args[1]

		rule, err := resolveRule(setTypeRule)
		if err != nil {
			return err
		}

		m, err := asn.Load(appFS, manifestPath, rule.Keys)
		if err != nil {
			return err
		}

		m.SetASNType(tag)

		if err := asn.Persist(appFS, m, rule.Keys, manifestPath); err != nil {
			return err
		}

		fmt.Printf("Set asn_type of %s to %s\n", manifestPath, tag)
		return nil
	},
}
