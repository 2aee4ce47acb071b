package cli

import (
	"fmt"

	"github.com/gnoir0t/asnbuild/internal/asn"
	"github.com/spf13/cobra"
)

var (
	addMemberRule    string
	addMemberRole    string
	addMemberProduct int
)

func init() {
	addMemberCmd.Flags().StringVar(&addMemberRule, "rule", "", "Rule whose key table the manifest uses (default: configured default_rule)")
	addMemberCmd.Flags().StringVar(&addMemberRole, "role", "", "Role tag for the new member (default: science)")
	addMemberCmd.Flags().IntVar(&addMemberProduct, "product", 0, "Product index to append to")
	rootCmd.AddCommand(addMemberCmd)
}

var addMemberCmd = &cobra.Command{
	Use:   "add-member <manifest> <path>",
	Short: "Append a member to an existing manifest",
	Long: `Append one member to a product of an existing association manifest and
write the manifest back. Prior member order is preserved; the new member
goes last.

Example:
  asnbuild add-member examp_A_asn.json catalog.ecsv --role sourcecat`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		manifestPath, memberPath := args[0], args[1]

		rule, err := resolveRule(addMemberRule)
		if err != nil {
			return err
		}

		m, err := asn.Load(appFS, manifestPath, rule.Keys)
		if err != nil {
			return err
		}

		if err := m.AppendMember(addMemberProduct, memberPath, addMemberRole); err != nil {
			return err
		}

		if err := asn.Persist(appFS, m, rule.Keys, manifestPath); err != nil {
			return err
		}

		role := addMemberRole
		if role == "" {
			role = asn.RoleScience
		}
		fmt.Printf("Added %s (%s) to product %d of %s\n", memberPath, role, addMemberProduct, manifestPath)
		return nil
	},
}
