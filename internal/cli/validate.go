package cli

import (
	"fmt"

	"github.com/gnoir0t/asnbuild/internal/asn"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate <manifest>...",
	Short: "Validate manifests against the association schema",
	Long: `Validate one or more association manifests against the wire contract
consumed by the downstream pipeline. Exits non-zero if any manifest is
invalid.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		failed := 0
		for _, path := range args {
			result, err := asn.ValidateFile(appFS, path)
			if err != nil {
				return fmt.Errorf("validating %s: %w", path, err)
			}
			if result.Valid {
				fmt.Printf("%s: valid\n", path)
				continue
			}
			failed++
			fmt.Printf("%s: invalid\n", path)
			for _, issue := range result.Issues {
				loc := issue.Path
				if loc == "" {
					loc = "/"
				}
				fmt.Printf("  %s: %s (%s)\n", loc, issue.Message, issue.Keyword)
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d manifest(s) failed validation", failed)
		}
		return nil
	},
}
