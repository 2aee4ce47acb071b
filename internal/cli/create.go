package cli

import (
	"fmt"
	"path/filepath"

	"github.com/gnoir0t/asnbuild/internal/asn"
	"github.com/gnoir0t/asnbuild/internal/config"
	"github.com/spf13/cobra"
)

var (
	createRule    string
	createProduct string
	createASNType string
	createOutput  string
)

func init() {
	createCmd.Flags().StringVar(&createRule, "rule", "", "Association rule (default: configured default_rule)")
	createCmd.Flags().StringVar(&createProduct, "product-name", "", "Product name (required)")
	createCmd.Flags().StringVar(&createASNType, "asn-type", "", "Processing-mode tag (default: the rule's default)")
	createCmd.Flags().StringVarP(&createOutput, "output", "o", "", "Output file (default: <output_dir>/<product-name>_asn.json)")
	rootCmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:   "create <exposure>...",
	Short: "Build a new association manifest",
	Long: `Build an association manifest from one or more exposure files and write it
to disk. Exposures become science members in the order given.

Examples:
  asnbuild create examp_A_rate.fits --rule level2 --product-name examp_A
  asnbuild create a_cal.fits b_cal.fits --rule level3 --product-name combined -o combined_asn.json`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if createProduct == "" {
			return fmt.Errorf("--product-name is required")
		}

		rule, err := resolveRule(createRule)
		if err != nil {
			return err
		}

		m, err := asn.Build(args, rule, createProduct)
		if err != nil {
			return err
		}
		if createASNType != "" {
			m.SetASNType(createASNType)
		}

		dest := resolveOutputPath(createOutput, config.OutputDir(), createProduct)

		if err := asn.Persist(appFS, m, rule.Keys, dest); err != nil {
			return err
		}

		fmt.Printf("Wrote %s (%d member(s), rule %s)\n", dest, len(m.Products[0].Members), rule.Name)
		return nil
	},
}

// resolveOutputPath picks the manifest destination: an explicit --output
// wins, otherwise the product name seeds a file in the output directory.
func resolveOutputPath(output, outputDir, productName string) string {
	if output != "" {
		return output
	}
	return filepath.Join(outputDir, productName+"_asn.json")
}
