package cli

import (
	"fmt"

	"github.com/gnoir0t/asnbuild/internal/branding"
	"github.com/gnoir0t/asnbuild/internal/config"
	"github.com/gnoir0t/asnbuild/internal/rules"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// appFS is the filesystem all commands operate on. Tests swap in a memory
// filesystem through the asn and rules packages directly.
var appFS = afero.NewOsFs()

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` builds the association manifests that tell a calibration
pipeline which exposures to combine into one product and what role each
input plays (science exposure, source catalog, ...).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}

// resolveRule looks up a rule by name, falling back to the configured
// default when name is empty. User rule files override built-ins.
func resolveRule(name string) (*rules.Rule, error) {
	if name == "" {
		name = config.DefaultRule()
	}
	r, err := rules.Lookup(appFS, config.RulesDir(), name)
	if err != nil {
		return nil, fmt.Errorf("resolving rule: %w", err)
	}
	return r, nil
}
