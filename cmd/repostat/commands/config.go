package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// newConfigCommand creates the config command, which prints the effective
// configuration after file, environment and flag merging.
func newConfigCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		RunE: func(_ *cobra.Command, _ []string) error {
			data, err := yaml.Marshal(root.cfg)
			if err != nil {
				return fmt.Errorf("encode config: %w", err)
			}

			_, err = os.Stdout.Write(data)
			if err != nil {
				return fmt.Errorf("write config: %w", err)
			}

			return nil
		},
	}
}
