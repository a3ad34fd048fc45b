package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/oakwood-commons/termgrid/internal/config"
	"github.com/oakwood-commons/termgrid/internal/formatter"
)

func newConfigCmd(root *rootOptions) *cobra.Command {
	var output string

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage termgrid configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	configCmd.PersistentFlags().StringVarP(&output, "output", "o", "yaml", "output format: yaml|json|toml")

	getCmd := &cobra.Command{
		Use:   "get",
		Short: "Show the merged configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(resolveConfigPath(root.configFile))
			if err != nil {
				return err
			}
			b, err := encodeConfig(cfg, output)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}

	defaultCmd := &cobra.Command{
		Use:   "default",
		Short: "Print the built-in default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := cmd.OutOrStdout().Write(config.DefaultConfigYAML())
			return err
		},
	}

	configCmd.AddCommand(getCmd, defaultCmd)
	return configCmd
}

func encodeConfig(cfg config.Config, output string) ([]byte, error) {
	out, err := formatter.ParseOutput(output)
	if err != nil {
		return nil, err
	}
	switch out {
	case formatter.OutputYAML:
		s, err := formatter.FormatYAML(cfg, formatter.YAMLFormatOptions{Indent: 2})
		return []byte(s), err
	case formatter.OutputJSON:
		b, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(b, '\n'), nil
	case formatter.OutputTOML:
		return toml.Marshal(cfg)
	}
	return nil, fmt.Errorf("%w %q for config", formatter.ErrUnsupportedOutput, output)
}
