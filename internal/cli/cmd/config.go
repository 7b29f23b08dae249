package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/xiboic/internal/application/usecase"
	"github.com/bnema/xiboic/internal/cli/styles"
	"github.com/bnema/xiboic/internal/infrastructure/config"
)

var (
	configJSON    bool
	configForce   bool
	configWrite   bool
	configSection string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Show the effective configuration, write a default file, or list every key.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long:  `Print the configuration after defaults, the config file and XIBOIC_* variables are merged.`,
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Long: `Write the default configuration to $XDG_CONFIG_HOME/xiboic/config.toml,
or to the path given with --config. An existing file is kept unless --force is set.`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "List every configuration key",
	Long: `List configuration keys with their type, default and description.
--json prints the list as JSON, --write saves the JSON schema of the
config file next to it for editor completion.`,
	Args: cobra.NoArgs,
	RunE: runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd, configInitCmd, configSchemaCmd)

	configShowCmd.Flags().BoolVar(&configJSON, "json", false, "print as JSON")
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "overwrite an existing config file")
	configSchemaCmd.Flags().BoolVar(&configJSON, "json", false, "print as JSON")
	configSchemaCmd.Flags().BoolVar(&configWrite, "write", false, "write the JSON schema file")
	configSchemaCmd.Flags().StringVar(&configSection, "section", "", "only list keys of this section")
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	if configJSON {
		data, err := json.MarshalIndent(app.Config, "", "  ")
		if err != nil {
			return fmt.Errorf("encode config: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	data, err := config.EncodeConfig(app.Config)
	if err != nil {
		return err
	}
	renderer := styles.NewConfigRenderer(app.Theme)
	fmt.Println(renderer.RenderSource(app.Manager.ConfigFileUsed()))
	fmt.Println(renderer.RenderTOML(string(data)))
	return nil
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	renderer := styles.NewConfigRenderer(styles.NewTheme())

	path := appOpts.ConfigFile
	if path == "" {
		var err error
		path, err = config.GetConfigFile()
		if err != nil {
			return err
		}
	}

	if err := config.WriteConfigOrdered(config.DefaultConfig(), path, configForce); err != nil {
		fmt.Println(renderer.RenderError(err))
		return err
	}
	fmt.Println(renderer.RenderWritten("config", path))
	return nil
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	theme := styles.NewTheme()

	if configWrite {
		path, err := config.GetSchemaFile()
		if err != nil {
			return err
		}
		if err := config.WriteSchemaFile(path); err != nil {
			return err
		}
		fmt.Println(styles.NewConfigRenderer(theme).RenderWritten("schema", path))
		return nil
	}

	uc := usecase.NewGetConfigSchemaUseCase(config.NewSchemaProvider())
	out, err := uc.Execute(cmd.Context(), usecase.GetConfigSchemaInput{Section: configSection})
	if err != nil {
		return err
	}

	renderer := styles.NewConfigSchemaRenderer(theme)
	if configJSON {
		data, err := renderer.RenderJSON(out.Keys)
		if err != nil {
			return err
		}
		fmt.Println(data)
		return nil
	}
	fmt.Println(renderer.Render(out.Keys))
	return nil
}
