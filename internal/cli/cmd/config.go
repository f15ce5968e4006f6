package cmd

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/bnema/splitview/internal/application/usecase"
	"github.com/bnema/splitview/internal/cli/styles"
	"github.com/bnema/splitview/internal/infrastructure/config"
)

var (
	configJSON       bool
	configSection    string
	configJSONSchema bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
	Long:  `Show where splitview keeps its files, the effective settings, and every supported key.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show config, database, and log locations",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long: `Print the configuration after defaults, the config file, and
SPLITVIEW_ environment overrides have been merged.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "List every configuration key",
	Long: `List the supported configuration keys with their type, default,
allowed values, and description.

Examples:
  splitview config schema                   # All keys
  splitview config schema --section layout  # One section
  splitview config schema --jsonschema      # JSON Schema for editors`,
	Args: cobra.NoArgs,
	RunE: runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSchemaCmd)

	configShowCmd.Flags().BoolVar(&configJSON, "json", false, "output as JSON")
	configSchemaCmd.Flags().BoolVar(&configJSON, "json", false, "output keys as JSON")
	configSchemaCmd.Flags().StringVarP(&configSection, "section", "s", "", "only show keys of this section")
	configSchemaCmd.Flags().BoolVar(&configJSONSchema, "jsonschema", false, "output a JSON Schema document")
}

func runConfigPath(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewConfigRenderer(app.Theme)

	configFile, err := config.GetConfigFile()
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}

	if _, statErr := os.Stat(configFile); os.IsNotExist(statErr) {
		fmt.Print(renderer.RenderNoConfigFile(configFile))
	}

	database := app.DatabasePath()
	if version, verr := app.SchemaVersion(app.Ctx()); verr == nil {
		database = fmt.Sprintf("%s (schema v%d)", database, version)
	}

	logDir := app.Config.Logging.LogDir
	if !app.Config.Logging.EnableFileLog {
		logDir += " (file logging off)"
	}

	fmt.Print(renderer.RenderPaths([]styles.PathEntry{
		{Label: "Config", Path: configFile},
		{Label: "Database", Path: database},
		{Label: "Logs", Path: logDir},
	}))
	return nil
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	if configJSON {
		return writeJSON(app.Config)
	}

	renderer := styles.NewConfigRenderer(app.Theme)
	body, err := toml.Marshal(app.Config)
	if err != nil {
		fmt.Println(renderer.RenderError(fmt.Errorf("encode config: %w", err)))
		return nil
	}

	path := ""
	if app.ConfigManager != nil {
		path = app.ConfigManager.GetConfigFile()
	}
	fmt.Print(renderer.RenderEffective(path, string(body)))
	return nil
}

func runConfigSchema(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	if configJSONSchema {
		schema, err := config.GenerateSchema()
		if err != nil {
			return fmt.Errorf("generate schema: %w", err)
		}
		fmt.Println(string(schema))
		return nil
	}

	out, err := app.ConfigSchemaUC.Execute(app.Ctx(), usecase.GetConfigSchemaInput{Section: configSection})
	if err != nil {
		return err
	}

	renderer := styles.NewConfigSchemaRenderer(app.Theme)
	if configJSON {
		s, err := renderer.RenderJSON(out.Keys)
		if err != nil {
			return err
		}
		fmt.Println(s)
		return nil
	}
	fmt.Println(renderer.Render(out.Keys))
	return nil
}
