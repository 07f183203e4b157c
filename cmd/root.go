// Package cmd implements the command-line interface for newswatch.
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jonesrussell/newswatch/cmd/run"
	"github.com/jonesrussell/newswatch/internal/config"
)

var (
	// cfgFile holds the path to the configuration file.
	cfgFile string

	// Debug enables debug mode for all commands
	Debug bool

	// rootCmd represents the root command for the newswatch CLI.
	rootCmd = &cobra.Command{
		Use:   "newswatch",
		Short: "A single-site news scraper",
		Long: `Searches a news site for a fixed phrase, extracts the newest result
and appends it to a spreadsheet.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
)

// Execute runs the root command
func Execute() error {
	// Load .env file early so environment variables are available
	_ = godotenv.Load()

	// Parse flags early so the debug flag is known before logger creation
	_ = rootCmd.ParseFlags(os.Args[1:])

	if err := initConfig(); err != nil {
		return fmt.Errorf("failed to initialize configuration: %w", err)
	}

	return rootCmd.ExecuteContext(context.Background())
}

// init initializes the root command and its subcommands.
func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"",
		"config file (default is ./config.yaml)",
	)
	rootCmd.PersistentFlags().BoolVar(&Debug, "debug", false, "enable debug mode")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("newswatch version %s\n", viper.GetString("app.version"))
		},
	})

	rootCmd.AddCommand(run.Command())
}

// initConfig reads in config file and ENV variables if set.
func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
	}

	// Environment variables take precedence over defaults
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	// Config file is optional; defaults and environment variables cover
	// the full configuration surface.
	if err := viper.ReadInConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Config file not found: %v (using defaults and environment variables)\n", err)
	}

	if err := viper.BindPFlag("app.debug", rootCmd.PersistentFlags().Lookup("debug")); err != nil {
		return fmt.Errorf("failed to bind debug flag: %w", err)
	}
	if err := viper.BindEnv("logger.level", "LOG_LEVEL"); err != nil {
		return fmt.Errorf("failed to bind LOG_LEVEL: %w", err)
	}
	if err := viper.BindEnv("scraper.search_phrase", "SEARCH_PHRASE"); err != nil {
		return fmt.Errorf("failed to bind SEARCH_PHRASE: %w", err)
	}
	if err := viper.BindEnv("scraper.output_dir", "OUTPUT_DIR"); err != nil {
		return fmt.Errorf("failed to bind OUTPUT_DIR: %w", err)
	}

	if Debug || viper.GetBool("app.debug") {
		viper.Set("logger.level", "debug")
		viper.Set("logger.development", true)
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("app", map[string]any{
		"name":        "newswatch",
		"version":     "1.0.0",
		"environment": "production",
		"debug":       false,
	})

	viper.SetDefault("logger", map[string]any{
		"level":       "info",
		"encoding":    "console",
		"development": false,
	})

	viper.SetDefault("scraper", map[string]any{
		"base_url":        "https://www.latimes.com/",
		"search_url":      "https://www.latimes.com/search",
		"search_phrase":   "ship",
		"output_dir":      "output",
		"request_timeout": config.DefaultRequestTimeout.String(),
		"user_agent":      config.DefaultUserAgent,
		"selectors": map[string]any{
			"result_item": "ul.search-results-module-results-menu > li:first-child",
			"title":       "h3.promo-title a.link",
			"description": "p.promo-description",
			"timestamp":   "p.promo-timestamp",
			"image":       "img.image",
		},
	})
}
