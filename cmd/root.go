package cmd

import (
	"errors"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spigell/proforientation/internal/headhunter"
)

const (
	app = "proforientation"

	defaultStore = app + "-results.json"
)

type Config struct {
	Store     string           `mapstructure:"store"`
	User      string           `mapstructure:"user"`
	TieBreak  string           `mapstructure:"tie-break"`
	Seed      uint64           `mapstructure:"seed"`
	Vacancies *VacanciesConfig `mapstructure:"vacancies"`
	AI        *AIConfig        `mapstructure:"ai"`
}

type VacanciesConfig struct {
	Search           *headhunter.SearchParams `mapstructure:"search"`
	MaxPages         int                      `mapstructure:"max-pages"`
	ExcludeEmployers []string                 `mapstructure:"exclude-employers"`
	TokenFile        string                   `mapstructure:"token-file"`
	UserAgent        string                   `mapstructure:"user-agent"`
}

type AIConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	Gemini  *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKeyFile   string `mapstructure:"api-key-file"`
	Model        string `mapstructure:"model"`
	MaxRetries   int    `mapstructure:"max-retries"`
	MaxLogLength int    `mapstructure:"max-log-length"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "proforientation is a career orientation test for teenagers looking for their first job",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	viper.SetEnvPrefix("PROFORIENTATION")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	if err := viper.BindEnv("ai.gemini.api-key-file", "GEMINI_API_KEY_FILE"); err != nil {
		log.Fatalf("binding GEMINI_API_KEY_FILE environment variable: %v", err)
	}

	viper.SetDefault("store", defaultStore)
	viper.SetDefault("tie-break", "first")

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is proforientation.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().String("store", "", "results file (default is "+defaultStore+")")
	rootCmd.PersistentFlags().StringP("user", "u", "", "test taker name used to store and look up results")
	rootCmd.PersistentFlags().String("tie-break", "", "policy for equal category scores: first, lexical or random")
	rootCmd.PersistentFlags().Uint64("seed", 0, "seed for the random tie-break policy")

	for _, name := range []string{"debug", "json", "store", "user", "tie-break", "seed"} {
		if err := viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name)); err != nil {
			log.Fatalf("binding %s flag: %v", name, err)
		}
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
	}

	// The config file is optional unless requested explicitly.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	if config == nil {
		config = &Config{}
	}
	if config.Vacancies == nil {
		config.Vacancies = &VacanciesConfig{}
	}
	if config.Vacancies.Search == nil {
		config.Vacancies.Search = &headhunter.SearchParams{}
	}
	if config.AI == nil {
		config.AI = &AIConfig{}
	}

	return config, nil
}
