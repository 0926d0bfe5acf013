package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "just-in-time-recruiter"
)

type Config struct {
	Store         *StoreConfig `mapstructure:"store"`
	CompaniesFile string       `mapstructure:"companies-file"`
	Chat          *ChatConfig  `mapstructure:"chat"`
}

type StoreConfig struct {
	APIURL    string `mapstructure:"api-url"`
	UserAgent string `mapstructure:"user-agent"`
	TokenFile string `mapstructure:"token-file"`
}

type ChatConfig struct {
	ResponseDelayMS int `mapstructure:"response-delay-ms"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "just-in-time-recruiter is a cli for discovering at-risk talent and matching it against open roles",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("store.token-file", "JIT_RECRUITER_TOKEN_FILE"); err != nil {
		log.Fatalf("binding JIT_RECRUITER_TOKEN_FILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is "+app+".yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	// Config needed only for run command now. If there is no config, we can skip initialization
	if runCmd.CalledAs() == "" {
		return
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
	}

	// We can't proceed if the config file parsed with error.
	if err := viper.ReadInConfig(); err != nil {
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}
