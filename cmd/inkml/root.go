package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/go-inkml/inkml/pkg/inkml/config"
	"github.com/go-inkml/inkml/pkg/log"
)

var (
	cfgFile  string
	jsonLogs bool
	version  = "dev" // set via build flags

	// appConfig holds the codec defaults every subcommand passes to the
	// api layer: loaded from --config/$HOME/.inkml.yaml when present,
	// config.NewDefaultConfiguration() otherwise.
	appConfig = config.NewDefaultConfiguration()
)

var rootCmd = &cobra.Command{
	Use:   "inkml",
	Short: "Parse, canonicalize and emit InkML-dialect documents",
	Long: `inkml reads pen-stroke documents written in an InkML-flavored XML
dialect, resolves their channel/brush/context bookkeeping into canonical
physical-unit strokes, and can re-emit them in the same dialect.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and runs it.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig, initLogging)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.inkml.yaml)")
	rootCmd.PersistentFlags().String("log-level", "none", "log level (debug, info, none)")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "emit structured JSON logs instead of the default text logger")

	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.SetConfigType("yaml")
			viper.SetConfigName(".inkml")
		}
	}

	viper.SetEnvPrefix("INKML")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintf(os.Stderr, "using config file: %s\n", viper.ConfigFileUsed())
	}

	if used := viper.ConfigFileUsed(); used != "" {
		loaded, err := config.Load(used)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ignoring config file %s: %v\n", used, err)
		} else {
			appConfig = loaded
		}
	}
}

func initLogging() {
	if jsonLogs {
		z, err := zap.NewProduction()
		if err != nil {
			fmt.Fprintf(os.Stderr, "json logging unavailable: %v\n", err)
		} else {
			log.SetZapLoggers(z)
			return
		}
	}

	logLevel := viper.GetString("log_level")
	if !rootCmd.PersistentFlags().Lookup("log-level").Changed {
		logLevel = appConfig.LogLevel
	}

	switch logLevel {
	case "debug":
		log.SetDefaultLoggers()
	case "info":
		log.SetDefaultInfoLogger()
	default:
		log.DisableLoggers()
	}
}
