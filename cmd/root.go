package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "nextup",
	Short: "keep sonarr one step ahead of what is playing in plex",
	Long:  `nextup reads the episode currently playing in plex and asks sonarr to fetch or monitor what comes next`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file")
}

const (
	defaultWatchedPercent = 90
)

func initConfig() {
	viper.SetConfigFile(cfgFile)

	viper.SetEnvPrefix("NEXTUP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", ""))
	viper.AutomaticEnv()

	viper.SetDefault("plex.uri", "")
	viper.SetDefault("plex.token", "")

	viper.SetDefault("sonarr.uri", "")
	viper.SetDefault("sonarr.apiKey", "")

	viper.SetDefault("sync.watchedPercent", defaultWatchedPercent)
	viper.SetDefault("sync.alreadyWatched", "keep")
	viper.SetDefault("sync.getOption", "episode")
	viper.SetDefault("sync.actionOption", "search")

	viper.SetDefault("http.timeout", 0)

	viper.SetDefault("lock.path", filepath.Join(os.TempDir(), "nextup.lock"))

	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.json", false)
}
