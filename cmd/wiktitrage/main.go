// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the wiktitrage CLI.
//
// wiktitrage looks up a word on Wiktionary (by default the word currently
// in the clipboard), shows the etymology of each language section in turn
// and copies the shown etymology to the clipboard. Enter moves to the
// next language; any other key closes. The display closes by itself after
// a few seconds without input.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

func userAgent() string {
	return "wiktitrage/" + version
}

// rootCmd runs a rotation session.
var rootCmd = &cobra.Command{
	Use:   "wiktitrage [word]",
	Short: "Show the etymologies of a word as rotating subtitles",
	Long: `wiktitrage fetches the Wiktionary article for a word and shows the
etymology of each language section, one at a time, at the bottom of the
terminal. The word defaults to the current clipboard text.

Press Enter to show the next etymology; it is also copied to the clipboard.
Any other key closes the display, which otherwise closes by itself after
the countdown (7 seconds by default) without input.`,
	Version:      version,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE:         runSession,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.SetVersionTemplate("wiktitrage {{.Version}}\n")

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./wiktitrage.yaml, ~/.config/wiktitrage/wiktitrage.yaml or /etc/wiktitrage/wiktitrage.yaml)")
	pf.String("language", "fr", "Wiktionary edition to query")
	pf.String("endpoint", "", "api.php URL (overrides --language)")
	pf.Duration("timeout", 0, "HTTP request timeout (default 10s)")
	pf.String("log-level", "warn", "log level: debug, info, warn, error")
	pf.String("log-format", "text", "log format: text or json")

	f := rootCmd.Flags()
	f.IntP("height", "b", 3, "number of display lines")
	f.Int("width", 0, "display width in columns (0 = terminal width)")
	f.Int("countdown", 7, "seconds without input before the display closes")
	f.Duration("interval", 0, "countdown tick period (default 1s)")
	f.String("lock-file", "", "single-instance lock file")

	bind := map[string]string{
		"language":   "language",
		"endpoint":   "endpoint",
		"timeout":    "timeout",
		"log.level":  "log-level",
		"log.format": "log-format",
	}
	for key, name := range bind {
		_ = viper.BindPFlag(key, pf.Lookup(name))
	}
	bind = map[string]string{
		"lines":     "height",
		"width":     "width",
		"countdown": "countdown",
		"interval":  "interval",
		"lock_file": "lock-file",
	}
	for key, name := range bind {
		_ = viper.BindPFlag(key, f.Lookup(name))
	}
}

func initConfig() {
	setDefaults(viper.GetViper())

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("wiktitrage")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "wiktitrage"))
		}
		viper.AddConfigPath("/etc/wiktitrage")
	}

	viper.SetEnvPrefix("WIKTITRAGE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
