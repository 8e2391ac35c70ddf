/*
Copyright © 2025 Miquel Sabaté Solà <mssola@mssola.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mssola/mihi/internal/infrastructure/config"
)

const configFileKey = "config"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mihi",
	Short: "Latin declension tables from your own vocabulary",
	Long: `mihi keeps a dictionary of Latin words and builds the declension table
of its nouns and adjectives. Words can be managed from the command line or
queried through the HTTP API started by "mihi serve".`,
	SilenceUsage: true,
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

	rootCmd.PersistentFlags().String(configFileKey, "", "config file (default is $XDG_CONFIG_HOME/mihi/config.yaml)")
	bindFlagToViper(configFileKey, rootCmd.PersistentFlags().Lookup(configFileKey))
}

// initConfig lets MIHI_CONFIG point to the config file when --config is not
// given.
func initConfig() {
	viper.SetEnvPrefix(config.EnvPrefix)
	cobra.CheckErr(viper.BindEnv(configFileKey))
}

func configFile() string {
	return viper.GetString(configFileKey)
}
