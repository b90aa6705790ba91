// Copyright 2025
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package cmd

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "graham",
	Short: "graham maintains and serves a database of SEC-filed financial statements",
	Long: `graham is the backend for the Graham dashboard. It maintains a fact
store of XBRL financial facts filed with the SEC and serves them over a
REST API.

The fact store has three tables: the companies being tracked, the us-gaap
taxonomy elements that give each XBRL concept a human label, and one row
per reported value per (company, concept, period) window. Facts are pulled
from the SEC EDGAR companyfacts API and enriched with taxonomy metadata on
the way in; the API shapes them into income statement, balance sheet, cash
flow, and stockholders equity views by period.`,
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

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.graham.toml)")
	rootCmd.PersistentFlags().String("dbUrl", "", "database connection string")
	if err := viper.BindPFlag("db.url", rootCmd.PersistentFlags().Lookup("dbUrl")); err != nil {
		log.Panic().Err(err).Msg("BindPFlag for dbUrl failed")
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".graham" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("toml")
		viper.SetConfigName(".graham")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		log.Info().Str("ConfigFN", viper.ConfigFileUsed()).Msg("Using config file")
	}
}
