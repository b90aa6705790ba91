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
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/jackc/pgx/v5"
	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/grahamdash/graham/db"
)

type grahamConfig struct {
	DB struct {
		URL string `toml:"url"`
	} `toml:"db"`
	Server struct {
		Address     string `toml:"address"`
		CorsOrigins string `toml:"corsOrigins"`
	} `toml:"server"`
	SEC struct {
		UserAgent string `toml:"userAgent"`
	} `toml:"sec"`
}

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Gather database configuration and setup schema",
	Run: func(cmd *cobra.Command, args []string) {
		config := grahamConfig{}
		config.Server.Address = ":8000"

		form := huh.NewForm(
			// Get details about the database
			huh.NewGroup(
				huh.NewInput().
					Title("Provide the DSN for connecting to your PostgreSQL database (postgres://[user[:password]@][netloc][:port][/dbname][?param1=value1&...])").
					Value(&config.DB.URL).
					Validate(func(dsn string) error {
						_, err := pgx.ParseConfig(dsn)
						return err
					}),
			),

			// API server and EDGAR settings
			huh.NewGroup(
				huh.NewInput().
					Title("Listen address for the REST API:").
					Value(&config.Server.Address),

				huh.NewInput().
					Title("User-Agent for SEC EDGAR requests (e.g. 'Jane Doe jane@example.com'):").
					Value(&config.SEC.UserAgent).
					Validate(func(userAgent string) error {
						if strings.TrimSpace(userAgent) == "" {
							return errors.New("EDGAR requires a descriptive User-Agent")
						}
						return nil
					}),
			),
		)

		err := form.Run()
		if err != nil {
			log.Fatal().Err(err).Msg("error gathering database settings")
		}

		log.Info().Msg("creating database tables")

		// run migration
		dbURL := strings.Replace(config.DB.URL, "postgres://", "pgx5://", -1)
		err = db.Migrate(dbURL)
		if err != nil {
			log.Fatal().Err(err).Msg("error running database migration")
		}

		log.Info().Msg("database tables created")

		// save settings to config file
		home, err := os.UserHomeDir()
		if err != nil {
			log.Fatal().Err(err).Msg("could not determine user home directory")
		}

		configFN := filepath.Join(home, ".graham.toml")
		log.Info().Str("ConfigFile", configFN).Msg("Saving connection info to config file")
		configData, err := toml.Marshal(config)
		if err != nil {
			log.Fatal().Err(err).Msg("could not marshal configuration data")
		}

		err = os.WriteFile(configFN, configData, 0644)
		if err != nil {
			log.Fatal().Err(err).Str("FileName", configFN).Msg("could not save configuration to file")
		}

		log.Info().Msg("Your fact store has been initialized")
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
