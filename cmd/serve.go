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
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/grahamdash/graham/api"
	"github.com/grahamdash/graham/store"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the fact store over the REST API",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		factStore, err := store.New(ctx, viper.GetString("db.url"))
		if err != nil {
			log.Fatal().Err(err).Msg("could not connect to fact store")
		}
		defer factStore.Close()

		server := api.New(factStore, api.Config{
			CorsOrigins: viper.GetString("server.corsOrigins"),
		})

		addr := viper.GetString("server.address")
		if addr == "" {
			addr = ":8000"
		}

		go func() {
			log.Info().Str("Address", addr).Msg("starting API server")
			if err := server.Listen(addr); err != nil {
				log.Fatal().Err(err).Msg("API server failed")
			}
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit

		log.Info().Msg("shutting down API server")
		if err := server.Shutdown(); err != nil {
			log.Error().Err(err).Msg("error during shutdown")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("address", "", "listen address for the API server")
	if err := viper.BindPFlag("server.address", serveCmd.Flags().Lookup("address")); err != nil {
		log.Panic().Err(err).Msg("BindPFlag for address failed")
	}
}
