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

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/grahamdash/graham/store"
	"github.com/grahamdash/graham/taxonomy"
)

const elementBatchSize = 1000

// elementsCmd represents the elements command
var elementsCmd = &cobra.Command{
	Use:   "elements <csv-file>",
	Args:  cobra.ExactArgs(1),
	Short: "Load us-gaap taxonomy elements from a CSV file",
	Long: `The elements sub-command loads the trimmed us-gaap taxonomy CSV into
the gaap_elements table. Columns: element_name, standard_label,
documentation, financial_statement. Rows are upserted by element name so
the command can be re-run when a new taxonomy release is published.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		fh, err := os.Open(args[0])
		if err != nil {
			log.Fatal().Err(err).Str("FileName", args[0]).Msg("could not open taxonomy CSV")
		}
		defer fh.Close()

		elements, err := taxonomy.LoadCSV(fh)
		if err != nil {
			log.Fatal().Err(err).Str("FileName", args[0]).Msg("could not parse taxonomy CSV")
		}

		factStore, err := store.New(ctx, viper.GetString("db.url"))
		if err != nil {
			log.Fatal().Err(err).Msg("could not connect to fact store")
		}
		defer factStore.Close()

		for start := 0; start < len(elements); start += elementBatchSize {
			end := start + elementBatchSize
			if end > len(elements) {
				end = len(elements)
			}
			if err := factStore.SaveElements(ctx, elements[start:end]); err != nil {
				log.Fatal().Err(err).Int("BatchStart", start).Msg("could not save gaap elements")
			}
		}

		log.Info().Int("NumElements", len(elements)).Msg("loaded gaap elements")
	},
}

func init() {
	rootCmd.AddCommand(elementsCmd)
}
