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

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/grahamdash/graham/data"
	"github.com/grahamdash/graham/healthcheck"
	"github.com/grahamdash/graham/sec"
	"github.com/grahamdash/graham/store"
	"github.com/grahamdash/graham/taxonomy"
)

var (
	ingestTicker string
	ingestName   string
)

// ingestCmd represents the ingest command
var ingestCmd = &cobra.Command{
	Use:   "ingest [cik...]",
	Short: "Fetch XBRL company facts from SEC EDGAR and load them into the fact store",
	Long: `The ingest sub-command pulls every us-gaap fact EDGAR holds for the
given CIKs and upserts them into the statements table. Each tag is enriched
with standard label, documentation, and statement category from the
gaap_elements table; load those first with the elements sub-command. When
no CIKs are given every company already in the store is refreshed.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		runID := uuid.New()

		factStore, err := store.New(ctx, viper.GetString("db.url"))
		if err != nil {
			log.Fatal().Err(err).Msg("could not connect to fact store")
		}
		defer factStore.Close()

		elements, err := factStore.Elements(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("could not load gaap elements")
		}
		index := taxonomy.NewIndex(elements)
		if index.Len() == 0 {
			log.Warn().Msg("gaap_elements is empty; facts will not be enriched (run `graham elements` first)")
		}

		secClient, err := sec.NewClient(viper.GetString("sec.userAgent"),
			viper.GetInt("sec.rateLimit"))
		if err != nil {
			log.Fatal().Err(err).Msg("could not create EDGAR client")
		}

		companies := make([]*data.Company, 0, len(args))
		if len(args) == 0 {
			companies, err = factStore.Companies(ctx)
			if err != nil {
				log.Fatal().Err(err).Msg("could not list companies")
			}
			if len(companies) == 0 {
				log.Fatal().Msg("no companies in the store; pass a CIK to ingest")
			}
		} else {
			for _, cik := range args {
				companies = append(companies, &data.Company{
					CIK:    sec.NormalizeCIK(cik),
					Ticker: ingestTicker,
					Name:   ingestName,
				})
			}
			if len(args) > 1 && (ingestTicker != "" || ingestName != "") {
				log.Fatal().Msg("--ticker and --name only apply when ingesting a single CIK")
			}
		}

		checkID := viper.GetString("healthchecks.checkId")
		if checkID == "" && viper.GetString("healthchecks.apikey") != "" {
			checkSlug := slug.Make("graham ingest " + runID.String()[:5])
			checkID, err = healthcheck.Create("graham ingest", checkSlug,
				[]string{"graham", "ingest"}, viper.GetString("healthchecks.schedule"))
			if err != nil {
				log.Error().Err(err).Msg("could not create healthcheck")
			}
		}

		pingCheck(checkID, "start")

		for _, company := range companies {
			if err := ingestCompany(ctx, factStore, secClient, index, company); err != nil {
				log.Error().Err(err).Str("CIK", company.CIK).Msg("ingest failed")
				pingCheck(checkID, "fail")
				return
			}
		}

		pingCheck(checkID, "")
	},
}

// ingestCompany fetches, enriches, and stores every fact for one company
func ingestCompany(ctx context.Context, factStore *store.Store, secClient *sec.Client, index *taxonomy.Index, company *data.Company) error {
	companyFacts, err := secClient.CompanyFacts(ctx, company.CIK)
	if err != nil {
		return err
	}

	if company.Name == "" {
		company.Name = companyFacts.EntityName
	}

	conn, err := factStore.Pool.Acquire(ctx)
	if err != nil {
		return err
	}
	if err := company.SaveDB(ctx, conn); err != nil {
		conn.Release()
		return err
	}
	conn.Release()

	facts, stats := sec.BuildFacts(companyFacts, company.ID, index)
	if err := factStore.SaveFacts(ctx, facts); err != nil {
		return err
	}

	log.Info().Str("Ticker", company.Ticker).Str("CIK", company.CIK).
		Int("NumFacts", stats.Facts).Int("EnrichedTags", stats.EnrichedTags).
		Int("UnknownTags", len(stats.UnknownTags)).Msg("ingested company facts")

	return nil
}

func pingCheck(checkID string, status string) {
	if checkID == "" {
		return
	}
	if err := healthcheck.Ping(checkID, status); err != nil {
		log.Error().Err(err).Str("Status", status).Msg("could not ping healthcheck")
	}
}

func init() {
	rootCmd.AddCommand(ingestCmd)

	ingestCmd.Flags().StringVar(&ingestTicker, "ticker", "", "ticker symbol for the company being ingested")
	ingestCmd.Flags().StringVar(&ingestName, "name", "", "company name (defaults to the EDGAR entity name)")
}
