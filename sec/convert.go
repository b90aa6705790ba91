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
package sec

import (
	"sort"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/grahamdash/graham/data"
	"github.com/grahamdash/graham/taxonomy"
)

// IngestStats summarizes a conversion run
type IngestStats struct {
	Facts        int
	EnrichedTags int
	UnknownTags  []string
}

// BuildFacts converts an EDGAR companyfacts payload into fact rows for the
// store, enriching each tag with GAAP element metadata from the index.
// Tags missing from the taxonomy are kept without enrichment and reported
// in the stats.
func BuildFacts(companyFacts *CompanyFacts, companyID int64, index *taxonomy.Index) ([]*data.Fact, IngestStats) {
	stats := IngestStats{}
	facts := make([]*data.Fact, 0, 4096)
	unknown := make(map[string]struct{})

	for tag, concept := range companyFacts.GaapFacts() {
		element, ok := index.Lookup(tag)
		if ok {
			stats.EnrichedTags++
		} else {
			unknown[tag] = struct{}{}
		}

		for unit, observations := range concept.Units {
			for _, observation := range observations {
				value, err := decimal.NewFromString(observation.Val.String())
				if err != nil {
					log.Warn().Str("Tag", tag).Str("Val", observation.Val.String()).
						Msg("skipping fact with unparseable value")
					continue
				}

				fact := &data.Fact{
					CompanyID:    companyID,
					Tag:          tag,
					Taxonomy:     "us-gaap",
					Unit:         unit,
					Value:        value,
					StartDate:    parseDate(observation.Start),
					EndDate:      parseDate(observation.End),
					FiscalYear:   observation.FY,
					FiscalPeriod: observation.FP,
					FilingDate:   parseDate(observation.Filed),
				}

				if ok {
					fact.StandardLabel = element.StandardLabel
					fact.Documentation = element.Documentation
					fact.FinancialStatement = element.FinancialStatement
				}

				facts = append(facts, fact)
				stats.Facts++
			}
		}
	}

	stats.UnknownTags = make([]string, 0, len(unknown))
	for tag := range unknown {
		stats.UnknownTags = append(stats.UnknownTags, tag)
	}
	sort.Strings(stats.UnknownTags)

	return facts, stats
}

func parseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}
	}
	return t
}
