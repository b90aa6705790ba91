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
package api

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/grahamdash/graham/data"
	"github.com/grahamdash/graham/taxonomy"
)

// Format selects how much of each fact a response carries. Standard
// responses keep only the canonical concept per line item; detailed
// responses include every reported alternate plus the taxonomy metadata.
type Format int

const (
	FormatStandard Format = iota
	FormatDetailed
)

var ErrUnknownFormat = errors.New("unknown response format")

// ParseFormat recognizes the format query parameter values
func ParseFormat(s string) (Format, error) {
	switch s {
	case "", "standard":
		return FormatStandard, nil
	case "detailed":
		return FormatDetailed, nil
	}
	return FormatStandard, ErrUnknownFormat
}

// Item is one data point in a statement response. Label falls back to the
// raw tag when the taxonomy has no standard label for it.
type Item struct {
	Value              decimal.Decimal `json:"value"`
	Unit               string          `json:"unit"`
	Label              string          `json:"label"`
	FiscalYear         int             `json:"fiscal_year"`
	FiscalPeriod       string          `json:"fiscal_period"`
	StartDate          string          `json:"start_date,omitempty"`
	EndDate            string          `json:"end_date,omitempty"`
	Tag                string          `json:"tag,omitempty"`
	Documentation      string          `json:"documentation,omitempty"`
	FinancialStatement string          `json:"financial_statement,omitempty"`
}

// BuildStatement shapes fact rows into a statement data map keyed by tag.
// The currency scale is applied on the way out; stored values are never
// mutated. In standard format only canonical concepts survive.
func BuildStatement(facts []*data.Fact, format Format, scale data.Scale) map[string]Item {
	result := make(map[string]Item, len(facts))

	for _, fact := range facts {
		if format == FormatStandard && !taxonomy.Canonical(fact.FinancialStatement, fact.Tag) {
			continue
		}

		label := fact.StandardLabel
		if label == "" {
			label = fact.Tag
		}

		item := Item{
			Value:        scale.Apply(fact.Value),
			Unit:         fact.Unit,
			Label:        label,
			FiscalYear:   fact.FiscalYear,
			FiscalPeriod: fact.FiscalPeriod,
			StartDate:    formatDate(fact.StartDate),
			EndDate:      formatDate(fact.EndDate),
		}

		if format == FormatDetailed {
			item.Tag = fact.Tag
			item.Documentation = fact.Documentation
			item.FinancialStatement = fact.FinancialStatement
		}

		result[fact.Tag] = item
	}

	return result
}

// GroupByCategory shapes fact rows into per-statement data maps, used by
// the all-statements endpoint
func GroupByCategory(facts []*data.Fact, format Format, scale data.Scale) map[string]map[string]Item {
	byCategory := make(map[string][]*data.Fact)
	for _, fact := range facts {
		if fact.FinancialStatement == "" {
			continue
		}
		byCategory[fact.FinancialStatement] = append(byCategory[fact.FinancialStatement], fact)
	}

	result := make(map[string]map[string]Item, len(byCategory))
	for category, categoryFacts := range byCategory {
		shaped := BuildStatement(categoryFacts, format, scale)
		if len(shaped) > 0 {
			result[category] = shaped
		}
	}

	return result
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}
