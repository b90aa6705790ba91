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
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/grahamdash/graham/data"
)

// Concepts the overview metrics are derived from
const (
	tagRevenue     = "RevenueFromContractWithCustomerExcludingAssessedTax"
	tagOperatingCF = "NetCashProvidedByUsedInOperatingActivities"
	tagCapex       = "PaymentsToAcquirePropertyPlantAndEquipment"
	tagNetIncome   = "NetIncomeLoss"
	tagEquity      = "StockholdersEquity"
	tagLongDebt    = "LongTermDebt"
	tagShortDebt   = "ShortTermBorrowings"
)

var hundred = decimal.NewFromInt(100)

// MetricsHandler serves the company overview metrics endpoint
type MetricsHandler struct {
	store FactStore
}

func NewMetricsHandler(store FactStore) *MetricsHandler {
	return &MetricsHandler{store: store}
}

type companyMetrics struct {
	Revenue       decimal.Decimal `json:"revenue"`
	RevenueGrowth decimal.Decimal `json:"revenue_growth"`
	FreeCashFlow  decimal.Decimal `json:"free_cash_flow"`
	NetMargin     decimal.Decimal `json:"net_margin"`
	ROE           decimal.Decimal `json:"roe"`
	DebtToEquity  decimal.Decimal `json:"debt_to_equity"`
}

// CompanyMetrics computes overview metrics from the latest annual period
// and the prior fiscal year. Zero denominators yield zero metrics, not
// errors; partial data is the norm for sparsely tagged filers.
func (handler *MetricsHandler) CompanyMetrics(c *fiber.Ctx) error {
	ticker := strings.ToUpper(c.Params("ticker"))

	periods, err := handler.store.StatementPeriods(c.Context(), ticker, data.CadenceAnnual, 1)
	if err != nil {
		log.Error().Err(err).Str("Ticker", ticker).Msg("could not query annual periods")
		return serverError(c)
	}
	if len(periods) == 0 {
		return notFound(c, fmt.Sprintf("no annual data found for %s", ticker))
	}
	fiscalYear := periods[0].FiscalYear

	currentFacts, err := handler.store.AnnualFacts(c.Context(), ticker, fiscalYear)
	if err != nil {
		log.Error().Err(err).Str("Ticker", ticker).Msg("could not query annual facts")
		return serverError(c)
	}

	previousFacts, err := handler.store.AnnualFacts(c.Context(), ticker, fiscalYear-1)
	if err != nil {
		log.Error().Err(err).Str("Ticker", ticker).Msg("could not query annual facts")
		return serverError(c)
	}

	current := latestValueByTag(currentFacts)
	previous := latestValueByTag(previousFacts)

	return c.JSON(fiber.Map{
		"ticker":      ticker,
		"fiscal_year": fiscalYear,
		"metrics":     computeMetrics(current, previous),
	})
}

// computeMetrics derives the overview ratios from tag value maps
func computeMetrics(current map[string]decimal.Decimal, previous map[string]decimal.Decimal) companyMetrics {
	metrics := companyMetrics{}

	revenue := current[tagRevenue]
	metrics.Revenue = revenue

	if prevRevenue := previous[tagRevenue]; prevRevenue.IsPositive() {
		metrics.RevenueGrowth = revenue.Sub(prevRevenue).Div(prevRevenue).Mul(hundred)
	}

	// capex is reported as an outflow; its sign varies by filer
	metrics.FreeCashFlow = current[tagOperatingCF].Sub(current[tagCapex].Abs())

	netIncome := current[tagNetIncome]
	if revenue.IsPositive() {
		metrics.NetMargin = netIncome.Div(revenue).Mul(hundred)
	}

	equity := current[tagEquity]
	if equity.IsPositive() {
		metrics.ROE = netIncome.Div(equity).Mul(hundred)
		totalDebt := current[tagLongDebt].Add(current[tagShortDebt])
		metrics.DebtToEquity = totalDebt.Div(equity)
	}

	return metrics
}

// latestValueByTag reduces fact rows to one value per tag, preferring the
// most recently ended reporting window
func latestValueByTag(facts []*data.Fact) map[string]decimal.Decimal {
	type tagged struct {
		value decimal.Decimal
		end   int64
	}

	newest := make(map[string]tagged, len(facts))
	for _, fact := range facts {
		end := fact.EndDate.Unix()
		if existing, ok := newest[fact.Tag]; ok && existing.end >= end {
			continue
		}
		newest[fact.Tag] = tagged{value: fact.Value, end: end}
	}

	values := make(map[string]decimal.Decimal, len(newest))
	for tag, entry := range newest {
		values[tag] = entry.value
	}
	return values
}
