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
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// summaryTags are the headline concepts surfaced by the statement-summary
// endpoint
var summaryTags = []string{
	"Revenues",
	"NetIncomeLoss",
	"OperatingIncomeLoss",
	"Assets",
	"Liabilities",
	"StockholdersEquity",
}

// CompanyHandler serves company listing and raw fact endpoints
type CompanyHandler struct {
	store FactStore
}

func NewCompanyHandler(store FactStore) *CompanyHandler {
	return &CompanyHandler{store: store}
}

type companyResponse struct {
	Ticker string `json:"ticker"`
	Name   string `json:"name"`
}

// List returns every tracked company ordered by ticker
func (handler *CompanyHandler) List(c *fiber.Ctx) error {
	companies, err := handler.store.Companies(c.Context())
	if err != nil {
		log.Error().Err(err).Msg("could not query companies")
		return serverError(c)
	}

	resp := make([]companyResponse, 0, len(companies))
	for _, company := range companies {
		resp = append(resp, companyResponse{Ticker: company.Ticker, Name: company.Name})
	}

	return c.JSON(resp)
}

type factResponse struct {
	Tag          string          `json:"tag"`
	Value        decimal.Decimal `json:"value"`
	Unit         string          `json:"unit"`
	StartDate    string          `json:"start_date,omitempty"`
	EndDate      string          `json:"end_date,omitempty"`
	FiscalYear   int             `json:"fiscal_year"`
	FiscalPeriod string          `json:"fiscal_period"`
}

// RecentFacts returns the most recently ended raw facts for a ticker
func (handler *CompanyHandler) RecentFacts(c *fiber.Ctx) error {
	ticker := strings.ToUpper(c.Params("ticker"))

	limit := 100
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 10000 {
			return badRequest(c, "limit must be an integer between 1 and 10000")
		}
		limit = parsed
	}

	facts, err := handler.store.RecentFacts(c.Context(), ticker, limit)
	if err != nil {
		log.Error().Err(err).Str("Ticker", ticker).Msg("could not query recent facts")
		return serverError(c)
	}
	if len(facts) == 0 {
		return notFound(c, fmt.Sprintf("no statements found for %s", ticker))
	}

	resp := make([]factResponse, 0, len(facts))
	for _, fact := range facts {
		resp = append(resp, factResponse{
			Tag:          fact.Tag,
			Value:        fact.Value,
			Unit:         fact.Unit,
			StartDate:    formatDate(fact.StartDate),
			EndDate:      formatDate(fact.EndDate),
			FiscalYear:   fact.FiscalYear,
			FiscalPeriod: fact.FiscalPeriod,
		})
	}

	return c.JSON(resp)
}

// TagsForYear returns the distinct XBRL tags a company reported in a
// fiscal year
func (handler *CompanyHandler) TagsForYear(c *fiber.Ctx) error {
	ticker := strings.ToUpper(c.Params("ticker"))

	fiscalYear, err := c.ParamsInt("year")
	if err != nil || fiscalYear < 1 {
		return badRequest(c, "year must be a fiscal year")
	}

	tags, err := handler.store.TagsForYear(c.Context(), ticker, fiscalYear)
	if err != nil {
		log.Error().Err(err).Str("Ticker", ticker).Msg("could not query tags")
		return serverError(c)
	}

	return c.JSON(tags)
}

type summaryItem struct {
	Value  decimal.Decimal `json:"value"`
	Unit   string          `json:"unit"`
	Period string          `json:"period"`
}

// StatementSummary returns the headline concepts for one fiscal year
func (handler *CompanyHandler) StatementSummary(c *fiber.Ctx) error {
	ticker := strings.ToUpper(c.Params("ticker"))

	fiscalYear, err := c.ParamsInt("year")
	if err != nil || fiscalYear < 1 {
		return badRequest(c, "year must be a fiscal year")
	}

	facts, err := handler.store.TaggedFacts(c.Context(), ticker, fiscalYear, summaryTags)
	if err != nil {
		log.Error().Err(err).Str("Ticker", ticker).Msg("could not query summary facts")
		return serverError(c)
	}

	summary := make(map[string]summaryItem, len(facts))
	for _, fact := range facts {
		summary[fact.Tag] = summaryItem{
			Value:  fact.Value,
			Unit:   fact.Unit,
			Period: fact.FiscalPeriod,
		}
	}

	return c.JSON(fiber.Map{
		"ticker":      ticker,
		"fiscal_year": fiscalYear,
		"summary":     summary,
	})
}
