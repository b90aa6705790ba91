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
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/grahamdash/graham/data"
)

// maxPeriodCount caps the count query parameter on series endpoints
const maxPeriodCount = 100

// errResponseWritten signals that a validation failure was already
// answered with a 4xx body; handlers must return nil so fiber does not
// overwrite the response
var errResponseWritten = errors.New("response already written")

// reject wraps the result of writing an error response. A failed write
// propagates; a successful one becomes errResponseWritten.
func reject(writeErr error) error {
	if writeErr != nil {
		return writeErr
	}
	return errResponseWritten
}

// StatementHandler serves the statement retrieval endpoints
type StatementHandler struct {
	store FactStore
}

func NewStatementHandler(store FactStore) *StatementHandler {
	return &StatementHandler{store: store}
}

// statementRequest carries the validated request dimensions shared by
// every statement endpoint
type statementRequest struct {
	Ticker   string
	Category string
	Format   Format
	Scale    data.Scale
}

// parseRequest validates the common path and query parameters. On
// invalid input the 4xx response is written here and the returned error
// is errResponseWritten.
func (handler *StatementHandler) parseRequest(c *fiber.Ctx) (*statementRequest, error) {
	req := &statementRequest{
		Ticker: strings.ToUpper(c.Params("ticker")),
	}

	if slug := c.Params("statement"); slug != "" {
		category, err := data.StatementFromSlug(slug)
		if err != nil {
			return nil, reject(notFound(c, fmt.Sprintf("unknown statement type %q", slug)))
		}
		req.Category = category
	}

	format, err := ParseFormat(c.Query("format"))
	if err != nil {
		return nil, reject(badRequest(c, "format must be standard or detailed"))
	}
	req.Format = format

	scale, err := data.ParseScale(c.Query("currency"))
	if err != nil {
		return nil, reject(badRequest(c, "currency must be actual, millions, or billions"))
	}
	req.Scale = scale

	return req, nil
}

type statementResponse struct {
	Ticker        string          `json:"ticker"`
	FiscalYear    int             `json:"fiscal_year"`
	FiscalPeriod  string          `json:"fiscal_period"`
	PeriodType    string          `json:"period_type,omitempty"`
	StatementType string          `json:"statement_type"`
	Data          map[string]Item `json:"data"`
}

type periodData struct {
	FiscalYear   int             `json:"fiscal_year"`
	FiscalPeriod string          `json:"fiscal_period"`
	EndDate      string          `json:"end_date"`
	Data         map[string]Item `json:"data"`
}

type seriesResponse struct {
	Ticker           string       `json:"ticker"`
	StatementType    string       `json:"statement_type"`
	PeriodType       string       `json:"period_type,omitempty"`
	DateRange        string       `json:"date_range,omitempty"`
	PeriodsRequested int          `json:"periods_requested,omitempty"`
	PeriodsReturned  int          `json:"periods_returned"`
	Periods          []periodData `json:"periods"`
}

func cadenceName(cadence data.Cadence) string {
	switch cadence {
	case data.CadenceAnnual:
		return "annual"
	case data.CadenceQuarterly:
		return "quarterly"
	}
	return ""
}

// Latest returns a handler serving the most recent period of the given
// cadence for one statement type
func (handler *StatementHandler) Latest(cadence data.Cadence) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req, err := handler.parseRequest(c)
		if err != nil {
			if errors.Is(err, errResponseWritten) {
				return nil
			}
			return err
		}

		periods, err := handler.store.StatementPeriods(c.Context(), req.Ticker, cadence, 1)
		if err != nil {
			log.Error().Err(err).Str("Ticker", req.Ticker).Msg("could not query statement periods")
			return serverError(c)
		}
		if len(periods) == 0 {
			return notFound(c, fmt.Sprintf("no data found for %s", req.Ticker))
		}

		facts, err := handler.store.PeriodFacts(c.Context(), req.Ticker, periods[0], req.Category)
		if err != nil {
			log.Error().Err(err).Str("Ticker", req.Ticker).Msg("could not query period facts")
			return serverError(c)
		}
		if len(facts) == 0 {
			return notFound(c, fmt.Sprintf("no statement found for %s", req.Ticker))
		}

		return c.JSON(statementResponse{
			Ticker:        req.Ticker,
			FiscalYear:    periods[0].FiscalYear,
			FiscalPeriod:  periods[0].FiscalPeriod,
			PeriodType:    cadenceName(cadence),
			StatementType: req.Category,
			Data:          BuildStatement(facts, req.Format, req.Scale),
		})
	}
}

// Series returns a handler serving the N most recent periods of the given
// cadence, newest first. When fewer periods exist than requested the
// response carries what exists; that is not an error.
func (handler *StatementHandler) Series(cadence data.Cadence) fiber.Handler {
	defaultCount := 4
	if cadence == data.CadenceAnnual {
		defaultCount = 5
	}

	return func(c *fiber.Ctx) error {
		req, err := handler.parseRequest(c)
		if err != nil {
			if errors.Is(err, errResponseWritten) {
				return nil
			}
			return err
		}

		count := defaultCount
		if raw := c.Query("count"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 || parsed > maxPeriodCount {
				return badRequest(c, fmt.Sprintf("count must be an integer between 1 and %d", maxPeriodCount))
			}
			count = parsed
		}

		periods, err := handler.store.StatementPeriods(c.Context(), req.Ticker, cadence, count)
		if err != nil {
			log.Error().Err(err).Str("Ticker", req.Ticker).Msg("could not query statement periods")
			return serverError(c)
		}
		if len(periods) == 0 {
			return notFound(c, fmt.Sprintf("no %s data found for %s", cadenceName(cadence), req.Ticker))
		}

		resultPeriods, err := handler.collectPeriods(c, req, periods)
		if err != nil {
			return serverError(c)
		}
		if len(resultPeriods) == 0 {
			return notFound(c, fmt.Sprintf("no %s data found for %s", cadenceName(cadence), req.Ticker))
		}

		return c.JSON(seriesResponse{
			Ticker:           req.Ticker,
			StatementType:    req.Category,
			PeriodType:       cadenceName(cadence),
			PeriodsRequested: count,
			PeriodsReturned:  len(resultPeriods),
			Periods:          resultPeriods,
		})
	}
}

// Range serves every period inside inclusive fiscal-year bounds
func (handler *StatementHandler) Range(c *fiber.Ctx) error {
	req, err := handler.parseRequest(c)
	if err != nil {
		if errors.Is(err, errResponseWritten) {
			return nil
		}
		return err
	}

	fromYear := c.QueryInt("from")
	toYear := c.QueryInt("to")
	if fromYear < 1 || toYear < fromYear {
		return badRequest(c, "from and to must be fiscal years with from <= to")
	}

	periods, err := handler.store.PeriodsInRange(c.Context(), req.Ticker, fromYear, toYear)
	if err != nil {
		log.Error().Err(err).Str("Ticker", req.Ticker).Msg("could not query statement periods")
		return serverError(c)
	}
	if len(periods) == 0 {
		return notFound(c, fmt.Sprintf("no data found for %s between %d and %d",
			req.Ticker, fromYear, toYear))
	}

	resultPeriods, err := handler.collectPeriods(c, req, periods)
	if err != nil {
		return serverError(c)
	}
	if len(resultPeriods) == 0 {
		return notFound(c, fmt.Sprintf("no data found for %s between %d and %d",
			req.Ticker, fromYear, toYear))
	}

	return c.JSON(seriesResponse{
		Ticker:          req.Ticker,
		StatementType:   req.Category,
		DateRange:       fmt.Sprintf("%d to %d", fromYear, toYear),
		PeriodsReturned: len(resultPeriods),
		Periods:         resultPeriods,
	})
}

// AllLatest serves every statement type for the most recent period,
// grouped by category
func (handler *StatementHandler) AllLatest(c *fiber.Ctx) error {
	req, err := handler.parseRequest(c)
	if err != nil {
		if errors.Is(err, errResponseWritten) {
			return nil
		}
		return err
	}

	periods, err := handler.store.StatementPeriods(c.Context(), req.Ticker, data.CadenceAny, 1)
	if err != nil {
		log.Error().Err(err).Str("Ticker", req.Ticker).Msg("could not query statement periods")
		return serverError(c)
	}
	if len(periods) == 0 {
		return notFound(c, fmt.Sprintf("no data found for %s", req.Ticker))
	}

	facts, err := handler.store.PeriodFacts(c.Context(), req.Ticker, periods[0], "")
	if err != nil {
		log.Error().Err(err).Str("Ticker", req.Ticker).Msg("could not query period facts")
		return serverError(c)
	}
	if len(facts) == 0 {
		return notFound(c, fmt.Sprintf("no financial statements found for %s", req.Ticker))
	}

	return c.JSON(fiber.Map{
		"ticker":        req.Ticker,
		"fiscal_year":   periods[0].FiscalYear,
		"fiscal_period": periods[0].FiscalPeriod,
		"statements":    GroupByCategory(facts, req.Format, req.Scale),
	})
}

// collectPeriods shapes the fact rows for each period, skipping periods
// with no facts for the requested statement type
func (handler *StatementHandler) collectPeriods(c *fiber.Ctx, req *statementRequest, periods []data.Period) ([]periodData, error) {
	resultPeriods := make([]periodData, 0, len(periods))

	for _, period := range periods {
		facts, err := handler.store.PeriodFacts(c.Context(), req.Ticker, period, req.Category)
		if err != nil {
			log.Error().Err(err).Str("Ticker", req.Ticker).Int("FiscalYear", period.FiscalYear).
				Str("FiscalPeriod", period.FiscalPeriod).Msg("could not query period facts")
			return nil, err
		}

		shaped := BuildStatement(facts, req.Format, req.Scale)
		if len(shaped) == 0 {
			continue
		}

		resultPeriods = append(resultPeriods, periodData{
			FiscalYear:   period.FiscalYear,
			FiscalPeriod: period.FiscalPeriod,
			EndDate:      formatDate(period.EndDate),
			Data:         shaped,
		})
	}

	return resultPeriods, nil
}
