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
package store

import (
	"context"
	"strings"

	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/grahamdash/graham/data"
)

// factColumns is the SELECT list shared by every fact query. Nullable
// columns are coalesced so rows scan into plain Go values; a zero date
// means the column was NULL.
const factColumns = `s.tag, coalesce(s.taxonomy, '') AS taxonomy,
	coalesce(s.unit, '') AS unit, coalesce(s.value, 0) AS value,
	coalesce(s.start_date, '0001-01-01'::date) AS start_date,
	coalesce(s.end_date, '0001-01-01'::date) AS end_date,
	coalesce(s.fiscal_year, 0) AS fiscal_year,
	coalesce(s.fiscal_period, '') AS fiscal_period,
	coalesce(s.filing_date, '0001-01-01'::date) AS filing_date,
	coalesce(s.standard_label, '') AS standard_label,
	coalesce(s.documentation, '') AS documentation,
	coalesce(s.financial_statement, '') AS financial_statement`

// SaveFacts upserts a batch of facts for a company. Restatements of the
// same (tag, start_date, end_date) window overwrite the stored value.
func (store *Store) SaveFacts(ctx context.Context, facts []*data.Fact) error {
	conn, err := store.Pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	for _, fact := range facts {
		if err := fact.SaveDB(ctx, conn); err != nil {
			return err
		}
	}
	return nil
}

// RecentFacts returns the most recently ended facts for a ticker across all
// statement categories
func (store *Store) RecentFacts(ctx context.Context, ticker string, limit int) ([]*data.Fact, error) {
	var facts []*data.Fact
	err := pgxscan.Select(ctx, store.Pool, &facts,
		`SELECT `+factColumns+`
FROM statements s
JOIN companies c ON c.id = s.company_id
WHERE c.ticker = $1
ORDER BY s.end_date DESC
LIMIT $2`, strings.ToUpper(ticker), limit)
	return facts, err
}

// TagsForYear returns the distinct XBRL tags a company reported in a fiscal year
func (store *Store) TagsForYear(ctx context.Context, ticker string, fiscalYear int) ([]string, error) {
	var tags []string
	err := pgxscan.Select(ctx, store.Pool, &tags,
		`SELECT DISTINCT s.tag
FROM statements s
JOIN companies c ON c.id = s.company_id
WHERE c.ticker = $1 AND s.fiscal_year = $2
ORDER BY s.tag`, strings.ToUpper(ticker), fiscalYear)
	return tags, err
}

// TaggedFacts returns the facts for the named tags in a fiscal year
func (store *Store) TaggedFacts(ctx context.Context, ticker string, fiscalYear int, tags []string) ([]*data.Fact, error) {
	var facts []*data.Fact
	err := pgxscan.Select(ctx, store.Pool, &facts,
		`SELECT `+factColumns+`
FROM statements s
JOIN companies c ON c.id = s.company_id
WHERE c.ticker = $1 AND s.fiscal_year = $2 AND s.tag = ANY($3)`,
		strings.ToUpper(ticker), fiscalYear, tags)
	return facts, err
}

// StatementPeriods returns reporting periods for a ticker ordered newest
// first. Periods close on their latest end_date; ties break on the latest
// filing_date. A limit of 0 returns every period of the cadence.
func (store *Store) StatementPeriods(ctx context.Context, ticker string, cadence data.Cadence, limit int) ([]data.Period, error) {
	var cadenceFilter string
	switch cadence {
	case data.CadenceAnnual:
		cadenceFilter = ` AND s.fiscal_period = 'FY'`
	case data.CadenceQuarterly:
		cadenceFilter = ` AND s.fiscal_period != 'FY'`
	}

	query := `SELECT s.fiscal_year, s.fiscal_period,
	MAX(coalesce(s.end_date, '0001-01-01'::date)) AS end_date,
	MAX(coalesce(s.filing_date, '0001-01-01'::date)) AS filing_date
FROM statements s
JOIN companies c ON c.id = s.company_id
WHERE c.ticker = $1 AND s.fiscal_period IS NOT NULL` + cadenceFilter + `
GROUP BY s.fiscal_year, s.fiscal_period
ORDER BY end_date DESC, filing_date DESC`

	args := []any{strings.ToUpper(ticker)}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	var periods []data.Period
	err := pgxscan.Select(ctx, store.Pool, &periods, query, args...)
	return periods, err
}

// PeriodsInRange returns every reporting period with a fiscal year inside
// the inclusive [from, to] bounds, newest first
func (store *Store) PeriodsInRange(ctx context.Context, ticker string, fromYear int, toYear int) ([]data.Period, error) {
	var periods []data.Period
	err := pgxscan.Select(ctx, store.Pool, &periods,
		`SELECT s.fiscal_year, s.fiscal_period,
	MAX(coalesce(s.end_date, '0001-01-01'::date)) AS end_date,
	MAX(coalesce(s.filing_date, '0001-01-01'::date)) AS filing_date
FROM statements s
JOIN companies c ON c.id = s.company_id
WHERE c.ticker = $1 AND s.fiscal_period IS NOT NULL
	AND s.fiscal_year BETWEEN $2 AND $3
GROUP BY s.fiscal_year, s.fiscal_period
ORDER BY s.fiscal_year DESC, end_date DESC`,
		strings.ToUpper(ticker), fromYear, toYear)
	return periods, err
}

// PeriodFacts returns the facts reported for one period, filtered to a
// statement category. An empty category returns every categorized fact.
// Rows are ordered by descending magnitude which is how statements display.
func (store *Store) PeriodFacts(ctx context.Context, ticker string, period data.Period, category string) ([]*data.Fact, error) {
	categoryFilter := ` AND s.financial_statement IS NOT NULL`
	args := []any{strings.ToUpper(ticker), period.FiscalYear, period.FiscalPeriod}
	if category != "" {
		categoryFilter = ` AND s.financial_statement = $4`
		args = append(args, category)
	}

	var facts []*data.Fact
	err := pgxscan.Select(ctx, store.Pool, &facts,
		`SELECT `+factColumns+`
FROM statements s
JOIN companies c ON c.id = s.company_id
WHERE c.ticker = $1 AND s.fiscal_year = $2 AND s.fiscal_period = $3`+
			categoryFilter+`
ORDER BY ABS(coalesce(s.value, 0)) DESC`, args...)
	return facts, err
}

// AnnualFacts returns every fact for one fiscal year's FY period, used for
// metric calculations
func (store *Store) AnnualFacts(ctx context.Context, ticker string, fiscalYear int) ([]*data.Fact, error) {
	var facts []*data.Fact
	err := pgxscan.Select(ctx, store.Pool, &facts,
		`SELECT `+factColumns+`
FROM statements s
JOIN companies c ON c.id = s.company_id
WHERE c.ticker = $1 AND s.fiscal_year = $2 AND s.fiscal_period = 'FY'`,
		strings.ToUpper(ticker), fiscalYear)
	return facts, err
}
