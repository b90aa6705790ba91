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
package data

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// Fact is one reported value for one (company, tag, period) combination.
// Value is an exact decimal; financial figures must not drift through
// float rounding. StandardLabel, Documentation, and FinancialStatement are
// denormalized copies of the gaap_elements metadata for the fact's tag.
//
// A zero StartDate means the fact is an instantaneous measurement (balance
// sheet items have no duration).
type Fact struct {
	ID                 int64           `db:"id"`
	CompanyID          int64           `db:"company_id"`
	Tag                string          `db:"tag"`
	Taxonomy           string          `db:"taxonomy"`
	Unit               string          `db:"unit"`
	Value              decimal.Decimal `db:"value"`
	StartDate          time.Time       `db:"start_date"`
	EndDate            time.Time       `db:"end_date"`
	FiscalYear         int             `db:"fiscal_year"`
	FiscalPeriod       string          `db:"fiscal_period"`
	FilingDate         time.Time       `db:"filing_date"`
	StandardLabel      string          `db:"standard_label"`
	Documentation      string          `db:"documentation"`
	FinancialStatement string          `db:"financial_statement"`
}

// SaveDB upserts the fact. A company reports at most one value per
// (tag, start_date, end_date) window; a restatement overwrites the stored
// value rather than creating a second row.
func (fact *Fact) SaveDB(ctx context.Context, dbConn *pgxpool.Conn) error {
	_, err := dbConn.Exec(ctx, `INSERT INTO statements (
	"company_id",
	"tag",
	"taxonomy",
	"unit",
	"value",
	"start_date",
	"end_date",
	"fiscal_year",
	"fiscal_period",
	"filing_date",
	"standard_label",
	"documentation",
	"financial_statement"
) VALUES (
	$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13
) ON CONFLICT (company_id, tag, start_date, end_date) DO UPDATE SET
	unit = EXCLUDED.unit,
	value = EXCLUDED.value,
	fiscal_year = EXCLUDED.fiscal_year,
	fiscal_period = EXCLUDED.fiscal_period,
	filing_date = EXCLUDED.filing_date,
	standard_label = EXCLUDED.standard_label,
	documentation = EXCLUDED.documentation,
	financial_statement = EXCLUDED.financial_statement`,
		fact.CompanyID, fact.Tag, fact.Taxonomy, fact.Unit, fact.Value,
		dateOrNil(fact.StartDate), dateOrNil(fact.EndDate), fact.FiscalYear,
		fact.FiscalPeriod, dateOrNil(fact.FilingDate), fact.StandardLabel,
		fact.Documentation, fact.FinancialStatement)
	return err
}

// dateOrNil maps the zero time to SQL NULL so instantaneous facts do not
// store a bogus date
func dateOrNil(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
