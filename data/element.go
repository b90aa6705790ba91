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
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Statement categories as stored in gaap_elements.financial_statement and
// denormalized onto statements.financial_statement.
const (
	StatementIncome    = "Statement of Income"
	StatementPosition  = "Statement of Financial Position"
	StatementCashFlows = "Statement of Cash Flows"
	StatementEquity    = "Statement of Stockholders Equity"
)

var ErrUnknownStatement = errors.New("unknown statement type")

// StatementFromSlug maps a URL path segment to the stored statement category
func StatementFromSlug(slug string) (string, error) {
	switch slug {
	case "income-statement":
		return StatementIncome, nil
	case "balance-sheet":
		return StatementPosition, nil
	case "cash-flow":
		return StatementCashFlows, nil
	case "equity-statement":
		return StatementEquity, nil
	}
	return "", ErrUnknownStatement
}

// GaapElement is reference metadata for a single XBRL concept in the us-gaap
// taxonomy. The gaap_elements table is the authoritative source for labels
// and documentation; the ingest pipeline copies these fields onto each fact
// row as a read optimization.
type GaapElement struct {
	ID                 int64  `db:"id"`
	ElementName        string `db:"element_name"`
	StandardLabel      string `db:"standard_label"`
	Documentation      string `db:"documentation"`
	FinancialStatement string `db:"financial_statement"`
}

// SaveDB upserts the element by name
func (element *GaapElement) SaveDB(ctx context.Context, dbConn *pgxpool.Conn) error {
	_, err := dbConn.Exec(ctx, `INSERT INTO gaap_elements
	("element_name", "standard_label", "documentation", "financial_statement")
VALUES ($1, $2, $3, $4)
ON CONFLICT (element_name) DO UPDATE SET
	standard_label = EXCLUDED.standard_label,
	documentation = EXCLUDED.documentation,
	financial_statement = EXCLUDED.financial_statement`,
		element.ElementName, element.StandardLabel, element.Documentation,
		element.FinancialStatement)
	return err
}
