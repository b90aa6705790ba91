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

	"github.com/jackc/pgx/v5/pgxpool"
)

// Company is a public filer tracked by graham. CIK is the durable SEC
// identifier; tickers may be absent or recycled over time so only the
// current symbol is kept.
type Company struct {
	ID     int64  `db:"id"`
	CIK    string `db:"cik"`
	Ticker string `db:"ticker"`
	Name   string `db:"name"`
}

// SaveDB upserts the company by CIK and populates the ID from the database
func (company *Company) SaveDB(ctx context.Context, dbConn *pgxpool.Conn) error {
	return dbConn.QueryRow(ctx, `INSERT INTO companies ("cik", "ticker", "name")
VALUES ($1, $2, $3)
ON CONFLICT (cik) DO UPDATE SET
	ticker = EXCLUDED.ticker,
	name = EXCLUDED.name
RETURNING id`, company.CIK, company.Ticker, company.Name).Scan(&company.ID)
}
