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
	"errors"
	"strings"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/grahamdash/graham/data"
)

var ErrNotFound = errors.New("not found")

// Store provides access to the fact store: the companies, gaap_elements,
// and statements tables. It is read-mostly; only the ingest and elements
// commands write.
type Store struct {
	DBUrl string

	Pool *pgxpool.Pool
}

// Connect to the database configured for the fact store
func (store *Store) Connect(ctx context.Context) error {
	if store.Pool != nil {
		return nil
	}

	pool, err := pgxpool.New(ctx, store.DBUrl)
	if err != nil {
		return err
	}
	store.Pool = pool

	return nil
}

// Close the database pool
func (store *Store) Close() {
	store.Pool.Close()
}

// New creates a store and connects it to the database
func New(ctx context.Context, dbURL string) (*Store, error) {
	store := &Store{DBUrl: dbURL}
	if err := store.Connect(ctx); err != nil {
		return nil, err
	}
	return store, nil
}

// Companies returns every tracked company ordered by ticker
func (store *Store) Companies(ctx context.Context) ([]*data.Company, error) {
	var companies []*data.Company
	err := pgxscan.Select(ctx, store.Pool, &companies,
		`SELECT id, cik, coalesce(ticker, '') AS ticker, coalesce(name, '') AS name
FROM companies
ORDER BY ticker`)
	return companies, err
}

// CompanyByTicker fetches a single company. Ticker matching is
// case-insensitive; symbols are stored upper-case.
func (store *Store) CompanyByTicker(ctx context.Context, ticker string) (*data.Company, error) {
	company := &data.Company{}
	err := pgxscan.Get(ctx, store.Pool, company,
		`SELECT id, cik, coalesce(ticker, '') AS ticker, coalesce(name, '') AS name
FROM companies
WHERE ticker = $1`, strings.ToUpper(ticker))
	if pgxscan.NotFound(err) {
		return nil, ErrNotFound
	}
	return company, err
}

// Elements returns the full GAAP element reference table
func (store *Store) Elements(ctx context.Context) ([]*data.GaapElement, error) {
	var elements []*data.GaapElement
	err := pgxscan.Select(ctx, store.Pool, &elements,
		`SELECT id, element_name, coalesce(standard_label, '') AS standard_label,
	coalesce(documentation, '') AS documentation,
	coalesce(financial_statement, '') AS financial_statement
FROM gaap_elements`)
	return elements, err
}

// SaveElements upserts a batch of GAAP elements in a single transaction
func (store *Store) SaveElements(ctx context.Context, elements []*data.GaapElement) error {
	conn, err := store.Pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	tx, err := conn.Begin(ctx)
	if err != nil {
		return err
	}

	for _, element := range elements {
		if _, err := tx.Exec(ctx, `INSERT INTO gaap_elements
	("element_name", "standard_label", "documentation", "financial_statement")
VALUES ($1, $2, $3, $4)
ON CONFLICT (element_name) DO UPDATE SET
	standard_label = EXCLUDED.standard_label,
	documentation = EXCLUDED.documentation,
	financial_statement = EXCLUDED.financial_statement`,
			element.ElementName, element.StandardLabel, element.Documentation,
			element.FinancialStatement); err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				return errors.Join(err, rbErr)
			}
			return err
		}
	}

	return tx.Commit(ctx)
}
