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
	"fmt"
	"strings"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/xeonx/timeago"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type companyCoverage struct {
	Ticker    string    `db:"ticker"`
	Name      string    `db:"name"`
	FirstYear int       `db:"first_year"`
	LastYear  int       `db:"last_year"`
	NumFacts  int       `db:"num_facts"`
	LastFiled time.Time `db:"last_filed"`
}

// NumFacts returns the total count of fact rows in the store
func (store *Store) NumFacts(ctx context.Context) (int, error) {
	count := 0
	err := store.Pool.QueryRow(ctx, "SELECT count(*) FROM statements").Scan(&count)
	return count, err
}

// NumElements returns the count of GAAP taxonomy elements loaded
func (store *Store) NumElements(ctx context.Context) (int, error) {
	count := 0
	err := store.Pool.QueryRow(ctx, "SELECT count(*) FROM gaap_elements").Scan(&count)
	return count, err
}

// LastFiled returns the most recent filing date across all facts
func (store *Store) LastFiled(ctx context.Context) (time.Time, error) {
	var lastFiled time.Time
	err := store.Pool.QueryRow(ctx,
		"SELECT coalesce(max(filing_date), '0001-01-01'::date) FROM statements").Scan(&lastFiled)
	return lastFiled, err
}

// Summary returns a description of the fact store in markdown
func (store *Store) Summary(ctx context.Context) (string, error) {
	p := message.NewPrinter(language.English)
	builder := strings.Builder{}

	builder.WriteString("# Graham fact store\n")
	builder.WriteString("## Details\n\n")
	builder.WriteString(fmt.Sprintf("Database: %s\n\n", store.DBUrl))

	companies, err := store.Companies(ctx)
	if err != nil {
		return "", err
	}
	builder.WriteString(p.Sprintf("  * Companies Tracked: %d\n", len(companies)))

	numElements, err := store.NumElements(ctx)
	if err != nil {
		return "", err
	}
	builder.WriteString(p.Sprintf("  * GAAP Elements: %d\n", numElements))

	numFacts, err := store.NumFacts(ctx)
	if err != nil {
		return "", err
	}
	builder.WriteString(p.Sprintf("  * Total Facts: %d\n\n", numFacts))

	lastFiled, err := store.LastFiled(ctx)
	if err != nil {
		return "", err
	}

	if lastFiled.Equal(time.Time{}) || lastFiled.Year() == 1 {
		builder.WriteString("Last Filing: Never\n\n")
	} else {
		age := timeago.English.Format(lastFiled)
		builder.WriteString(fmt.Sprintf("Last Filing: %s (%s)\n\n", age,
			lastFiled.Format("01/02/2006")))
	}

	builder.WriteString("## Companies\n\n")

	var coverage []*companyCoverage
	err = pgxscan.Select(ctx, store.Pool, &coverage,
		`SELECT coalesce(c.ticker, '') AS ticker, coalesce(c.name, '') AS name,
	coalesce(min(s.fiscal_year), 0) AS first_year,
	coalesce(max(s.fiscal_year), 0) AS last_year,
	count(s.id) AS num_facts,
	coalesce(max(s.filing_date), '0001-01-01'::date) AS last_filed
FROM companies c
LEFT JOIN statements s ON s.company_id = c.id
GROUP BY c.ticker, c.name
ORDER BY c.ticker`)
	if err != nil {
		return "", err
	}

	for _, company := range coverage {
		builder.WriteString(p.Sprintf("  * %s %s (%d - %d) [%d facts]\n",
			company.Ticker, company.Name, company.FirstYear, company.LastYear,
			company.NumFacts))
	}

	return builder.String(), nil
}
