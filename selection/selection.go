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

// Package selection tracks which companies a dashboard session is
// comparing and which one is in focus. State is held in an explicit
// Selection value so callers can test transitions without hidden globals.
package selection

import (
	"errors"
	"strings"

	"github.com/grahamdash/graham/data"
)

var ErrNotSelected = errors.New("company is not in the selection")

// Selection is an ordered set of companies plus an optional current
// company. Identity is by ticker, case-insensitive. The zero value is an
// empty selection ready for use.
type Selection struct {
	companies []data.Company
	current   int // index into companies, -1 when none
}

// New returns an empty selection
func New() *Selection {
	return &Selection{current: -1}
}

// Add appends a company to the selection unless a company with the same
// ticker is already present. The first company added becomes current.
func (selection *Selection) Add(company data.Company) {
	if selection.indexOf(company.Ticker) >= 0 {
		return
	}

	selection.companies = append(selection.companies, company)
	if selection.current < 0 {
		selection.current = 0
	}
}

// Remove drops the company with the given ticker. When the current
// company is removed the first remaining company becomes current; an
// empty selection has no current company.
func (selection *Selection) Remove(ticker string) {
	idx := selection.indexOf(ticker)
	if idx < 0 {
		return
	}

	selection.companies = append(selection.companies[:idx], selection.companies[idx+1:]...)

	switch {
	case len(selection.companies) == 0:
		selection.current = -1
	case idx == selection.current:
		selection.current = 0
	case idx < selection.current:
		selection.current--
	}
}

// Select makes an already-selected company current
func (selection *Selection) Select(ticker string) error {
	idx := selection.indexOf(ticker)
	if idx < 0 {
		return ErrNotSelected
	}
	selection.current = idx
	return nil
}

// Current returns the company in focus
func (selection *Selection) Current() (data.Company, bool) {
	if selection.current < 0 || selection.current >= len(selection.companies) {
		return data.Company{}, false
	}
	return selection.companies[selection.current], true
}

// Companies returns the selection in insertion order
func (selection *Selection) Companies() []data.Company {
	companies := make([]data.Company, len(selection.companies))
	copy(companies, selection.companies)
	return companies
}

// Len returns the number of selected companies
func (selection *Selection) Len() int {
	return len(selection.companies)
}

func (selection *Selection) indexOf(ticker string) int {
	for idx, company := range selection.companies {
		if strings.EqualFold(company.Ticker, ticker) {
			return idx
		}
	}
	return -1
}
