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
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// FiscalPeriodAnnual is the categorical label SEC filers use for a full
// fiscal year; everything else ("Q1".."Q4") is a quarterly period.
const FiscalPeriodAnnual = "FY"

// Period identifies one reporting period for a company. FiscalYear and
// FiscalPeriod are categorical; EndDate carries the exact close of the
// reporting window because fiscal years do not always align with calendar
// boundaries. FilingDate breaks ties between periods that close on the
// same day.
type Period struct {
	FiscalYear   int       `db:"fiscal_year"`
	FiscalPeriod string    `db:"fiscal_period"`
	EndDate      time.Time `db:"end_date"`
	FilingDate   time.Time `db:"filing_date"`
}

// Annual reports whether the period covers a full fiscal year
func (period Period) Annual() bool {
	return period.FiscalPeriod == FiscalPeriodAnnual
}

// Cadence selects which reporting rhythm a period query covers.
type Cadence int

const (
	CadenceAny Cadence = iota
	CadenceAnnual
	CadenceQuarterly
)

// Scale is a display-only currency transform. It never mutates stored
// values; it shifts the decimal point on the way out.
type Scale int32

const (
	ScaleActual   Scale = 0
	ScaleMillions Scale = 6
	ScaleBillions Scale = 9
)

var ErrUnknownScale = errors.New("unknown currency scale")

// ParseScale recognizes the currency query parameter values
func ParseScale(s string) (Scale, error) {
	switch s {
	case "", "actual":
		return ScaleActual, nil
	case "millions":
		return ScaleMillions, nil
	case "billions":
		return ScaleBillions, nil
	}
	return ScaleActual, ErrUnknownScale
}

// Apply scales the value for display. Shift keeps the arithmetic exact.
func (scale Scale) Apply(value decimal.Decimal) decimal.Decimal {
	if scale == ScaleActual {
		return value
	}
	return value.Shift(int32(-scale))
}
