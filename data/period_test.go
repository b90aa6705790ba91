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
package data_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"

	"github.com/grahamdash/graham/data"
)

var _ = Describe("Period", func() {
	It("recognizes annual periods", func() {
		period := data.Period{FiscalYear: 2024, FiscalPeriod: "FY"}
		Expect(period.Annual()).To(BeTrue())
	})

	It("recognizes quarterly periods", func() {
		for _, fp := range []string{"Q1", "Q2", "Q3", "Q4"} {
			period := data.Period{FiscalYear: 2024, FiscalPeriod: fp}
			Expect(period.Annual()).To(BeFalse())
		}
	})
})

var _ = Describe("Scale", func() {
	Describe("ParseScale", func() {
		It("defaults to actual values", func() {
			scale, err := data.ParseScale("")
			Expect(err).ToNot(HaveOccurred())
			Expect(scale).To(Equal(data.ScaleActual))
		})

		It("parses the recognized units", func() {
			scale, err := data.ParseScale("millions")
			Expect(err).ToNot(HaveOccurred())
			Expect(scale).To(Equal(data.ScaleMillions))

			scale, err = data.ParseScale("billions")
			Expect(err).ToNot(HaveOccurred())
			Expect(scale).To(Equal(data.ScaleBillions))
		})

		It("rejects unknown units", func() {
			_, err := data.ParseScale("thousands")
			Expect(err).To(MatchError(data.ErrUnknownScale))
		})
	})

	Describe("Apply", func() {
		It("leaves actual values untouched", func() {
			value := decimal.RequireFromString("391035000000")
			Expect(data.ScaleActual.Apply(value).Equal(value)).To(BeTrue())
		})

		It("shifts to millions exactly", func() {
			value := decimal.RequireFromString("391035000000")
			scaled := data.ScaleMillions.Apply(value)
			Expect(scaled.Equal(decimal.RequireFromString("391035"))).To(BeTrue())
		})

		It("shifts to billions exactly", func() {
			value := decimal.RequireFromString("391035000000")
			scaled := data.ScaleBillions.Apply(value)
			Expect(scaled.Equal(decimal.RequireFromString("391.035"))).To(BeTrue())
		})

		It("keeps fractional precision instead of rounding", func() {
			value := decimal.RequireFromString("1234567")
			scaled := data.ScaleMillions.Apply(value)
			Expect(scaled.Equal(decimal.RequireFromString("1.234567"))).To(BeTrue())
		})
	})
})

var _ = Describe("StatementFromSlug", func() {
	It("maps the four statement slugs", func() {
		category, err := data.StatementFromSlug("income-statement")
		Expect(err).ToNot(HaveOccurred())
		Expect(category).To(Equal(data.StatementIncome))

		category, err = data.StatementFromSlug("balance-sheet")
		Expect(err).ToNot(HaveOccurred())
		Expect(category).To(Equal(data.StatementPosition))

		category, err = data.StatementFromSlug("cash-flow")
		Expect(err).ToNot(HaveOccurred())
		Expect(category).To(Equal(data.StatementCashFlows))

		category, err = data.StatementFromSlug("equity-statement")
		Expect(err).ToNot(HaveOccurred())
		Expect(category).To(Equal(data.StatementEquity))
	})

	It("rejects anything else", func() {
		_, err := data.StatementFromSlug("proxy-statement")
		Expect(err).To(MatchError(data.ErrUnknownStatement))
	})
})
