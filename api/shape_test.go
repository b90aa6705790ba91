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
package api_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/grahamdash/graham/api"
	"github.com/grahamdash/graham/data"
)

var _ = Describe("ParseFormat", func() {
	It("defaults to standard", func() {
		format, err := api.ParseFormat("")
		Expect(err).ToNot(HaveOccurred())
		Expect(format).To(Equal(api.FormatStandard))
	})

	It("parses detailed", func() {
		format, err := api.ParseFormat("detailed")
		Expect(err).ToNot(HaveOccurred())
		Expect(format).To(Equal(api.FormatDetailed))
	})

	It("rejects unknown formats", func() {
		_, err := api.ParseFormat("verbose")
		Expect(err).To(MatchError(api.ErrUnknownFormat))
	})
})

var _ = Describe("BuildStatement", func() {
	var facts []*data.Fact

	BeforeEach(func() {
		facts = []*data.Fact{
			{
				Tag: "Revenues", Unit: "USD", Value: money("383285000000"),
				StartDate:  date(2022, time.September, 25),
				EndDate:    date(2023, time.September, 30),
				FiscalYear: 2023, FiscalPeriod: "FY",
				StandardLabel:      "Revenues",
				Documentation:      "Amount of revenue recognized.",
				FinancialStatement: data.StatementIncome,
			},
			{
				Tag: "RevenueRemainingPerformanceObligation", Unit: "USD", Value: money("12345"),
				EndDate:    date(2023, time.September, 30),
				FiscalYear: 2023, FiscalPeriod: "FY",
				StandardLabel:      "Revenue, Remaining Performance Obligation",
				FinancialStatement: data.StatementIncome,
			},
		}
	})

	It("keeps only canonical concepts in standard format", func() {
		shaped := api.BuildStatement(facts, api.FormatStandard, data.ScaleActual)
		Expect(shaped).To(HaveKey("Revenues"))
		Expect(shaped).ToNot(HaveKey("RevenueRemainingPerformanceObligation"))
	})

	It("keeps every concept in detailed format", func() {
		shaped := api.BuildStatement(facts, api.FormatDetailed, data.ScaleActual)
		Expect(shaped).To(HaveLen(2))
	})

	It("omits taxonomy metadata from standard items", func() {
		shaped := api.BuildStatement(facts, api.FormatStandard, data.ScaleActual)
		item := shaped["Revenues"]
		Expect(item.Tag).To(BeEmpty())
		Expect(item.Documentation).To(BeEmpty())
		Expect(item.FinancialStatement).To(BeEmpty())
	})

	It("carries taxonomy metadata on detailed items", func() {
		shaped := api.BuildStatement(facts, api.FormatDetailed, data.ScaleActual)
		item := shaped["Revenues"]
		Expect(item.Tag).To(Equal("Revenues"))
		Expect(item.Documentation).To(Equal("Amount of revenue recognized."))
		Expect(item.FinancialStatement).To(Equal(data.StatementIncome))
	})

	It("applies the currency scale to values", func() {
		shaped := api.BuildStatement(facts, api.FormatStandard, data.ScaleMillions)
		Expect(shaped["Revenues"].Value.Equal(money("383285"))).To(BeTrue())
	})

	It("formats period dates and leaves instant facts without a start", func() {
		shaped := api.BuildStatement(facts, api.FormatDetailed, data.ScaleActual)
		Expect(shaped["Revenues"].StartDate).To(Equal("2022-09-25"))
		Expect(shaped["Revenues"].EndDate).To(Equal("2023-09-30"))
		Expect(shaped["RevenueRemainingPerformanceObligation"].StartDate).To(BeEmpty())
	})

	It("falls back to the tag when no standard label exists", func() {
		bare := []*data.Fact{{
			Tag: "Revenues", Unit: "USD", Value: money("1"),
			FiscalYear: 2023, FiscalPeriod: "FY",
			FinancialStatement: data.StatementIncome,
		}}
		shaped := api.BuildStatement(bare, api.FormatStandard, data.ScaleActual)
		Expect(shaped["Revenues"].Label).To(Equal("Revenues"))
	})
})

var _ = Describe("GroupByCategory", func() {
	It("splits facts by statement category and drops uncategorized ones", func() {
		facts := []*data.Fact{
			{
				Tag: "Revenues", Unit: "USD", Value: money("100"),
				FiscalYear: 2023, FiscalPeriod: "FY",
				FinancialStatement: data.StatementIncome,
			},
			{
				Tag: "Assets", Unit: "USD", Value: money("500"),
				FiscalYear: 2023, FiscalPeriod: "FY",
				FinancialStatement: data.StatementPosition,
			},
			{
				Tag: "EntityListingDepositoryReceiptRatio", Unit: "pure", Value: money("1"),
				FiscalYear: 2023, FiscalPeriod: "FY",
			},
		}

		grouped := api.GroupByCategory(facts, api.FormatStandard, data.ScaleActual)
		Expect(grouped).To(HaveLen(2))
		Expect(grouped[data.StatementIncome]).To(HaveKey("Revenues"))
		Expect(grouped[data.StatementPosition]).To(HaveKey("Assets"))
	})

	It("drops categories whose facts are all filtered out", func() {
		facts := []*data.Fact{{
			Tag: "RevenueRemainingPerformanceObligation", Unit: "USD", Value: money("1"),
			FiscalYear: 2023, FiscalPeriod: "FY",
			FinancialStatement: data.StatementIncome,
		}}

		grouped := api.GroupByCategory(facts, api.FormatStandard, data.ScaleActual)
		Expect(grouped).To(BeEmpty())
	})
})
