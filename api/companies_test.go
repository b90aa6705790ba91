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
	"net/http"

	"github.com/gofiber/fiber/v2"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/grahamdash/graham/api"
)

var _ = Describe("Company endpoints", func() {
	var app *fiber.App

	BeforeEach(func() {
		server := api.New(newFakeStore(), api.Config{})
		app = server.App()
	})

	Describe("companies", func() {
		It("lists every tracked company", func() {
			var resp []struct {
				Ticker string `json:"ticker"`
				Name   string `json:"name"`
			}
			Expect(get(app, "/companies", &resp)).To(Equal(http.StatusOK))

			Expect(resp).To(HaveLen(2))
			Expect(resp[0].Ticker).To(Equal("AAPL"))
			Expect(resp[0].Name).To(Equal("Apple Inc."))
			Expect(resp[1].Ticker).To(Equal("MSFT"))
		})
	})

	Describe("recent facts", func() {
		It("returns raw facts for a ticker", func() {
			var resp []struct {
				Tag          string  `json:"tag"`
				Value        float64 `json:"value"`
				Unit         string  `json:"unit"`
				FiscalYear   int     `json:"fiscal_year"`
				FiscalPeriod string  `json:"fiscal_period"`
			}
			Expect(get(app, "/statements/AAPL", &resp)).To(Equal(http.StatusOK))

			Expect(resp).To(HaveLen(2))
			Expect(resp[0].Tag).To(Equal("Revenues"))
			Expect(resp[0].Unit).To(Equal("USD"))
		})

		It("honors the limit parameter", func() {
			var resp []struct {
				Tag string `json:"tag"`
			}
			Expect(get(app, "/statements/AAPL?limit=1", &resp)).To(Equal(http.StatusOK))
			Expect(resp).To(HaveLen(1))
		})

		It("rejects limits outside 1..10000", func() {
			Expect(get(app, "/statements/AAPL?limit=0", nil)).To(Equal(http.StatusBadRequest))
			Expect(get(app, "/statements/AAPL?limit=10001", nil)).To(Equal(http.StatusBadRequest))
		})

		It("rejects non-integer limits", func() {
			var resp struct {
				Error string `json:"error"`
			}
			Expect(get(app, "/statements/AAPL?limit=abc", &resp)).To(Equal(http.StatusBadRequest))
			Expect(resp.Error).To(ContainSubstring("limit must be an integer"))
		})

		It("reports unknown tickers", func() {
			Expect(get(app, "/statements/ZZZZ", nil)).To(Equal(http.StatusNotFound))
		})
	})

	Describe("tags", func() {
		It("lists the tags reported in a fiscal year", func() {
			var resp []string
			Expect(get(app, "/tags/AAPL/2023", &resp)).To(Equal(http.StatusOK))
			Expect(resp).To(Equal([]string{"Assets", "NetIncomeLoss", "Revenues"}))
		})

		It("rejects non-numeric years", func() {
			Expect(get(app, "/tags/AAPL/notayear", nil)).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("statement summary", func() {
		It("returns the headline concepts for a fiscal year", func() {
			var resp struct {
				Ticker     string `json:"ticker"`
				FiscalYear int    `json:"fiscal_year"`
				Summary    map[string]struct {
					Value  float64 `json:"value"`
					Unit   string  `json:"unit"`
					Period string  `json:"period"`
				} `json:"summary"`
			}
			Expect(get(app, "/statement-summary/AAPL/2023", &resp)).To(Equal(http.StatusOK))

			Expect(resp.Ticker).To(Equal("AAPL"))
			Expect(resp.FiscalYear).To(Equal(2023))
			Expect(resp.Summary).To(HaveKey("NetIncomeLoss"))
			Expect(resp.Summary["NetIncomeLoss"].Value).To(BeNumerically("==", 250))
			Expect(resp.Summary["NetIncomeLoss"].Period).To(Equal("FY"))
			Expect(resp.Summary).To(HaveKey("StockholdersEquity"))
			Expect(resp.Summary).ToNot(HaveKey("LongTermDebt"))
		})
	})
})

var _ = Describe("Company metrics endpoint", func() {
	var app *fiber.App

	BeforeEach(func() {
		server := api.New(newFakeStore(), api.Config{})
		app = server.App()
	})

	It("computes overview metrics from the latest annual period", func() {
		var resp struct {
			Ticker     string `json:"ticker"`
			FiscalYear int    `json:"fiscal_year"`
			Metrics    struct {
				Revenue       float64 `json:"revenue"`
				RevenueGrowth float64 `json:"revenue_growth"`
				FreeCashFlow  float64 `json:"free_cash_flow"`
				NetMargin     float64 `json:"net_margin"`
				ROE           float64 `json:"roe"`
				DebtToEquity  float64 `json:"debt_to_equity"`
			} `json:"metrics"`
		}
		Expect(get(app, "/company-metrics/AAPL", &resp)).To(Equal(http.StatusOK))

		Expect(resp.FiscalYear).To(Equal(2023))
		Expect(resp.Metrics.Revenue).To(BeNumerically("==", 1250))
		Expect(resp.Metrics.RevenueGrowth).To(BeNumerically("~", 25, 1e-9))
		Expect(resp.Metrics.FreeCashFlow).To(BeNumerically("==", 300))
		Expect(resp.Metrics.NetMargin).To(BeNumerically("~", 20, 1e-9))
		Expect(resp.Metrics.ROE).To(BeNumerically("~", 50, 1e-9))
		Expect(resp.Metrics.DebtToEquity).To(BeNumerically("~", 0.25, 1e-9))
	})

	It("reports tickers with no annual data", func() {
		Expect(get(app, "/company-metrics/MSFT", nil)).To(Equal(http.StatusNotFound))
	})
})
