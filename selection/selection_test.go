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
package selection_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/grahamdash/graham/data"
	"github.com/grahamdash/graham/selection"
)

var (
	apple     = data.Company{CIK: "0000320193", Ticker: "AAPL", Name: "Apple Inc."}
	microsoft = data.Company{CIK: "0000789019", Ticker: "MSFT", Name: "Microsoft Corporation"}
	nvidia    = data.Company{CIK: "0001045810", Ticker: "NVDA", Name: "NVIDIA Corporation"}
)

var _ = Describe("Selection", func() {
	var sel *selection.Selection

	BeforeEach(func() {
		sel = selection.New()
	})

	It("starts empty with no current company", func() {
		Expect(sel.Len()).To(Equal(0))
		_, ok := sel.Current()
		Expect(ok).To(BeFalse())
	})

	Describe("Add", func() {
		It("makes the first company current", func() {
			sel.Add(apple)

			current, ok := sel.Current()
			Expect(ok).To(BeTrue())
			Expect(current.Ticker).To(Equal("AAPL"))
		})

		It("keeps the current company when more are added", func() {
			sel.Add(apple)
			sel.Add(microsoft)

			current, _ := sel.Current()
			Expect(current.Ticker).To(Equal("AAPL"))
			Expect(sel.Len()).To(Equal(2))
		})

		It("ignores duplicate tickers", func() {
			sel.Add(apple)
			sel.Add(data.Company{Ticker: "aapl", Name: "Apple duplicate"})

			Expect(sel.Len()).To(Equal(1))
			Expect(sel.Companies()[0].Name).To(Equal("Apple Inc."))
		})

		It("preserves insertion order", func() {
			sel.Add(microsoft)
			sel.Add(apple)
			sel.Add(nvidia)

			companies := sel.Companies()
			Expect(companies[0].Ticker).To(Equal("MSFT"))
			Expect(companies[1].Ticker).To(Equal("AAPL"))
			Expect(companies[2].Ticker).To(Equal("NVDA"))
		})
	})

	Describe("Select", func() {
		It("changes the current company", func() {
			sel.Add(apple)
			sel.Add(microsoft)

			Expect(sel.Select("msft")).To(Succeed())
			current, _ := sel.Current()
			Expect(current.Ticker).To(Equal("MSFT"))
		})

		It("refuses companies outside the selection", func() {
			sel.Add(apple)
			Expect(sel.Select("MSFT")).To(MatchError(selection.ErrNotSelected))
		})
	})

	Describe("Remove", func() {
		It("promotes the first remaining company when the current one is removed", func() {
			sel.Add(apple)
			sel.Add(microsoft)
			sel.Add(nvidia)
			Expect(sel.Select("MSFT")).To(Succeed())

			sel.Remove("MSFT")

			current, ok := sel.Current()
			Expect(ok).To(BeTrue())
			Expect(current.Ticker).To(Equal("AAPL"))
			Expect(sel.Len()).To(Equal(2))
		})

		It("keeps the current company stable when an earlier entry is removed", func() {
			sel.Add(apple)
			sel.Add(microsoft)
			sel.Add(nvidia)
			Expect(sel.Select("NVDA")).To(Succeed())

			sel.Remove("AAPL")

			current, _ := sel.Current()
			Expect(current.Ticker).To(Equal("NVDA"))
		})

		It("clears the current company when the selection empties", func() {
			sel.Add(apple)
			sel.Remove("AAPL")

			Expect(sel.Len()).To(Equal(0))
			_, ok := sel.Current()
			Expect(ok).To(BeFalse())
		})

		It("ignores tickers that are not selected", func() {
			sel.Add(apple)
			sel.Remove("MSFT")
			Expect(sel.Len()).To(Equal(1))
		})
	})

	It("returns a copy of the selected companies", func() {
		sel.Add(apple)

		companies := sel.Companies()
		companies[0].Ticker = "MUTATED"

		fresh := sel.Companies()
		Expect(fresh[0].Ticker).To(Equal("AAPL"))
	})
})
