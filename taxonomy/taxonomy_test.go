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
package taxonomy_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/grahamdash/graham/data"
	"github.com/grahamdash/graham/taxonomy"
)

const elementsCSV = `element_name,standard_label,documentation,financial_statement
Revenues,Revenues,"Amount of revenue recognized from goods sold, services rendered, insurance premiums, or other activities.",Statement of Income
Assets,Assets,Sum of the carrying amounts of all assets.,Statement of Financial Position
SomeAbstractConcept,,,
`

var _ = Describe("LoadCSV", func() {
	It("loads elements from the trimmed taxonomy CSV", func() {
		elements, err := taxonomy.LoadCSV(strings.NewReader(elementsCSV))
		Expect(err).ToNot(HaveOccurred())
		Expect(elements).To(HaveLen(3))

		Expect(elements[0].ElementName).To(Equal("Revenues"))
		Expect(elements[0].StandardLabel).To(Equal("Revenues"))
		Expect(elements[0].FinancialStatement).To(Equal(data.StatementIncome))
		Expect(elements[0].Documentation).To(ContainSubstring("revenue recognized"))

		Expect(elements[1].FinancialStatement).To(Equal(data.StatementPosition))
	})

	It("keeps elements with empty metadata", func() {
		elements, err := taxonomy.LoadCSV(strings.NewReader(elementsCSV))
		Expect(err).ToNot(HaveOccurred())
		Expect(elements[2].ElementName).To(Equal("SomeAbstractConcept"))
		Expect(elements[2].StandardLabel).To(BeEmpty())
	})

	It("rejects malformed CSV", func() {
		_, err := taxonomy.LoadCSV(strings.NewReader("element_name,standard_label\n\"unterminated"))
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("Index", func() {
	var index *taxonomy.Index

	BeforeEach(func() {
		elements, err := taxonomy.LoadCSV(strings.NewReader(elementsCSV))
		Expect(err).ToNot(HaveOccurred())
		index = taxonomy.NewIndex(elements)
	})

	It("looks up elements by name", func() {
		element, ok := index.Lookup("Assets")
		Expect(ok).To(BeTrue())
		Expect(element.FinancialStatement).To(Equal(data.StatementPosition))
	})

	It("misses unknown names", func() {
		_, ok := index.Lookup("NoSuchConcept")
		Expect(ok).To(BeFalse())
	})

	It("counts indexed elements", func() {
		Expect(index.Len()).To(Equal(3))
	})
})

var _ = Describe("Canonical", func() {
	It("accepts primary concepts for their statement", func() {
		Expect(taxonomy.Canonical(data.StatementIncome, "Revenues")).To(BeTrue())
		Expect(taxonomy.Canonical(data.StatementPosition, "Assets")).To(BeTrue())
		Expect(taxonomy.Canonical(data.StatementCashFlows,
			"NetCashProvidedByUsedInOperatingActivities")).To(BeTrue())
	})

	It("rejects concepts on the wrong statement", func() {
		Expect(taxonomy.Canonical(data.StatementPosition, "Revenues")).To(BeFalse())
	})

	It("rejects non-canonical alternates", func() {
		Expect(taxonomy.Canonical(data.StatementIncome,
			"RevenueRemainingPerformanceObligation")).To(BeFalse())
	})

	It("rejects unknown categories", func() {
		Expect(taxonomy.Canonical("", "Revenues")).To(BeFalse())
		Expect(taxonomy.Canonical("Statement of Proxies", "Revenues")).To(BeFalse())
	})
})
