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

// Package taxonomy holds reference knowledge about the us-gaap taxonomy:
// the element metadata loaded from the trimmed taxonomy CSV and the
// canonical concept sets used to build standard-format statements.
package taxonomy

import (
	"io"

	"github.com/alphadose/haxmap"
	"github.com/gocarina/gocsv"

	"github.com/grahamdash/graham/data"
)

// Index is an in-memory lookup over GAAP element metadata. Handlers and
// the ingest pipeline read it concurrently so it is backed by a lock-free
// map; the index is built once and never mutated after Load.
type Index struct {
	elements *haxmap.Map[string, *data.GaapElement]
}

// NewIndex builds an index over the given elements
func NewIndex(elements []*data.GaapElement) *Index {
	index := &Index{
		elements: haxmap.New[string, *data.GaapElement](uintptr(len(elements) + 1)),
	}
	for _, element := range elements {
		index.elements.Set(element.ElementName, element)
	}
	return index
}

// Lookup returns the metadata for an element name
func (index *Index) Lookup(name string) (*data.GaapElement, bool) {
	return index.elements.Get(name)
}

// Len returns the number of indexed elements
func (index *Index) Len() int {
	return int(index.elements.Len())
}

type csvElement struct {
	ElementName        string `csv:"element_name"`
	StandardLabel      string `csv:"standard_label"`
	Documentation      string `csv:"documentation"`
	FinancialStatement string `csv:"financial_statement"`
}

// LoadCSV reads the trimmed us-gaap taxonomy CSV produced by the taxonomy
// extraction pipeline (element_name, standard_label, documentation,
// financial_statement)
func LoadCSV(r io.Reader) ([]*data.GaapElement, error) {
	var rows []*csvElement
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, err
	}

	elements := make([]*data.GaapElement, 0, len(rows))
	for _, row := range rows {
		if row.ElementName == "" {
			continue
		}
		elements = append(elements, &data.GaapElement{
			ElementName:        row.ElementName,
			StandardLabel:      row.StandardLabel,
			Documentation:      row.Documentation,
			FinancialStatement: row.FinancialStatement,
		})
	}

	return elements, nil
}
