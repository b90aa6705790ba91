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
package sec

import "encoding/json"

// CompanyFacts is the payload of the EDGAR companyfacts API
// (https://data.sec.gov/api/xbrl/companyfacts/CIK##########.json). Facts
// are grouped by taxonomy, then concept, then unit of measure.
type CompanyFacts struct {
	CIK        json.Number                      `json:"cik"`
	EntityName string                           `json:"entityName"`
	Facts      map[string]map[string]ConceptFact `json:"facts"`
}

// ConceptFact holds every reported observation of a single XBRL concept
type ConceptFact struct {
	Label       string                `json:"label"`
	Description string                `json:"description"`
	Units       map[string][]UnitFact `json:"units"`
}

// UnitFact is a single reported observation. Start is empty for
// instantaneous facts (balance sheet items). Val stays a json.Number so the
// exact decimal survives until it is converted to a stored value.
type UnitFact struct {
	Start string      `json:"start"`
	End   string      `json:"end"`
	Val   json.Number `json:"val"`
	FY    int         `json:"fy"`
	FP    string      `json:"fp"`
	Form  string      `json:"form"`
	Filed string      `json:"filed"`
	Accn  string      `json:"accn"`
	Frame string      `json:"frame"`
}

// GaapFacts returns the us-gaap taxonomy facts from the payload
func (companyFacts *CompanyFacts) GaapFacts() map[string]ConceptFact {
	return companyFacts.Facts["us-gaap"]
}
