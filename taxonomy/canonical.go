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
package taxonomy

import "github.com/grahamdash/graham/data"

// canonicalConcepts lists the primary concept per line item for each
// statement category. Standard-format responses are restricted to these;
// detailed responses include every reported alternate.
var canonicalConcepts = map[string]map[string]struct{}{
	data.StatementIncome: setOf(
		"Revenues",
		"RevenueFromContractWithCustomerExcludingAssessedTax",
		"CostOfRevenue",
		"GrossProfit",
		"ResearchAndDevelopmentExpense",
		"SellingGeneralAndAdministrativeExpense",
		"OperatingExpenses",
		"OperatingIncomeLoss",
		"IncomeLossFromContinuingOperationsBeforeIncomeTaxesExtraordinaryItemsNoncontrollingInterest",
		"IncomeTaxExpenseBenefit",
		"NetIncomeLoss",
		"EarningsPerShareBasic",
		"EarningsPerShareDiluted",
	),
	data.StatementPosition: setOf(
		"CashAndCashEquivalentsAtCarryingValue",
		"MarketableSecuritiesCurrent",
		"AccountsReceivableNetCurrent",
		"InventoryNet",
		"AssetsCurrent",
		"PropertyPlantAndEquipmentNet",
		"Goodwill",
		"Assets",
		"AccountsPayableCurrent",
		"ShortTermBorrowings",
		"LiabilitiesCurrent",
		"LongTermDebt",
		"LongTermDebtNoncurrent",
		"Liabilities",
		"RetainedEarningsAccumulatedDeficit",
		"StockholdersEquity",
	),
	data.StatementCashFlows: setOf(
		"NetCashProvidedByUsedInOperatingActivities",
		"NetCashProvidedByUsedInInvestingActivities",
		"NetCashProvidedByUsedInFinancingActivities",
		"PaymentsToAcquirePropertyPlantAndEquipment",
		"DepreciationDepletionAndAmortization",
		"ShareBasedCompensation",
		"PaymentsForRepurchaseOfCommonStock",
		"PaymentsOfDividendsCommonStock",
		"CashCashEquivalentsRestrictedCashAndRestrictedCashEquivalentsPeriodIncreaseDecreaseIncludingExchangeRateEffect",
	),
	data.StatementEquity: setOf(
		"StockholdersEquity",
		"CommonStockSharesOutstanding",
		"CommonStockSharesIssued",
		"RetainedEarningsAccumulatedDeficit",
		"DividendsCommonStockCash",
		"StockRepurchasedAndRetiredDuringPeriodValue",
		"StockIssuedDuringPeriodValueNewIssues",
		"AccumulatedOtherComprehensiveIncomeLossNetOfTax",
	),
}

func setOf(names ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

// Canonical reports whether tag is the primary concept for a line item on
// the given statement category
func Canonical(category string, tag string) bool {
	concepts, ok := canonicalConcepts[category]
	if !ok {
		return false
	}
	_, ok = concepts[tag]
	return ok
}
