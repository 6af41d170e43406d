package classifier

import (
	"ai-helpdesk-be/internal/entity"
)

// Rule binds a category to its keyword triggers. Keywords may contain
// spaces ("not working") because matching is substring containment, not
// token comparison.
type Rule struct {
	Category entity.Category
	Keywords []string
}

// RuleTable is an ordered rule set. Declaration order is the tie-break
// priority: when two categories produce the same raw score the one
// declared first wins.
type RuleTable []Rule

// DefaultRules returns the built-in keyword table. Configuration data,
// not logic: alternative tables can be injected for testing or when the
// category set changes.
func DefaultRules() RuleTable {
	return RuleTable{
		{
			Category: entity.CategoryBilling,
			Keywords: []string{
				"refund", "invoice", "payment", "charge", "bill", "money",
				"cost", "price", "subscription", "credit", "debit", "account",
			},
		},
		{
			Category: entity.CategoryTech,
			Keywords: []string{
				"error", "bug", "crash", "broken", "not working", "stack trace",
				"exception", "500", "404", "login", "password", "api", "database",
			},
		},
		{
			Category: entity.CategoryShipping,
			Keywords: []string{
				"delivery", "shipment", "package", "tracking", "shipping",
				"address", "delayed", "lost", "arrived", "courier", "order",
			},
		},
	}
}
