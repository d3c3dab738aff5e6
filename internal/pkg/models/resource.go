package models

import (
	"fmt"
	"strings"
)

// ResourceType is a bitset of the synchronizable resource kinds.
type ResourceType uint8

const (
	ResourceAccount ResourceType = 1 << iota
	ResourceBalance
	ResourceTransactions
	ResourcePendingTransactions
	ResourceStandingOrders
	ResourceDirectDebits

	ResourceAll = ResourceAccount | ResourceBalance | ResourceTransactions |
		ResourcePendingTransactions | ResourceStandingOrders | ResourceDirectDebits
)

var resourceNames = map[ResourceType]string{
	ResourceAccount:             "account",
	ResourceBalance:             "balance",
	ResourceTransactions:        "transactions",
	ResourcePendingTransactions: "pending_transactions",
	ResourceStandingOrders:      "standing_orders",
	ResourceDirectDebits:        "direct_debits",
}

// SubResources lists the per-account resource kinds in deterministic order.
var SubResources = []ResourceType{
	ResourceBalance,
	ResourceTransactions,
	ResourcePendingTransactions,
	ResourceStandingOrders,
	ResourceDirectDebits,
}

// Has reports whether t includes the given flag.
func (t ResourceType) Has(flag ResourceType) bool {
	return t&flag != 0
}

// String returns the stable name of a single resource flag, or a
// comma-separated list for a combined set.
func (t ResourceType) String() string {
	if name, ok := resourceNames[t]; ok {
		return name
	}
	if t == ResourceAll {
		return "all"
	}
	var parts []string
	for _, r := range append([]ResourceType{ResourceAccount}, SubResources...) {
		if t.Has(r) {
			parts = append(parts, resourceNames[r])
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ",")
}

// ParseResourceTypes parses a comma-separated list of resource names into a
// bitset. An empty input means "all".
func ParseResourceTypes(s string) (ResourceType, error) {
	if strings.TrimSpace(s) == "" {
		return ResourceAll, nil
	}

	var set ResourceType
	for _, part := range strings.Split(s, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "all" {
			return ResourceAll, nil
		}
		matched := false
		for flag, flagName := range resourceNames {
			if name == flagName {
				set |= flag
				matched = true
				break
			}
		}
		if !matched {
			return 0, fmt.Errorf("unknown resource type: %q", part)
		}
	}
	return set, nil
}
