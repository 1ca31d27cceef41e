package planner

import (
	"slices"

	"github.com/shopspring/decimal"
)

// Asset is a portfolio asset as the surrounding application supplies it:
// an opaque id and a display name. The engine only reads this list.
type Asset struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AllocationEntry is one asset's target percentage while a reallocation is
// being edited. Percentage is kept as raw text: it may be transiently empty
// or unparsable mid-edit, and is only validated at finalize time.
type AllocationEntry struct {
	AssetID    string
	AssetName  string
	Percentage string
}

// Allocations is the per-asset percentage list of an in-progress reallocation.
type Allocations []AllocationEntry

// NewAllocations scaffolds an allocation list from the portfolio assets,
// one entry per asset in order. Percentages already present in prev are
// preserved for assets that still exist, matched by asset id.
func NewAllocations(assets []Asset, prev Allocations) Allocations {
	out := make(Allocations, 0, len(assets))
	for _, asset := range assets {
		entry := AllocationEntry{AssetID: asset.ID, AssetName: asset.Name}
		for _, p := range prev {
			if p.AssetID == asset.ID {
				entry.Percentage = p.Percentage
				break
			}
		}
		out = append(out, entry)
	}
	return out
}

// SetPercentage returns a copy of the list with the matching entry's
// percentage replaced by raw, verbatim. Unknown asset ids are ignored.
func (a Allocations) SetPercentage(assetID, raw string) Allocations {
	out := slices.Clone(a)
	for i := range out {
		if out[i].AssetID == assetID {
			out[i].Percentage = raw
		}
	}
	return out
}

// Sum returns the running total of the percentages. An empty or unparsable
// percentage contributes zero; the raw text itself is left untouched for
// the finalizer to judge.
func (a Allocations) Sum() decimal.Decimal {
	sum := decimal.Zero
	for _, entry := range a {
		if v, err := decimal.NewFromString(entry.Percentage); err == nil {
			sum = sum.Add(v)
		}
	}
	return sum
}
