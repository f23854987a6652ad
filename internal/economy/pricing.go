package economy

import (
	"github.com/osse101/MudShop_Go/internal/domain"
)

// BuyPrice is what a shop charges for an item: base value times markup,
// truncated toward zero. Unresolvable references cost 0.
func BuyPrice(ref domain.ItemRef, items domain.ItemLookup, shop *domain.ShopDescriptor) int {
	return applyRate(ref.BaseValue(items), shop.EffectiveMarkup())
}

// SellPrice is what a shop pays for an item: base value times markdown,
// truncated toward zero.
func SellPrice(ref domain.ItemRef, items domain.ItemLookup, shop *domain.ShopDescriptor) int {
	return applyRate(ref.BaseValue(items), shop.EffectiveMarkdown())
}

// SupplyDemandModifier lowers what a shop pays for a category it has already
// bought a lot of: 5% per item sold, never below half.
func SupplyDemandModifier(shop *domain.ShopDescriptor, cat domain.Category) float64 {
	if shop == nil {
		return 1.0
	}
	mod := 1.0 - float64(shop.SoldCounts[cat])*SupplyDemandStep
	if mod < SupplyDemandFloor {
		return SupplyDemandFloor
	}
	return mod
}

// Offer is the price a shop quotes when buying rec from a player. Records
// carrying a max_value above base_value get a random offer in between.
// intn must behave like rand.Intn.
func Offer(rec domain.Object, shop *domain.ShopDescriptor, intn func(int) int) int {
	rate := shop.EffectiveMarkdown() * SupplyDemandModifier(shop, rec.Category())
	low := applyRate(rec.BaseValue, rate)
	high := applyRate(rec.MaxValue, rate)
	if high > low && intn != nil {
		return low + intn(high-low+1)
	}
	return low
}

func applyRate(base int, rate float64) int {
	if base <= 0 || rate <= 0 {
		return 0
	}
	return int(float64(base) * rate)
}
