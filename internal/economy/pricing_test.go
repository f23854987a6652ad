package economy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/MudShop_Go/internal/domain"
)

type lookup map[string]domain.Object

func (l lookup) Get(key string) (domain.Object, bool) {
	o, ok := l[key]
	return o, ok
}

func TestBuyAndSellPrice(t *testing.T) {
	items := lookup{"sword": {Name: "a short sword", BaseValue: 40, Type: domain.ItemTypeWeapon}}
	half := 0.5
	zero := 0.0

	tests := []struct {
		name     string
		ref      domain.ItemRef
		shop     *domain.ShopDescriptor
		wantBuy  int
		wantSell int
	}{
		{"catalog key with markup", domain.RefByKey("sword"), &domain.ShopDescriptor{Markup: 1.5, Markdown: &half}, 60, 20},
		{"defaults", domain.RefByKey("sword"), nil, 48, 20},
		{"inline record", domain.RefInline(domain.Object{Name: "rope", BaseValue: 7}), &domain.ShopDescriptor{Markup: 1.2}, 8, 3},
		{"unknown key", domain.RefByKey("lance"), &domain.ShopDescriptor{Markup: 2}, 0, 0},
		{"zero markdown", domain.RefByKey("sword"), &domain.ShopDescriptor{Markdown: &zero}, 48, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buy := BuyPrice(tt.ref, items, tt.shop)
			sell := SellPrice(tt.ref, items, tt.shop)
			assert.Equal(t, tt.wantBuy, buy)
			assert.Equal(t, tt.wantSell, sell)

			base := tt.ref.BaseValue(items)
			assert.GreaterOrEqual(t, buy, base)
			assert.LessOrEqual(t, sell, base)
		})
	}
}

func TestSupplyDemandModifier(t *testing.T) {
	shop := &domain.ShopDescriptor{SoldCounts: map[domain.Category]int{
		domain.CategoryWeapon: 4,
		domain.CategoryArmor:  40,
	}}

	assert.InDelta(t, 0.8, SupplyDemandModifier(shop, domain.CategoryWeapon), 1e-9)
	assert.Equal(t, SupplyDemandFloor, SupplyDemandModifier(shop, domain.CategoryArmor))
	assert.Equal(t, 1.0, SupplyDemandModifier(shop, domain.CategoryMagic))
	assert.Equal(t, 1.0, SupplyDemandModifier(nil, domain.CategoryMisc))
}

func TestOffer(t *testing.T) {
	half := 0.5
	shop := &domain.ShopDescriptor{Markdown: &half}

	t.Run("fixed value", func(t *testing.T) {
		assert.Equal(t, 20, Offer(domain.Object{BaseValue: 40}, shop, nil))
	})

	t.Run("value range", func(t *testing.T) {
		rec := domain.Object{BaseValue: 40, MaxValue: 60}
		top := func(n int) int { return n - 1 }
		bottom := func(int) int { return 0 }
		assert.Equal(t, 30, Offer(rec, shop, top))
		assert.Equal(t, 20, Offer(rec, shop, bottom))
	})

	t.Run("saturated category", func(t *testing.T) {
		glutted := &domain.ShopDescriptor{Markdown: &half, SoldCounts: map[domain.Category]int{domain.CategoryMisc: 20}}
		assert.Equal(t, 10, Offer(domain.Object{BaseValue: 40}, glutted, nil))
	})
}
