package economy

import (
	"github.com/osse101/MudShop_Go/internal/domain"
	"github.com/osse101/MudShop_Go/internal/room"
)

// TableCategory reports whether obj is a shop table and which category of
// goods it shows.
func TableCategory(obj *domain.Object) (domain.Category, bool) {
	if !obj.HasKeyword(domain.KeywordTable) {
		return "", false
	}
	switch {
	case obj.HasKeyword("weapon"), obj.HasKeyword("weapons"):
		return domain.CategoryWeapon, true
	case obj.HasKeyword("armor"), obj.HasKeyword("armors"):
		return domain.CategoryArmor, true
	case obj.HasKeyword("magic"), obj.HasKeyword("arcane"), obj.HasKeyword("scrolls"):
		return domain.CategoryMagic, true
	default:
		return domain.CategoryMisc, true
	}
}

// DisplayTableName returns the name of the table in rm where rec would be
// displayed. Miscellaneous goods need a table keyworded "goods".
func DisplayTableName(rm *room.Room, rec *domain.Object) string {
	want := rec.Category()
	for i := range rm.View.Objects {
		o := &rm.View.Objects[i]
		cat, ok := TableCategory(o)
		if !ok || cat != want {
			continue
		}
		if cat == domain.CategoryMisc && !o.HasKeyword("goods") {
			continue
		}
		if o.Name == "" {
			return domain.KeywordTable
		}
		return o.Name
	}
	return DefaultDisplayTable
}
