package catalog

import (
	"fmt"

	"github.com/janekbaraniewski/priceanatomy/internal/core"
	"github.com/shopspring/decimal"
)

func layer(id, label string, amount int64, color, description string) core.CostLayer {
	return core.CostLayer{
		ID:          core.LayerID(id),
		Label:       label,
		Amount:      decimal.NewFromInt(amount),
		ColorToken:  color,
		Description: description,
	}
}

// BuiltinItems is the catalog shipped with the binary.
func BuiltinItems() []core.Item {
	return []core.Item{
		{
			ID:      "lixiang-l9",
			Brand:   "Lixiang",
			Model:   "L9 Ultra",
			Year:    2025,
			Specs:   core.Specs{Engine: "1.5T EREV", Power: "449 HP", Range: "1315 KM"},
			Image:   "/cars/lixiang.png",
			Stencil: "/cars/l9-mask.png",
			Layers: []core.CostLayer{
				layer("factory", "Factory Price", 6100000, "blue-600", "China Price"),
				layer("logistics", "Logistics", 460000, "cyan-500", "Delivery & Docs"),
				layer("customs", "Customs", 2900000, "orange-600", "48% Duty"),
				layer("util", "Util Fee", 1828000, "purple-600", "New Fee 2025"),
				layer("margin", "Margin", 100000, "yellow-400", "Dealer Profit"),
			},
		},
		{
			ID:      "zeekr-009",
			Brand:   "Zeekr",
			Model:   "009 Grand",
			Year:    2025,
			Specs:   core.Specs{Engine: "EV", Power: "544 HP", Range: "702 KM"},
			Image:   "/cars/zeekr.png",
			Stencil: "/cars/zeekr-mask.png",
			Layers: []core.CostLayer{
				layer("factory", "Factory Price", 8500000, "blue-600", ""),
				layer("logistics", "Logistics", 500000, "cyan-500", ""),
				layer("customs", "Customs", 3200000, "orange-600", ""),
				layer("util", "Util Fee", 34000, "green-500", ""),
				layer("margin", "Margin", 300000, "yellow-400", ""),
			},
		},
	}
}

// Builtin returns the shipped catalog.
func Builtin() (*core.Catalog, error) {
	cat, err := core.NewCatalog(BuiltinItems())
	if err != nil {
		return nil, fmt.Errorf("catalog: built-in items: %w", err)
	}
	return cat, nil
}
