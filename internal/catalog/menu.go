package catalog

import "github.com/shopspring/decimal"

func item(name string, price int64) MenuItem {
	return MenuItem{Name: name, Price: decimal.NewFromInt(price)}
}

// DefaultCategories is the establishment's menu.
func DefaultCategories() []Category {
	return []Category{
		{
			ID:    "lanches",
			Title: "Lanches",
			Items: []MenuItem{
				item("X Burguêr", 12),
				item("X Egg Bacon", 16),
				item("X Salada", 17),
				item("X Salada Egg", 20),
				item("X Tudo", 28),
			},
		},
		{
			ID:    "hot-dog",
			Title: "Hot dog",
			Items: []MenuItem{
				item("Hot Dog Simples", 8),
				item("Hot Dog Completo", 12),
			},
		},
		{
			ID:    "bebidas",
			Title: "Refrigerantes",
			Items: []MenuItem{
				item("Coca-Cola 350ml", 5),
				item("Guaraná 350ml", 5),
			},
		},
	}
}

// Default returns the catalog built from DefaultCategories.
func Default() *Catalog {
	return MustNew(DefaultCategories())
}
