package catalog

// seedCats returns the fixed startup dataset. IDs are unique and stable for
// the process lifetime.
func seedCats() []Cat {
	return []Cat{
		{
			ID:          1,
			Name:        "Mike",
			Age:         3,
			Breed:       "Calico",
			Color:       "Calico",
			Indoor:      true,
			FavoriteToy: "Mouse toy",
		},
		{
			ID:          2,
			Name:        "Shiro",
			Age:         5,
			Breed:       "Persian",
			Color:       "White",
			Indoor:      true,
			FavoriteToy: "Yarn ball",
		},
		{
			ID:          3,
			Name:        "Kuro",
			Age:         2,
			Breed:       "Black cat",
			Color:       "Black",
			Indoor:      false,
			FavoriteToy: "Butterfly",
		},
		{
			ID:          4,
			Name:        "Chatora",
			Age:         7,
			Breed:       "Orange tabby",
			Color:       "Orange tabby",
			Indoor:      true,
			FavoriteToy: "Catnip",
		},
	}
}
