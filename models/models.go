package models

// All returns every model registered for auto-migration.
func All() []any {
	return []any{
		&User{},
		&Product{},
		&Cart{},
		&CartItem{},
		&Order{},
		&OrderItem{},
		&TimelineEntry{},
		&SellerCounter{},
	}
}
