package model

// Product is a catalog entry. The catalog is managed outside of this service.
type Product struct {
	ID        int64
	Name      string
	UnitPrice float64
}
