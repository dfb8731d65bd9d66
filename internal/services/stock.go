package services

import "inventory/internal/models"

// adjust changes the stock held at loc by delta.
func adjust(p *models.Product, loc models.Location, delta int) {
	switch loc {
	case models.LocationStore:
		p.Store += delta
	case models.LocationCounter:
		p.Counter += delta
	}
}

// negativeAt returns the first location whose stock dropped below zero.
func negativeAt(p *models.Product) (models.Location, bool) {
	if p.Store < 0 {
		return models.LocationStore, true
	}
	if p.Counter < 0 {
		return models.LocationCounter, true
	}
	return "", false
}

func insufficient(p *models.Product, loc models.Location) *BusinessError {
	return businessError("Only %d items are left in %s", p.Quantity(loc), loc)
}
