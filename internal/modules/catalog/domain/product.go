package domain

import (
	"kiosqueLive/internal/shared/normalization"
)

// Product is one storefront item as served by the backend catalog.
// The list is replaced wholesale on every fetch, never patched.
type Product struct {
	ID            int
	Name          string
	Category      string
	CategoryLabel string
	Price         float64
	Image         string
	Alt           string
	Tags          []string
	Bestseller    bool
}

// HasTag reports whether the product carries the given tag.
func (p Product) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// NormalizeProduct attempts to construct a Product from an arbitrary map payload.
func NormalizeProduct(raw map[string]any) (Product, bool) {
	name := normalization.AsString(raw["name"])
	if name == "" {
		return Product{}, false
	}
	product := Product{
		ID:            normalization.AsInt(raw["id"]),
		Name:          name,
		Category:      normalization.AsString(raw["category"]),
		CategoryLabel: normalization.AsString(raw["category_label"]),
		Price:         normalization.AsFloat64(raw["price"]),
		Image:         normalization.AsString(raw["image"]),
		Alt:           normalization.AsString(raw["alt"]),
		Tags:          normalization.AsStringSlice(raw["tags"]),
		Bestseller:    normalization.AsBool(raw["bestseller"]),
	}
	if product.Price < 0 {
		product.Price = 0
	}
	if product.Alt == "" {
		product.Alt = product.Name
	}
	return product, true
}

// BuildProductList projects a decoded payload into an ordered product slice.
// The backend owns the ordering; entries that cannot be normalized are skipped.
func BuildProductList(payload any) []Product {
	rawItems := normalization.AsInterfaceSlice(payload)
	if len(rawItems) == 0 {
		if container := normalization.MapFromPayload(payload); container != nil {
			rawItems = normalization.AsInterfaceSlice(container["items"])
		}
	}
	if len(rawItems) == 0 {
		return nil
	}

	products := make([]Product, 0, len(rawItems))
	for _, item := range rawItems {
		if rawMap, ok := item.(map[string]any); ok {
			if product, ok := NormalizeProduct(rawMap); ok {
				products = append(products, product)
			}
		}
	}
	if len(products) == 0 {
		return nil
	}
	return products
}
