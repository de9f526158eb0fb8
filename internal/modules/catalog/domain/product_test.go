package domain

import "testing"

func TestNormalizeProduct(t *testing.T) {
	cases := []struct {
		name     string
		raw      map[string]any
		expected Product
		ok       bool
	}{
		{
			name: "complete payload",
			raw: map[string]any{
				"id": float64(3), "name": "Gaufre Chantilly", "category": "gaufres",
				"category_label": "Gaufres", "price": 4.5, "image": "gaufre.jpg",
				"alt": "Une gaufre", "tags": []any{"sweet"}, "bestseller": true,
			},
			expected: Product{ID: 3, Name: "Gaufre Chantilly", Category: "gaufres", CategoryLabel: "Gaufres", Price: 4.5, Image: "gaufre.jpg", Alt: "Une gaufre", Tags: []string{"sweet"}, Bestseller: true},
			ok:       true,
		},
		{
			name:     "missing name rejected",
			raw:      map[string]any{"id": float64(1), "price": 3.0},
			expected: Product{},
			ok:       false,
		},
		{
			name:     "negative price clamps to zero",
			raw:      map[string]any{"name": "Crêpe Sucre", "price": -1.5},
			expected: Product{Name: "Crêpe Sucre", Alt: "Crêpe Sucre"},
			ok:       true,
		},
		{
			name:     "missing alt falls back to name",
			raw:      map[string]any{"name": "Box Duo"},
			expected: Product{Name: "Box Duo", Alt: "Box Duo"},
			ok:       true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			product, ok := NormalizeProduct(tc.raw)
			if ok != tc.ok {
				t.Fatalf("expected ok=%v, got %v", tc.ok, ok)
			}
			if !ok {
				return
			}
			if product.ID != tc.expected.ID || product.Name != tc.expected.Name || product.Price != tc.expected.Price || product.Alt != tc.expected.Alt || product.Bestseller != tc.expected.Bestseller {
				t.Fatalf("expected %+v, got %+v", tc.expected, product)
			}
		})
	}
}

func TestBuildProductList(t *testing.T) {
	payload := []any{
		map[string]any{"id": float64(1), "name": "Crêpe Nutella", "category": "crepes_sucrees"},
		map[string]any{"price": 3.0},
		map[string]any{"id": float64(2), "name": "Box Duo", "category": "box"},
	}

	products := BuildProductList(payload)
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
	if products[0].Name != "Crêpe Nutella" || products[1].Name != "Box Duo" {
		t.Fatalf("expected backend order preserved, got %+v", products)
	}
}

func TestBuildProductListUnwrapsItemsContainer(t *testing.T) {
	payload := map[string]any{
		"items": []any{
			map[string]any{"id": float64(9), "name": "Gaufre Sucre"},
		},
	}

	products := BuildProductList(payload)
	if len(products) != 1 || products[0].ID != 9 {
		t.Fatalf("expected unwrapped item, got %+v", products)
	}
}

func TestBuildProductListEmptyPayloads(t *testing.T) {
	for _, payload := range []any{nil, []any{}, map[string]any{}, "garbage"} {
		if got := BuildProductList(payload); got != nil {
			t.Fatalf("expected nil for %v, got %+v", payload, got)
		}
	}
}

func TestHasTag(t *testing.T) {
	product := Product{Tags: []string{TagSweet}}
	if !product.HasTag(TagSweet) {
		t.Fatal("expected sweet tag")
	}
	if product.HasTag(TagSavory) {
		t.Fatal("did not expect savory tag")
	}
}
