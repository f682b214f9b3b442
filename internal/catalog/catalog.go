package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/internal/domain"
	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/pkg/errors"
)

// Provider is the read-only product source.
type Provider interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
}

// Static serves a fixed product list held in memory.
type Static struct {
	products []domain.Product
	byID     map[string]int
}

// NewStatic validates the products and indexes them by id. A missing minimum
// order quantity is treated as one.
func NewStatic(products []domain.Product) (*Static, error) {
	s := &Static{
		products: make([]domain.Product, 0, len(products)),
		byID:     make(map[string]int, len(products)),
	}
	for _, p := range products {
		if p.ID == "" {
			return nil, fmt.Errorf("product %q has no id", p.Name)
		}
		if _, dup := s.byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate product id %s", p.ID)
		}
		if !p.Category.IsValid() {
			return nil, fmt.Errorf("product %s: invalid category %q", p.ID, p.Category)
		}
		if err := p.Price.Validate(); err != nil {
			return nil, fmt.Errorf("product %s: %w", p.ID, err)
		}
		if p.MinOrderQuantity < 1 {
			p.MinOrderQuantity = 1
		}
		s.byID[p.ID] = len(s.products)
		s.products = append(s.products, p.Clone())
	}
	return s, nil
}

// NewDefault returns the built-in storefront catalog.
func NewDefault() *Static {
	s, err := NewStatic(DefaultProducts())
	if err != nil {
		panic(err)
	}
	return s
}

// List and Get hand out copies; callers cannot reach the catalog's own
// features or specifications.
func (s *Static) List(ctx context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, len(s.products))
	for i, p := range s.products {
		out[i] = p.Clone()
	}
	return out, nil
}

func (s *Static) Get(ctx context.Context, id string) (*domain.Product, error) {
	i, ok := s.byID[id]
	if !ok {
		return nil, &errors.ErrNotFound{Resource: "product", ID: id}
	}
	p := s.products[i].Clone()
	return &p, nil
}

// Filter keeps products of the given category and subcategory. An empty
// value or "all" matches everything.
func Filter(products []domain.Product, category, subcategory string) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if category != "" && category != "all" && string(p.Category) != category {
			continue
		}
		if subcategory != "" && p.Subcategory != subcategory {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Search matches name or description case-insensitively.
func Search(products []domain.Product, text string) []domain.Product {
	q := strings.ToLower(strings.TrimSpace(text))
	if q == "" {
		return products
	}
	out := make([]domain.Product, 0)
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) {
			out = append(out, p)
		}
	}
	return out
}
