package item

import (
	"context"
	"fmt"

	"github.com/rethesda/soulsy/internal/domain"
	"github.com/rethesda/soulsy/internal/logger"
)

// Store is a read-only index of catalog items by form spec, in catalog order.
type Store struct {
	items  map[string]domain.Item
	counts map[string]int
	order  []string
}

// NewStore converts every definition in the catalog. The catalog should
// already have passed Validate.
func NewStore(ctx context.Context, config *Config) (*Store, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgConfigNil)
	}

	s := &Store{
		items:  make(map[string]domain.Item, len(config.Items)),
		counts: make(map[string]int, len(config.Items)),
		order:  make([]string, 0, len(config.Items)),
	}
	for i := range config.Items {
		def := &config.Items[i]
		item, err := def.ToItem()
		if err != nil {
			return nil, err
		}
		if _, dup := s.items[def.FormSpec]; dup {
			return nil, fmt.Errorf("%w: '%s'", ErrDuplicateFormSpec, def.FormSpec)
		}
		s.items[def.FormSpec] = item
		s.order = append(s.order, def.FormSpec)
		if def.Count > 0 {
			s.counts[def.FormSpec] = def.Count
		}
	}

	logger.FromContext(ctx).Info(LogMsgCatalogLoaded, "version", config.Version, "items", len(s.order))
	return s, nil
}

// Get returns the item with the given form spec
func (s *Store) Get(spec string) (domain.Item, error) {
	item, ok := s.items[spec]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, spec)
	}
	return item, nil
}

// Len returns the number of items
func (s *Store) Len() int {
	return len(s.order)
}

// All returns every item in catalog order
func (s *Store) All() []domain.Item {
	return s.Filter(func(domain.FormCategory) bool { return true })
}

// Filter returns the items whose category passes keep
func (s *Store) Filter(keep func(domain.FormCategory) bool) []domain.Item {
	out := make([]domain.Item, 0, len(s.order))
	for _, spec := range s.order {
		item := s.items[spec]
		if keep(item.Category()) {
			out = append(out, item)
		}
	}
	return out
}

// Relevant returns the items the overlay can show
func (s *Store) Relevant() []domain.Item {
	return s.Filter(domain.FormCategory.IsRelevant)
}

// Inventory returns the relevant items that are carried rather than known
func (s *Store) Inventory() []domain.Item {
	return s.Filter(domain.FormCategory.IsInventory)
}

// Counts returns the starting stack count per form spec
func (s *Store) Counts() map[string]int {
	out := make(map[string]int, len(s.counts))
	for spec, n := range s.counts {
		out[spec] = n
	}
	return out
}

// CheckHealth reports whether the catalog has anything to serve.
func (s *Store) CheckHealth(ctx context.Context) error {
	if len(s.order) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgCatalogEmpty)
	}
	return nil
}
