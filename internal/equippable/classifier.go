// Package equippable reduces raw item records to the slot type, icon and
// display metadata the quick-equip overlay renders.
//
// The decision functions are pure: they read only the record passed in and
// are safe to call from any number of goroutines.
package equippable

import (
	"context"

	"github.com/rethesda/soulsy/internal/domain"
	"github.com/rethesda/soulsy/internal/keyword"
	"github.com/rethesda/soulsy/internal/logger"
	"github.com/rethesda/soulsy/internal/metrics"
	"github.com/rethesda/soulsy/internal/naming"
)

// Counter reports how many of an item the player carries.
type Counter interface {
	InventoryCount(item domain.Item) int
}

// Cache stores finished classifications keyed by form spec.
type Cache interface {
	Get(spec string) (domain.Classification, bool)
	Set(spec string, entry domain.Classification)
}

// Classifier builds classification records. The zero value is not usable;
// construct one with NewClassifier.
type Classifier struct {
	keywords *keyword.Inspector
	counter  Counter
	cache    Cache
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithCounter fills in stack counts for consumables and scrolls.
func WithCounter(counter Counter) Option {
	return func(c *Classifier) { c.counter = counter }
}

// WithCache reuses classifications for forms seen before.
func WithCache(cache Cache) Option {
	return func(c *Classifier) { c.cache = cache }
}

// NewClassifier creates a classifier. A nil inspector uses the default keywords.
func NewClassifier(keywords *keyword.Inspector, opts ...Option) *Classifier {
	if keywords == nil {
		keywords = keyword.NewInspector(nil)
	}
	c := &Classifier{keywords: keywords}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ForInventory returns a copy of the classifier that reads stack counts
// from counter. Keywords and cache are shared with the original.
func (c *Classifier) ForInventory(counter Counter) *Classifier {
	cp := *c
	cp.counter = counter
	return &cp
}

// Uncached returns a copy of the classifier that neither reads nor fills
// the cache. Use it for records whose form spec may not be unique.
func (c *Classifier) Uncached() *Classifier {
	cp := *c
	cp.cache = nil
	return &cp
}

var defaultClassifier = NewClassifier(nil)

// ClassifySlot maps an item to its slot type using the default keywords.
func ClassifySlot(item domain.Item) domain.SlotType {
	return defaultClassifier.SlotType(item)
}

// ResolveIcon picks the icon for an item using the default keywords.
func ResolveIcon(slot domain.SlotType, item domain.Item) domain.Icon {
	return defaultClassifier.Icon(slot, item)
}

// SlotType maps an item to exactly one slot type. Only an absent item is Empty.
func (c *Classifier) SlotType(item domain.Item) domain.SlotType {
	return classifySlot(item, c.keywords)
}

// Icon picks the display icon for an item classified into slot.
func (c *Classifier) Icon(slot domain.SlotType, item domain.Item) domain.Icon {
	return resolveIcon(slot, item, c.keywords)
}

// Classify builds the full record for one item. It never fails: an absent
// item yields an Empty record with the default icon.
func (c *Classifier) Classify(ctx context.Context, item domain.Item) domain.Classification {
	if domain.IsAbsent(item) {
		metrics.ItemsClassified.WithLabelValues(domain.SlotEmpty.String()).Inc()
		return domain.Classification{SlotType: domain.SlotEmpty, Icon: domain.IconDefault}
	}

	spec := item.Base().Spec
	entry, cached := c.lookup(spec)
	if !cached {
		entry = c.build(ctx, item)
		if c.cache != nil && spec != "" {
			c.cache.Set(spec, entry)
		}
	}

	if entry.HasCount && c.counter != nil {
		entry.Count = c.counter.InventoryCount(item)
	}
	return entry
}

func (c *Classifier) lookup(spec string) (domain.Classification, bool) {
	if c.cache == nil || spec == "" {
		return domain.Classification{}, false
	}
	entry, ok := c.cache.Get(spec)
	if ok {
		metrics.CacheLookups.WithLabelValues(metrics.CacheHit).Inc()
	} else {
		metrics.CacheLookups.WithLabelValues(metrics.CacheMiss).Inc()
	}
	return entry, ok
}

func (c *Classifier) build(ctx context.Context, item domain.Item) domain.Classification {
	slot := c.SlotType(item)
	icon := c.Icon(slot, item)

	entry := domain.Classification{
		SlotType:    slot,
		Icon:        icon,
		TwoHanded:   IsTwoHanded(item),
		HasCount:    slot.HasCount(),
		InstantCast: CanInstantCast(item, slot),
		Spec:        item.Base().Spec,
		Name:        naming.DisplayName(item.Base().Name),
	}
	if spell, ok := item.(*domain.Spell); ok && slot == domain.SlotMagic {
		entry.Spell = SpellDataFor(spell)
	}

	metrics.ItemsClassified.WithLabelValues(slot.String()).Inc()
	if icon == domain.IconDefault && slot != domain.SlotMisc {
		metrics.IconFallbacks.WithLabelValues(slot.String()).Inc()
		logger.FromContext(ctx).Debug(LogMsgIconFallback,
			"form_spec", entry.Spec,
			"category", item.Category().String(),
			"slot_type", slot.String())
	}

	logger.FromContext(ctx).Debug(LogMsgClassified,
		"form_spec", entry.Spec,
		"slot_type", slot.String(),
		"icon", icon.String(),
		"two_handed", entry.TwoHanded)
	return entry
}
