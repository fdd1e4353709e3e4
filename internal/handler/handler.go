// Package handler implements the HTTP surface of the dev harness: catalog
// classification, actor setup and the power-slot controller.
package handler

import (
	"context"

	"github.com/rethesda/soulsy/internal/cache"
	"github.com/rethesda/soulsy/internal/domain"
	"github.com/rethesda/soulsy/internal/equippable"
	"github.com/rethesda/soulsy/internal/eventlog"
	"github.com/rethesda/soulsy/internal/shout"
)

// Catalog looks up item records by form spec.
type Catalog interface {
	Get(spec string) (domain.Item, error)
	Filter(keep func(domain.FormCategory) bool) []domain.Item
}

// ActorStore holds per-actor equip state.
type ActorStore interface {
	Register(id domain.ActorID)
	Exists(id domain.ActorID) bool
	LearnShout(id domain.ActorID, shout *domain.Shout) error
	SelectPower(id domain.ActorID, spell *domain.Spell) error
	SetCount(id domain.ActorID, spec string, count int) error
	Counter(id domain.ActorID) equippable.Counter
}

// PowerController switches an actor's selected power.
type PowerController interface {
	Selected(actor domain.ActorID) shout.PowerState
	EquipShoutByForm(ctx context.Context, actor domain.ActorID, target domain.Item) shout.Outcome
	UnequipShoutSlot(ctx context.Context, actor domain.ActorID) shout.Outcome
}

// CacheAdmin exposes the classification cache to operators.
type CacheAdmin interface {
	GetStats() cache.Stats
	Clear()
}

// EventJournal answers queries over recorded power events.
type EventJournal interface {
	GetEvents(ctx context.Context, filter eventlog.EventFilter) ([]eventlog.Event, error)
}
