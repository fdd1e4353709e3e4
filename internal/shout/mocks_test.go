package shout

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rethesda/soulsy/internal/domain"
	"github.com/rethesda/soulsy/internal/event"
)

// MockEquipService
type MockEquipService struct {
	mock.Mock
}

func (m *MockEquipService) EquipShout(actor domain.ActorID, shout *domain.Shout) {
	m.Called(actor, shout)
}

func (m *MockEquipService) UnequipSpell(actor domain.ActorID, spell *domain.Spell, slot EquipSlot) {
	m.Called(actor, spell, slot)
}

func (m *MockEquipService) UnequipShout(actor domain.ActorID, shout *domain.Shout) {
	m.Called(actor, shout)
}

// MockActorState
type MockActorState struct {
	mock.Mock
}

func (m *MockActorState) SelectedPower(actor domain.ActorID) domain.Item {
	args := m.Called(actor)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(domain.Item)
}

func (m *MockActorState) KnowsShout(actor domain.ActorID, shout *domain.Shout) bool {
	args := m.Called(actor, shout)
	return args.Bool(0)
}

// MockBus
type MockBus struct {
	mock.Mock
}

func (m *MockBus) Publish(ctx context.Context, evt event.Event) error {
	args := m.Called(ctx, evt)
	return args.Error(0)
}

func (m *MockBus) Subscribe(eventType event.Type, handler event.Handler) {
	m.Called(eventType, handler)
}
