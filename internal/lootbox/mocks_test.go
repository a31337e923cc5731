package lootbox

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/gamedesigns/lootcrate/internal/domain"
)

// MockPlayerStore
type MockPlayerStore struct {
	mock.Mock
}

func (m *MockPlayerStore) AddItem(ctx context.Context, playerID uuid.UUID, it domain.Item) error {
	args := m.Called(ctx, playerID, it)
	return args.Error(0)
}
