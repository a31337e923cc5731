package player

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/gamedesigns/lootcrate/internal/domain"
	"github.com/gamedesigns/lootcrate/internal/event"
	"github.com/gamedesigns/lootcrate/internal/logger"
	"github.com/gamedesigns/lootcrate/internal/metrics"
)

// Service defines the player state interface: inventory, the equipped
// slot, and the currency balance.
type Service interface {
	CreatePlayer(ctx context.Context, name string) (*domain.Player, error)

	// GetPlayer returns a snapshot of the player's state; the live
	// struct never leaves the registry.
	GetPlayer(ctx context.Context, playerID uuid.UUID) (*domain.Player, error)

	// AddItem appends the item instance to the player's inventory
	AddItem(ctx context.Context, playerID uuid.UUID, it domain.Item) error

	// Equip marks the item instance as equipped, replacing any previously
	// equipped item. The replaced item stays in the inventory.
	Equip(ctx context.Context, playerID, instanceID uuid.UUID) error

	// Sell removes the item instance from the inventory, credits its value
	// to the player's currency and returns the credited amount.
	Sell(ctx context.Context, playerID, instanceID uuid.UUID) (int, error)
}

type service struct {
	registry  *Registry
	publisher event.Bus
}

// NewService creates a new player service
func NewService(registry *Registry, publisher event.Bus) Service {
	return &service{
		registry:  registry,
		publisher: publisher,
	}
}

func (s *service) CreatePlayer(ctx context.Context, name string) (*domain.Player, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: player name is empty", domain.ErrInvalidInput)
	}

	p := s.registry.Create(name)
	logger.FromContext(ctx).Info(LogMsgPlayerCreated, "player_id", p.ID, "name", p.Name)
	return p, nil
}

func (s *service) GetPlayer(ctx context.Context, playerID uuid.UUID) (*domain.Player, error) {
	return s.registry.Snapshot(playerID)
}

func (s *service) AddItem(ctx context.Context, playerID uuid.UUID, it domain.Item) error {
	err := s.registry.WithPlayer(playerID, func(p *domain.Player) error {
		p.Inventory = append(p.Inventory, it)
		return nil
	})
	if err != nil {
		return err
	}

	logger.FromContext(ctx).Debug(LogMsgItemAdded,
		"player_id", playerID,
		"instance_id", it.InstanceID,
		"item", it.InternalName,
		"rarity", it.Rarity)
	return nil
}

func (s *service) Equip(ctx context.Context, playerID, instanceID uuid.UUID) error {
	log := logger.FromContext(ctx)

	var it domain.Item
	err := s.registry.WithPlayer(playerID, func(p *domain.Player) error {
		idx := p.FindItem(instanceID)
		if idx < 0 {
			return fmt.Errorf("%w: %s", domain.ErrItemNotInInventory, instanceID)
		}
		it = p.Inventory[idx]
		equipped := instanceID
		p.Equipped = &equipped
		return nil
	})
	if err != nil {
		log.Warn(LogMsgEquipFailed, "player_id", playerID, "instance_id", instanceID, "error", err)
		return err
	}

	metrics.ItemsEquipped.Inc()

	if s.publisher != nil {
		_ = s.publisher.Publish(ctx, event.NewItemEquippedEvent(playerID, it))
	}

	log.Info(LogMsgItemEquipped,
		"player_id", playerID,
		"instance_id", instanceID,
		"item", it.InternalName,
		"rarity", it.Rarity)
	return nil
}

func (s *service) Sell(ctx context.Context, playerID, instanceID uuid.UUID) (int, error) {
	log := logger.FromContext(ctx)

	var (
		sold    domain.Item
		balance int
	)
	// Removal, crediting and slot clearing happen in one locked mutation
	// so a sell can never leave a dangling equipped reference or an
	// uncredited item
	err := s.registry.WithPlayer(playerID, func(p *domain.Player) error {
		idx := p.FindItem(instanceID)
		if idx < 0 {
			return fmt.Errorf("%w: %s", domain.ErrItemNotInInventory, instanceID)
		}
		sold = p.Inventory[idx]
		p.Inventory = append(p.Inventory[:idx], p.Inventory[idx+1:]...)
		p.Currency += sold.Value
		if p.IsEquipped(instanceID) {
			p.Equipped = nil
		}
		balance = p.Currency
		return nil
	})
	if err != nil {
		log.Warn(LogMsgSellFailed, "player_id", playerID, "instance_id", instanceID, "error", err)
		return 0, err
	}

	metrics.ItemsSold.WithLabelValues(string(sold.Rarity)).Inc()

	if s.publisher != nil {
		_ = s.publisher.Publish(ctx, event.NewItemSoldEvent(playerID, sold))
	}

	log.Info(LogMsgItemSold,
		"player_id", playerID,
		"instance_id", instanceID,
		"item", sold.InternalName,
		"rarity", sold.Rarity,
		"value", sold.Value,
		"currency", balance)
	return sold.Value, nil
}
