package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/HJantango/wild-octave-august-sub004/internal/cache"
	"github.com/HJantango/wild-octave-august-sub004/internal/domain"
)

// ErrEmptyItemID is returned for blank stock identifiers.
var ErrEmptyItemID = errors.New("item id is required")

type StockService struct {
	store cache.StockStore
}

func NewStockService(store cache.StockStore) *StockService {
	if store == nil {
		store = cache.NewMemoryStockStore()
	}
	return &StockService{store: store}
}

// Store exposes the underlying store so the recommendation service can share it.
func (s *StockService) Store() cache.StockStore {
	return s.store
}

func (s *StockService) List(ctx context.Context) (map[string]int, error) {
	levels, err := s.store.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing stock levels: %w", err)
	}
	return levels, nil
}

func (s *StockService) Get(ctx context.Context, itemID string) (domain.StockLevel, bool, error) {
	if strings.TrimSpace(itemID) == "" {
		return domain.StockLevel{}, false, ErrEmptyItemID
	}
	qty, ok, err := s.store.Get(ctx, itemID)
	if err != nil {
		return domain.StockLevel{}, false, fmt.Errorf("error getting stock level: %w", err)
	}
	return domain.StockLevel{ItemID: itemID, OnHand: qty}, ok, nil
}

// Set records an on-hand count; negative counts are stored as zero.
func (s *StockService) Set(ctx context.Context, itemID string, onHand int) (domain.StockLevel, error) {
	if strings.TrimSpace(itemID) == "" {
		return domain.StockLevel{}, ErrEmptyItemID
	}
	if onHand < 0 {
		onHand = 0
	}
	if err := s.store.Set(ctx, itemID, onHand); err != nil {
		return domain.StockLevel{}, fmt.Errorf("error setting stock level: %w", err)
	}
	return domain.StockLevel{ItemID: itemID, OnHand: onHand}, nil
}

func (s *StockService) Clear(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("error clearing stock levels: %w", err)
	}
	return nil
}
