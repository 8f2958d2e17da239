package service

import (
	"context"
	"fmt"
	"time"

	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/constants"
	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/kvstore"
	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/models"
	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/repository"
)

const favoritesTTL = 180 * 24 * time.Hour

// FavoriteService keeps each session's favorite sweet ids.
type FavoriteService struct {
	store     kvstore.Store
	sweetRepo repository.SweetRepository
}

// NewFavoriteService builds a favorite service.
func NewFavoriteService(store kvstore.Store, sweetRepo repository.SweetRepository) *FavoriteService {
	return &FavoriteService{store: store, sweetRepo: sweetRepo}
}

func (s *FavoriteService) load(ctx context.Context, sessionID string) ([]uint, error) {
	var ids []uint
	found, err := s.store.GetJSON(ctx, sessionID, constants.StoreKeyFavorites, &ids)
	if err != nil {
		return nil, fmt.Errorf("load favorites: %w", err)
	}
	if !found || ids == nil {
		return []uint{}, nil
	}
	return ids, nil
}

func (s *FavoriteService) save(ctx context.Context, sessionID string, ids []uint) error {
	return s.store.SetJSON(ctx, sessionID, constants.StoreKeyFavorites, ids, favoritesTTL)
}

// List resolves the session's favorites against the catalog. Sweets
// removed from the catalog silently drop out of the result.
func (s *FavoriteService) List(ctx context.Context, sessionID string) ([]models.Sweet, error) {
	ids, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []models.Sweet{}, nil
	}
	return s.sweetRepo.ListByIDs(ids)
}

// Add marks a sweet as favorite. Adding twice is a no-op.
func (s *FavoriteService) Add(ctx context.Context, sessionID string, sweetID uint) error {
	sweet, err := s.sweetRepo.GetByID(sweetID)
	if err != nil {
		return err
	}
	if sweet == nil {
		return ErrSweetNotFound
	}

	ids, err := s.load(ctx, sessionID)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if id == sweetID {
			return nil
		}
	}
	return s.save(ctx, sessionID, append(ids, sweetID))
}

// Remove unmarks a favorite.
func (s *FavoriteService) Remove(ctx context.Context, sessionID string, sweetID uint) error {
	ids, err := s.load(ctx, sessionID)
	if err != nil {
		return err
	}
	next := ids[:0]
	for _, id := range ids {
		if id != sweetID {
			next = append(next, id)
		}
	}
	return s.save(ctx, sessionID, next)
}
