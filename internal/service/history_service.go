package service

import (
	"context"
	"fmt"
	"time"

	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/constants"
	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/kvstore"
	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/logger"
	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/models"
)

const historyTTL = 180 * 24 * time.Hour

// HistoryService keeps each session's order snapshots, newest first.
type HistoryService struct {
	store kvstore.Store
}

// NewHistoryService builds a history service.
func NewHistoryService(store kvstore.Store) *HistoryService {
	return &HistoryService{store: store}
}

// List returns the session's snapshots.
func (s *HistoryService) List(ctx context.Context, sessionID string) ([]models.OrderSnapshot, error) {
	var history []models.OrderSnapshot
	found, err := s.store.GetJSON(ctx, sessionID, constants.StoreKeyOrderHistory, &history)
	if err != nil {
		return nil, fmt.Errorf("load order history: %w", err)
	}
	if !found || history == nil {
		return []models.OrderSnapshot{}, nil
	}
	return history, nil
}

// Get returns one snapshot by id or order number.
func (s *HistoryService) Get(ctx context.Context, sessionID, ref string) (*models.OrderSnapshot, error) {
	history, err := s.List(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	for i := range history {
		if history[i].ID == ref || history[i].OrderNo == ref {
			return &history[i], nil
		}
	}
	return nil, ErrOrderNotFound
}

// Prepend pushes a snapshot to the front of the history. Store failures
// are logged and swallowed: a completed checkout never fails because
// history could not be written.
func (s *HistoryService) Prepend(ctx context.Context, sessionID string, snapshot models.OrderSnapshot) {
	history, err := s.List(ctx, sessionID)
	if err != nil {
		logger.Warnw("order_history_load_failed", "session_id", sessionID, "error", err)
		history = []models.OrderSnapshot{}
	}
	history = append([]models.OrderSnapshot{snapshot}, history...)
	if err := s.store.SetJSON(ctx, sessionID, constants.StoreKeyOrderHistory, history, historyTTL); err != nil {
		logger.Warnw("order_history_persist_failed", "session_id", sessionID, "order_no", snapshot.OrderNo, "error", err)
	}
}
