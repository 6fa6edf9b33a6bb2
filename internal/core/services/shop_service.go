package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/SscSPs/sky_take_out/internal/apperrors"
	"github.com/SscSPs/sky_take_out/internal/core/domain"
	portssvc "github.com/SscSPs/sky_take_out/internal/core/ports/services"
	"github.com/SscSPs/sky_take_out/internal/platform/redis"
)

// ShopStatusKey is the Redis key holding the shop open flag.
const ShopStatusKey = "SHOP_STATUS"

type ShopService struct {
	BaseService
	redis *redis.Template
}

var _ portssvc.ShopSvc = (*ShopService)(nil)

func NewShopService(tpl *redis.Template) *ShopService {
	return &ShopService{redis: tpl}
}

// GetStatus returns the current shop status. A shop that was never opened is closed.
func (s *ShopService) GetStatus(ctx context.Context) (domain.ShopStatus, error) {
	raw, err := s.redis.Get(ctx, ShopStatusKey)
	if errors.Is(err, apperrors.ErrNotFound) {
		return domain.ShopClosed, nil
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to read shop status")
		return domain.ShopClosed, fmt.Errorf("failed to read shop status: %w", err)
	}

	n, err := strconv.Atoi(raw)
	status := domain.ShopStatus(n)
	if err != nil || !status.Valid() {
		s.GetLogger(ctx).Warn("Ignoring malformed shop status", slog.String("value", raw))
		return domain.ShopClosed, nil
	}
	return status, nil
}

func (s *ShopService) SetStatus(ctx context.Context, status domain.ShopStatus) error {
	if !status.Valid() {
		return fmt.Errorf("shop status %d: %w", int(status), apperrors.ErrValidation)
	}
	if err := s.redis.Set(ctx, ShopStatusKey, int(status), 0); err != nil {
		s.LogError(ctx, err, "Failed to set shop status", slog.String("status", status.String()))
		return fmt.Errorf("failed to set shop status: %w", err)
	}
	s.LogInfo(ctx, "Shop status changed", slog.String("status", status.String()))
	return nil
}
