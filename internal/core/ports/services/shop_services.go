package services

import (
	"context"

	"github.com/SscSPs/sky_take_out/internal/core/domain"
)

// ShopSvc reads and changes whether the shop accepts orders.
type ShopSvc interface {
	GetStatus(ctx context.Context) (domain.ShopStatus, error)
	SetStatus(ctx context.Context, status domain.ShopStatus) error
}
