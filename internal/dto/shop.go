package dto

import "github.com/SscSPs/sky_take_out/internal/core/domain"

// SetShopStatusRequest is bound from the /admin/shop/status/:status path.
type SetShopStatusRequest struct {
	Status int `uri:"status" binding:"oneof=0 1"`
}

// ShopStatusResponse reports whether the shop accepts orders.
type ShopStatusResponse struct {
	Status int    `json:"status" example:"1"`
	Label  string `json:"label" example:"open"`
}

// ToShopStatusResponse converts domain.ShopStatus to DTO.
func ToShopStatusResponse(s domain.ShopStatus) ShopStatusResponse {
	return ShopStatusResponse{Status: int(s), Label: s.String()}
}
