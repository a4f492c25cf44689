package payload

import (
	"basepay/internal/core"

	"github.com/jellydator/validation"
)

type OrderUpdateRequest struct {
	Status       string `json:"status"`
	TrackingInfo string `json:"trackingInfo"`
	UserWallet   string `json:"userWallet"`
}

func (o OrderUpdateRequest) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.Status, validation.In(
			"pending", "confirmed", "ready", "shipped",
			"delivered", "disputed", "cancelled")),
	)
}

func (o OrderUpdateRequest) ToMessage() core.OrderUpdateMessage {
	return core.OrderUpdateMessage{
		UserWallet:   o.UserWallet,
		Status:       o.Status,
		TrackingInfo: o.TrackingInfo,
	}
}
