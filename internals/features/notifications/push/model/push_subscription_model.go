package model

import (
	"time"

	"github.com/google/uuid"
)

// Satu langganan browser per endpoint. Endpoint unik, kalau browser
// re-subscribe dengan user lain, baris dipindah kepemilikannya.
type PushSubscriptionModel struct {
	PushSubscriptionID        uuid.UUID `gorm:"column:push_subscription_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"push_subscription_id"`
	PushSubscriptionUserID    uuid.UUID `gorm:"column:push_subscription_user_id;type:uuid;not null;index" json:"push_subscription_user_id"`
	PushSubscriptionEndpoint  string    `gorm:"column:push_subscription_endpoint;type:text;not null;uniqueIndex" json:"push_subscription_endpoint"`
	PushSubscriptionP256dh    string    `gorm:"column:push_subscription_p256dh;type:text;not null" json:"-"`
	PushSubscriptionAuth      string    `gorm:"column:push_subscription_auth;type:text;not null" json:"-"`
	PushSubscriptionCreatedAt time.Time `gorm:"column:push_subscription_created_at;autoCreateTime" json:"push_subscription_created_at"`
}

func (PushSubscriptionModel) TableName() string {
	return "push_subscriptions"
}
