package controller

import (
	"errors"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"triviaku_backend/internals/features/notifications/push/model"
	"triviaku_backend/internals/features/notifications/push/service"
	helper "triviaku_backend/internals/helpers"
)

type PushController struct {
	DB   *gorm.DB
	Push *service.PushService
}

func NewPushController(db *gorm.DB) *PushController {
	return &PushController{
		DB:   db,
		Push: service.NewPushService(db),
	}
}

var validate = validator.New()

type subscriptionKeys struct {
	P256dh string `json:"p256dh" validate:"required"`
	Auth   string `json:"auth" validate:"required"`
}

type subscribeRequest struct {
	Endpoint string           `json:"endpoint" validate:"required,url"`
	Keys     subscriptionKeys `json:"keys" validate:"required"`
}

type unsubscribeRequest struct {
	Endpoint string `json:"endpoint" validate:"required"`
}

type sendPushRequest struct {
	Title string `json:"title" validate:"required"`
	Body  string `json:"body" validate:"required"`
	URL   string `json:"url" validate:"omitempty,url"`
}

func currentUserID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals("user_id").(string)
	return uuid.Parse(raw)
}

// =============================
// 🔑 VAPID Public Key (publik, dipakai service worker)
// =============================
func (ctrl *PushController) GetVapidPublicKey(c *fiber.Ctx) error {
	key := ctrl.Push.VapidPublicKey()
	if key == "" {
		return helper.JsonError(c, fiber.StatusInternalServerError, "VAPID public key belum dikonfigurasi")
	}
	return helper.JsonOK(c, "OK", fiber.Map{"public_key": key})
}

// =============================
// ➕ Subscribe (upsert per endpoint)
// =============================
func (ctrl *PushController) Subscribe(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var body subscribeRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var existing model.PushSubscriptionModel
	err = ctrl.DB.WithContext(c.UserContext()).
		First(&existing, "push_subscription_endpoint = ?", body.Endpoint).Error
	switch {
	case err == nil:
		// endpoint sudah terdaftar, pindahkan kepemilikan kalau usernya beda
		if existing.PushSubscriptionUserID != userID {
			if err := ctrl.DB.WithContext(c.UserContext()).
				Model(&existing).
				Update("push_subscription_user_id", userID).Error; err != nil {
				return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan subscription")
			}
			existing.PushSubscriptionUserID = userID
		}
		return helper.JsonOK(c, "Subscription already exists", existing)

	case errors.Is(err, gorm.ErrRecordNotFound):
		sub := model.PushSubscriptionModel{
			PushSubscriptionUserID:   userID,
			PushSubscriptionEndpoint: body.Endpoint,
			PushSubscriptionP256dh:   body.Keys.P256dh,
			PushSubscriptionAuth:     body.Keys.Auth,
		}
		if err := ctrl.DB.WithContext(c.UserContext()).Create(&sub).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan subscription")
		}
		return helper.JsonCreated(c, "Subscription created successfully", sub)

	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan subscription")
	}
}

// =============================
// 🗑️ Unsubscribe (per endpoint, milik user sendiri)
// =============================
func (ctrl *PushController) Unsubscribe(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var body unsubscribeRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	res := ctrl.DB.WithContext(c.UserContext()).
		Delete(&model.PushSubscriptionModel{},
			"push_subscription_endpoint = ? AND push_subscription_user_id = ?",
			body.Endpoint, userID)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus subscription")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Subscription not found")
	}

	return helper.JsonDeleted(c, "Subscription deleted successfully", fiber.Map{
		"endpoint": body.Endpoint,
	})
}

// =============================
// 📋 Subscription Status (milik user sendiri)
// =============================
func (ctrl *PushController) GetSubscriptionStatus(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var subs []model.PushSubscriptionModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("push_subscription_user_id = ?", userID).
		Find(&subs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil status subscription")
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"subscribed":    len(subs) > 0,
		"subscriptions": subs,
	})
}

// =============================
// 📣 Send Push ke Semua (admin)
// =============================
func (ctrl *PushController) SendToAll(c *fiber.Ctx) error {
	var body sendPushRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	payload, err := sonic.Marshal(fiber.Map{
		"title": body.Title,
		"body":  body.Body,
		"url":   body.URL,
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyusun payload")
	}

	sent, failed, err := ctrl.Push.SendToAll(c.UserContext(), payload)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengirim push notification")
	}

	return helper.JsonOK(c, "Push notification dispatched", fiber.Map{
		"sent":   sent,
		"failed": failed,
	})
}
