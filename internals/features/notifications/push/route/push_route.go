package route

import (
	"triviaku_backend/internals/constants"
	pushController "triviaku_backend/internals/features/notifications/push/controller"
	authMiddleware "triviaku_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Langganan web-push. Public key terbuka, subscribe/unsubscribe butuh login,
// broadcast khusus admin.
func PushRoutes(api fiber.Router, db *gorm.DB) {
	pushCtrl := pushController.NewPushController(db)

	push := api.Group("/push")
	push.Get("/vapid-public-key", pushCtrl.GetVapidPublicKey)

	authed := push.Group("/", authMiddleware.AuthMiddleware(db))
	authed.Post("/subscribe", pushCtrl.Subscribe)
	authed.Delete("/unsubscribe", pushCtrl.Unsubscribe)
	authed.Get("/status", pushCtrl.GetSubscriptionStatus)

	admin := push.Group("/",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorAdmin("broadcast push notification"),
			constants.AdminOnly,
		),
	)
	admin.Post("/send", pushCtrl.SendToAll)
}
