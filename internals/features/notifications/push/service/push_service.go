package service

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/SherClockHolmes/webpush-go"
	"gorm.io/gorm"

	"triviaku_backend/internals/configs"
	"triviaku_backend/internals/features/notifications/push/model"
)

var errSubscriptionGone = errors.New("push subscription gone")

type PushService struct {
	DB         *gorm.DB
	publicKey  string
	privateKey string
	subject    string
}

func NewPushService(db *gorm.DB) *PushService {
	if configs.VapidPublicKey == "" || configs.VapidPrivateKey == "" {
		log.Println("[WARN] VAPID keys belum di-set, push notification tidak akan jalan")
	}
	return &PushService{
		DB:         db,
		publicKey:  configs.VapidPublicKey,
		privateKey: configs.VapidPrivateKey,
		subject:    configs.VapidSubject,
	}
}

func (s *PushService) VapidPublicKey() string {
	return s.publicKey
}

// sendOne mengirim payload ke satu langganan.
// 404/410 dari push service artinya endpoint sudah mati: hapus barisnya.
func (s *PushService) sendOne(ctx context.Context, sub model.PushSubscriptionModel, payload []byte) error {
	resp, err := webpush.SendNotification(payload, &webpush.Subscription{
		Endpoint: sub.PushSubscriptionEndpoint,
		Keys: webpush.Keys{
			P256dh: sub.PushSubscriptionP256dh,
			Auth:   sub.PushSubscriptionAuth,
		},
	}, &webpush.Options{
		Subscriber:      s.subject,
		VAPIDPublicKey:  s.publicKey,
		VAPIDPrivateKey: s.privateKey,
		TTL:             60,
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == 404 || resp.StatusCode == 410 {
		if delErr := s.DB.WithContext(ctx).
			Delete(&model.PushSubscriptionModel{},
				"push_subscription_id = ?", sub.PushSubscriptionID).Error; delErr != nil {
			log.Printf("[ERROR] Gagal menghapus subscription mati %s: %v", sub.PushSubscriptionID, delErr)
		}
		return errSubscriptionGone
	}
	return nil
}

// SendToAll menyebar payload ke semua langganan secara paralel.
// Kegagalan per langganan tidak saling mengganggu.
func (s *PushService) SendToAll(ctx context.Context, payload []byte) (sent, failed int, err error) {
	var subs []model.PushSubscriptionModel
	if err := s.DB.WithContext(ctx).Find(&subs).Error; err != nil {
		return 0, 0, err
	}

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	for _, sub := range subs {
		wg.Add(1)
		go func(sub model.PushSubscriptionModel) {
			defer wg.Done()
			if sendErr := s.sendOne(ctx, sub, payload); sendErr != nil {
				log.Printf("[ERROR] Push ke %s gagal: %v", sub.PushSubscriptionEndpoint, sendErr)
				mu.Lock()
				failed++
				mu.Unlock()
				return
			}
			mu.Lock()
			sent++
			mu.Unlock()
		}(sub)
	}
	wg.Wait()

	log.Printf("[INFO] Push notification terkirim: %d sukses, %d gagal", sent, failed)
	return sent, failed, nil
}
