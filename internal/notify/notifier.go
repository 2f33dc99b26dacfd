package notify

import (
	"context"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/nailsdg/salon-api/internal/models"
)

// Notifier resolves an Event to push tokens and delivers it. A missing
// or non-Expo token is not an error; the event is simply skipped.
type Notifier struct {
	db     *gorm.DB
	expo   *ExpoClient
	logger zerolog.Logger
}

func NewNotifier(db *gorm.DB, expo *ExpoClient, logger zerolog.Logger) *Notifier {
	return &Notifier{
		db:     db,
		expo:   expo,
		logger: logger.With().Str("component", "notifier").Logger(),
	}
}

func (n *Notifier) Deliver(ctx context.Context, ev Event) error {
	if ev.ToAdmins {
		return n.deliverToAdmins(ctx, ev)
	}
	return n.deliverToUser(ctx, ev.UserID, ev)
}

func (n *Notifier) deliverToUser(ctx context.Context, userID string, ev Event) error {
	var user models.User
	if err := n.db.WithContext(ctx).
		Select("id", "push_token").
		First(&user, "id = ?", userID).Error; err != nil {
		return err
	}

	if user.PushToken == nil || !IsExpoPushToken(*user.PushToken) {
		n.logger.Debug().Str("user_id", userID).Msg("no valid push token, skipping")
		return nil
	}

	return n.expo.Send(ctx, *user.PushToken, ev.Title, ev.Body, ev.Data)
}

func (n *Notifier) deliverToAdmins(ctx context.Context, ev Event) error {
	var admins []models.User
	if err := n.db.WithContext(ctx).
		Select("id", "push_token").
		Where("role = ?", models.RoleAdmin).
		Find(&admins).Error; err != nil {
		return err
	}

	for _, admin := range admins {
		if admin.PushToken == nil || !IsExpoPushToken(*admin.PushToken) {
			continue
		}
		if err := n.expo.Send(ctx, *admin.PushToken, ev.Title, ev.Body, ev.Data); err != nil {
			n.logger.Error().Err(err).Str("user_id", admin.ID).Msg("admin push failed")
		}
	}
	return nil
}
