package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/repository"
	"beacon/internal/domain/service"
	"beacon/internal/usecase"

	"github.com/google/uuid"
)

// kindTemplate describes how one notification kind renders its message.
// Placeholders of the form {key} are substituted from the event context.
type kindTemplate struct {
	required   []string
	message    string
	translated string
}

var kindTemplates = map[entity.NotificationKind]kindTemplate{
	entity.KindReview: {
		required:   []string{"sender_name", "game_title"},
		message:    "{sender_name} shared a review for {game_title}!",
		translated: "{sender_name} a distribuit o recenzie pentru {game_title}!",
	},
	entity.KindFollow: {
		required:   []string{"sender_name"},
		message:    "{sender_name} started following you!",
		translated: "{sender_name} a început să te urmărească!",
	},
	entity.KindFriendRequest: {
		required:   []string{"sender_name"},
		message:    "{sender_name} sent you a friend request!",
		translated: "{sender_name} ți-a trimis o cerere de prietenie!",
	},
	entity.KindMessage: {
		required:   []string{"sender_name"},
		message:    "You have a new message from {sender_name}!",
		translated: "Ai un mesaj nou de la {sender_name}!",
	},
	entity.KindChatMessage: {
		required:   []string{"sender_name"},
		message:    "New chat message from {sender_name}!",
		translated: "Mesaj nou în chat de la {sender_name}!",
	},
	entity.KindSharedGame: {
		required:   []string{"sender_name", "game_title"},
		message:    "{sender_name} shared {game_title} with you!",
		translated: "{sender_name} a distribuit {game_title} cu tine!",
	},
	entity.KindSharedGameList: {
		required:   []string{"sender_name"},
		message:    "{sender_name} shared a game list with you!",
		translated: "{sender_name} a distribuit o listă de jocuri cu tine!",
	},
	entity.KindSharedPoll: {
		required:   []string{"sender_name"},
		message:    "{sender_name} shared a poll with you!",
		translated: "{sender_name} a distribuit un sondaj cu tine!",
	},
}

func renderTemplate(tmpl string, context map[string]string) string {
	rendered := tmpl
	for key, value := range context {
		rendered = strings.ReplaceAll(rendered, "{"+key+"}", value)
	}

	return rendered
}

type dispatcherService struct {
	notificationRepo repository.NotificationRepository
	fabric           service.Fabric
	logger           *slog.Logger
}

// NewDispatcherService creates the notification dispatcher.
func NewDispatcherService(
	logger *slog.Logger,
	notificationRepo repository.NotificationRepository,
	fabric service.Fabric,
) usecase.NotificationDispatcher {
	return &dispatcherService{
		notificationRepo: notificationRepo,
		fabric:           fabric,
		logger:           logger,
	}
}

// Dispatch constructs and persists a notification for the event, then
// publishes its wire form on the recipient's notification topic. The publish
// step is best-effort: a dropped payload is compensated by catch-up delivery
// on the recipient's next connect.
func (s *dispatcherService) Dispatch(ctx context.Context, event usecase.DomainEvent) (*entity.Notification, error) {
	tmpl, ok := kindTemplates[event.Kind]
	if !ok {
		return nil, domainerrors.ErrUnknownNotificationKind.WithDetails(string(event.Kind))
	}

	for _, key := range tmpl.required {
		if event.Context[key] == "" {
			return nil, domainerrors.ErrMissingEventContext.WithDetails("missing context field: " + key)
		}
	}

	notification := &entity.Notification{
		ID:                uuid.New(),
		RecipientID:       event.RecipientID,
		Kind:              event.Kind,
		Message:           renderTemplate(tmpl.message, event.Context),
		MessageTranslated: renderTemplate(tmpl.translated, event.Context),
		IsRead:            false,
		IsActive:          true,
		Delivered:         false,
		Context:           event.Context,
		CreatedAt:         time.Now(),
	}

	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	s.publish(ctx, notification)

	return notification, nil
}

func (s *dispatcherService) publish(ctx context.Context, notification *entity.Notification) {
	payload, err := json.Marshal(service.PushFromNotification(notification))
	if err != nil {
		s.logger.Warn("Failed to marshal notification push",
			slog.String("notification_id", notification.ID.String()),
			slog.Any("error", err),
		)

		return
	}

	topic := service.NotificationTopic(notification.RecipientID)
	if err := s.fabric.Publish(ctx, topic, payload); err != nil {
		s.logger.Warn("Failed to publish notification, row remains for catch-up",
			slog.String("notification_id", notification.ID.String()),
			slog.String("topic", topic),
			slog.Any("error", err),
		)
	}
}
