package postgres

import (
	"encoding/json"

	"beacon/internal/domain/entity"
	"beacon/internal/infra/persistence/model"

	"github.com/pkg/errors"
)

// fromNotificationDomain maps a domain notification to its persistence model.
func fromNotificationDomain(notification *entity.Notification) (*model.NotificationModel, error) {
	var contextJSON []byte
	if len(notification.Context) > 0 {
		var err error
		contextJSON, err = json.Marshal(notification.Context)
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal notification context")
		}
	}

	return &model.NotificationModel{
		ID:                notification.ID,
		RecipientID:       notification.RecipientID,
		Kind:              string(notification.Kind),
		Message:           notification.Message,
		MessageTranslated: notification.MessageTranslated,
		IsRead:            notification.IsRead,
		IsActive:          notification.IsActive,
		Delivered:         notification.Delivered,
		Context:           contextJSON,
		CreatedAt:         notification.CreatedAt,
	}, nil
}

// toNotificationDomain maps a persistence model back to a pure domain entity.
func toNotificationDomain(notificationM *model.NotificationModel) (*entity.Notification, error) {
	var context map[string]string
	if len(notificationM.Context) > 0 {
		if err := json.Unmarshal(notificationM.Context, &context); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal notification context")
		}
	}

	return &entity.Notification{
		ID:                notificationM.ID,
		RecipientID:       notificationM.RecipientID,
		Kind:              entity.NotificationKind(notificationM.Kind),
		Message:           notificationM.Message,
		MessageTranslated: notificationM.MessageTranslated,
		IsRead:            notificationM.IsRead,
		IsActive:          notificationM.IsActive,
		Delivered:         notificationM.Delivered,
		Context:           context,
		CreatedAt:         notificationM.CreatedAt,
	}, nil
}

// toProfileDomain maps a profile persistence model to its domain entity.
func toProfileDomain(profileM *model.UserProfileModel) *entity.UserProfile {
	return &entity.UserProfile{
		UserID:      profileM.UserID,
		DisplayName: profileM.DisplayName,
		LastOnline:  profileM.LastOnline,
		CreatedAt:   profileM.CreatedAt,
		UpdatedAt:   profileM.UpdatedAt,
	}
}
