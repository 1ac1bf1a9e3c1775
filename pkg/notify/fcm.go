package notify

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"carecompanion.app/companion-service/pkg/common"
)

const (
	DataKeyFCMToken    = "fcmToken"
	DataKeyElderlyID   = "elderlyId"
	DataKeyCaregiverID = "caregiverId"
	DataKeyEmail       = "email"
	DataKeyReminderID  = "reminderId"
	DataKeyAlertID     = "alertId"
)

type fcmSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// FCMDeliverer pushes through Firebase Cloud Messaging, either to the device token in the
// content data or to the per-elderly topic.
type FCMDeliverer struct {
	client      fcmSender
	topicPrefix string
}

func NewFCMDeliverer(ctx context.Context, credentialsPath, topicPrefix string) (*FCMDeliverer, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("firebase: error initializing app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase: error getting Messaging client: %w", err)
	}

	return &FCMDeliverer{client: client, topicPrefix: topicPrefix}, nil
}

func (f *FCMDeliverer) buildMessage(content Content) (*messaging.Message, error) {
	msg := &messaging.Message{
		Notification: &messaging.Notification{
			Title: content.Title,
			Body:  content.Body,
		},
		Data: content.Data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				ChannelID: "reminders",
				Sound:     "default",
			},
		},
		APNS: &messaging.APNSConfig{
			Headers: map[string]string{
				"apns-priority":  "10",
				"apns-push-type": "alert",
			},
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{Sound: "default"},
			},
		},
	}

	if token := content.Data[DataKeyFCMToken]; token != "" {
		msg.Token = token
		return msg, nil
	}
	if elderlyID := content.Data[DataKeyElderlyID]; elderlyID != "" {
		msg.Topic = f.topicPrefix + elderlyID
		return msg, nil
	}
	return nil, ErrNoRecipient
}

func (f *FCMDeliverer) Deliver(ctx context.Context, content Content) error {
	msg, err := f.buildMessage(content)
	if err != nil {
		return err
	}

	response, err := f.client.Send(ctx, msg)
	if err != nil {
		return fmt.Errorf("failed to send FCM message: %w", err)
	}

	common.GetCategoryLogger(common.LoggerNameNotify, common.LoggerCategoryDelivery).
		Info("FCM message sent", zap.String("response", response), zap.String("topic", msg.Topic))
	return nil
}
