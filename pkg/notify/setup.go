package notify

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"carecompanion.app/companion-service/pkg/common"
	"carecompanion.app/companion-service/pkg/config"
)

// BuildDeliverer assembles the deliverers listed in the configuration.
func BuildDeliverer(ctx context.Context, cfg *config.Config) (Deliverer, error) {
	var deliverers MultiDeliverer
	for _, name := range cfg.Deliverers {
		switch name {
		case "log":
			deliverers = append(deliverers, LogDeliverer{})
		case "fcm":
			fcm, err := NewFCMDeliverer(ctx, cfg.FirebaseCreds, cfg.FCMTopicPrefix)
			if err != nil {
				return nil, err
			}
			deliverers = append(deliverers, fcm)
		case "email":
			if cfg.SMTPHost == "" {
				return nil, fmt.Errorf("%s is required for the email deliverer", common.EnvKeySMTPHost)
			}
			deliverers = append(deliverers,
				NewEmailDeliverer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom))
		default:
			return nil, fmt.Errorf("unknown deliverer %q in %s", name, common.EnvKeyDeliverers)
		}
	}

	common.GetCategoryLogger(common.LoggerNameNotify, common.LoggerCategoryDelivery).
		Info("Deliverers configured", zap.Strings("deliverers", cfg.Deliverers))
	return deliverers, nil
}
