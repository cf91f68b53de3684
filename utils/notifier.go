package utils

import (
	"ilmhub/config"
	"log"
	"time"

	"github.com/go-resty/resty/v2"
)

// NotifyEnrollment posts an enrollment event to the external notification
// service. Best effort; the enrollment is already committed when this runs.
func NotifyEnrollment(userID, sectorID uint, reference string) {
	if config.AppConfig.NotifyWebhookURL == "" {
		return
	}

	client := resty.New().SetTimeout(10 * time.Second)

	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Api-Key", config.AppConfig.NotifyApiKey).
		SetBody(map[string]interface{}{
			"event":       "enrollment.created",
			"user_id":     userID,
			"sector_id":   sectorID,
			"reference":   reference,
			"occurred_at": time.Now().UTC().Format(time.RFC3339),
		}).
		Post(config.AppConfig.NotifyWebhookURL)
	if err != nil {
		log.Printf("Error posting enrollment event for user %d: %v", userID, err)
		return
	}
	if resp.IsError() {
		log.Printf("Notification service rejected enrollment event for user %d: %d", userID, resp.StatusCode())
	}
}
