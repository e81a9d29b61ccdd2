package utils

import (
	"log"
	"time"

	"github.com/SacredMindInfotech/SacredMind-sub001/config"

	"github.com/go-resty/resty/v2"
)

// NotifyCatalogChanged tells the storefront that part of the catalog changed
// so it can revalidate its caches. Fire-and-forget: failures are logged, the
// catalog mutation has already been persisted.
func NotifyCatalogChanged(entity string, id uint) {
	url := config.AppConfig.StorefrontWebhookURL
	if url == "" {
		return
	}

	go func() {
		client := resty.New()
		client.SetTimeout(5 * time.Second)

		resp, err := client.R().
			SetHeader("Content-Type", "application/json").
			SetBody(map[string]interface{}{
				"entity": entity,
				"id":     id,
			}).
			Post(url)
		if err != nil {
			log.Printf("[WEBHOOK] Failed to notify storefront: %v", err)
			return
		}
		if resp.StatusCode() >= 300 {
			log.Printf("[WEBHOOK] Storefront responded with status %d", resp.StatusCode())
		}
	}()
}
