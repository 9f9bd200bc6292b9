package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/portfolio-site/backend/config"
)

// DefaultPingInterval is how often the keepalive pings its own liveness
// endpoint. Free-tier hosts idle services out after ~15 minutes.
const DefaultPingInterval = 14 * time.Minute

// Keepalive periodically pings the service's own /health endpoint so that
// idle-shutdown hosts keep the process alive.
type Keepalive struct {
	url      string
	interval time.Duration
	client   *http.Client
}

func NewKeepalive(url string, interval time.Duration) *Keepalive {
	if interval <= 0 {
		interval = DefaultPingInterval
	}
	return &Keepalive{
		url:      url,
		interval: interval,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

// NewKeepaliveFromConfig returns a configured keepalive, or nil when
// PING_SELF is not enabled.
func NewKeepaliveFromConfig(c map[string]string) *Keepalive {
	if !config.GetBool(c, "PING_SELF", false) {
		return nil
	}

	url := config.GetString(c, "PING_URL", "")
	if url == "" {
		port := config.GetString(c, "PORT", "8080")
		url = fmt.Sprintf("http://localhost:%s/health", port)
	}

	interval := time.Duration(config.GetInt(c, "PING_INTERVAL_MINUTES", 14)) * time.Minute
	return NewKeepalive(url, interval)
}

// Run pings on every tick until the context is cancelled.
func (k *Keepalive) Run(ctx context.Context) {
	ticker := time.NewTicker(k.interval)
	defer ticker.Stop()

	log.Info().Str("url", k.url).Dur("interval", k.interval).Msg("Self-ping keepalive started")

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("Self-ping keepalive stopped")
			return
		case <-ticker.C:
			k.ping(ctx)
		}
	}
}

func (k *Keepalive) ping(ctx context.Context) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, k.url, nil)
	if err != nil {
		log.Error().Err(err).Msg("Self-ping request build failed")
		return
	}

	resp, err := k.client.Do(req)
	if err != nil {
		log.Error().Err(err).Msg("Self-ping failed")
		return
	}
	defer resp.Body.Close()

	log.Debug().Int("status", resp.StatusCode).Msg("Self-ping")
}
