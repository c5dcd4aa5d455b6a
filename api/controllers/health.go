package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/giftdash/giftdash-backend/api/responses"
	"github.com/giftdash/giftdash-backend/pkg/config"
	"github.com/giftdash/giftdash-backend/pkg/db"
	"github.com/giftdash/giftdash-backend/pkg/logger"
	"github.com/giftdash/giftdash-backend/pkg/redis"
	"github.com/giftdash/giftdash-backend/pkg/storage/gcs"
)

const readinessTimeout = 5 * time.Second

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-GiftDash-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings every backing dependency. Any failure flips the whole
// response to 503 so the load balancer stops routing here.
func HealthReady(cfg *config.Config, logg *logger.Logger, dbP db.Pinger, redisP redis.Pinger, gcsP gcs.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		w.Header().Set("X-GiftDash-Env", cfg.App.Env)

		checks := map[string]string{}
		healthy := true

		probe := func(name string, p interface {
			Ping(context.Context) error
		}) {
			if p == nil {
				checks[name] = "skipped"
				return
			}
			if err := p.Ping(ctx); err != nil {
				healthy = false
				checks[name] = "down"
				if logg != nil {
					pctx := logg.WithFields(ctx, map[string]any{"dependency": name, "error": err.Error()})
					logg.Warn(pctx, "readiness probe failed")
				}
				return
			}
			checks[name] = "up"
		}

		probe("database", dbP)
		probe("redis", redisP)
		probe("gcs", gcsP)

		status := http.StatusOK
		state := "ready"
		if !healthy {
			status = http.StatusServiceUnavailable
			state = "degraded"
		}
		responses.WriteSuccessStatus(w, status, map[string]any{
			"status": state,
			"checks": checks,
		})
	}
}
