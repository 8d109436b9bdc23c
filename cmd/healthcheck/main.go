// Command healthcheck probes the service's /health endpoint and exits 0 when
// it answers 200. It is meant for container HEALTHCHECK directives.
package main

import (
	"context"
	"net/http"
	"os"

	"housing-price-service/internal/config"

	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HealthCheck.Timeout)
	defer cancel()

	if err := probe(ctx, http.DefaultClient, cfg.HealthCheck.URL); err != nil {
		log.WithError(err).WithField("url", cfg.HealthCheck.URL).Error("healthcheck failed")
		os.Exit(1)
	}
	log.WithField("url", cfg.HealthCheck.URL).Info("healthcheck passed")
}
