// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-nexus-keeper/internal/logger"
	"github.com/MKhiriev/go-nexus-keeper/internal/service"
	"github.com/MKhiriev/go-nexus-keeper/models"
)

// ReportFunc receives the outcome of every convergence pass.
type ReportFunc func(report models.ConvergeReport, err error)

// ConvergeWorker runs convergence passes on a fixed interval. Passes run on
// the caller's goroutine and never overlap; a failed pass is reported and the
// next one is still scheduled.
type ConvergeWorker struct {
	provision service.ProvisionService
	interval  time.Duration
	onReport  ReportFunc

	logger *logger.Logger
}

func NewConvergeWorker(provision service.ProvisionService, interval time.Duration, onReport ReportFunc, log *logger.Logger) *ConvergeWorker {
	return &ConvergeWorker{
		provision: provision,
		interval:  interval,
		onReport:  onReport,
		logger:    log,
	}
}

// Run converges immediately, then every interval until ctx is cancelled.
// A non-positive interval runs exactly one pass.
func (c *ConvergeWorker) Run(ctx context.Context) {
	c.converge(ctx)
	if c.interval <= 0 {
		return
	}

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			c.logger.Info().Msg("converge worker stopped")
			return
		case <-ticker.C:
			if ctx.Err() != nil {
				return
			}
			c.converge(ctx)
		}
	}
}

func (c *ConvergeWorker) converge(ctx context.Context) {
	start := time.Now()
	report, err := c.provision.Converge(ctx)
	if err != nil {
		c.logger.Err(err).Str("func", "ConvergeWorker.converge").Dur("duration", time.Since(start)).Msg("convergence pass failed")
	} else {
		c.logger.Info().
			Str("credential_set", string(report.CredentialSet)).
			Bool("password_rotated", report.PasswordRotated).
			Strs("created_repositories", report.CreatedRepositories).
			Dur("duration", time.Since(start)).
			Msg("convergence pass finished")
	}

	if c.onReport != nil {
		c.onReport(report, err)
	}
}
