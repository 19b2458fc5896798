// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-nexus-keeper/internal/logger"
	"github.com/go-resty/resty/v2"
)

// UserAgent is sent with every outbound request.
const UserAgent = "go-nexus-keeper"

// HTTPClient wraps resty.Client so callers get its full API while the
// package controls the defaults.
//
// Example usage:
//
//	client := utils.NewHTTPClient(log)
//	resp, err := client.R().Get("https://repo.example.com/nexus/service/local/status")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client with its own connection pool.
// Automatic retries are off; a rejected login surfaces on the first attempt.
// resty's own messages go to log instead of stderr.
func NewHTTPClient(log *logger.Logger) *HTTPClient {
	client := resty.New().
		SetHeader("User-Agent", UserAgent).
		SetRetryCount(0).
		SetLogger(restyLogger{log: log})

	return &HTTPClient{Client: client}
}

// restyLogger adapts [logger.Logger] to resty.Logger.
type restyLogger struct {
	log *logger.Logger
}

func (l restyLogger) Errorf(format string, v ...any) {
	l.log.Error().Str("component", "resty").Msg(restyMessage(format, v))
}

func (l restyLogger) Warnf(format string, v ...any) {
	l.log.Warn().Str("component", "resty").Msg(restyMessage(format, v))
}

func (l restyLogger) Debugf(format string, v ...any) {
	l.log.Debug().Str("component", "resty").Msg(restyMessage(format, v))
}

func restyMessage(format string, v []any) string {
	return strings.TrimSpace(fmt.Sprintf(format, v...))
}
