// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"
	"strings"
)

// validate checks the merged config. Each binary validates its own view
// ([ClientConfig.validate], [StructuredConfig.ValidateServer]), so nothing
// is required here.
func (cfg *StructuredConfig) validate() error {
	return nil
}

// ValidateServer checks the settings the sync server cannot start without.
func (cfg *StructuredConfig) ValidateServer() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.S3.Bucket != "" && cfg.Storage.S3.Region == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") || cfg.Storage.QuotaBytes < 0 {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress != "" {
		u, err := url.Parse(cfg.Adapter.HTTPAddress)
		if err != nil || u.Host == "" {
			return ErrInvalidAdapterConfigs
		}
		if cfg.Adapter.RequestTimeout <= 0 || cfg.Adapter.Token == "" {
			return ErrInvalidAdapterConfigs
		}
	}

	if cfg.Workers.SyncInterval <= 0 || cfg.Workers.ClipboardPollInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
