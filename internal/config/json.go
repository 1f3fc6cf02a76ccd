package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with snake_case JSON keys.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		Tier          string   `json:"tier"`
		Headless      bool     `json:"headless"`
		Version       string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Local struct {
			DSN        string `json:"dsn"`
			QuotaBytes int64  `json:"quota_bytes"`
		} `json:"local,omitempty"`

		S3 struct {
			Bucket          string `json:"bucket"`
			Region          string `json:"region"`
			Endpoint        string `json:"endpoint"`
			AccessKeyID     string `json:"access_key_id"`
			SecretAccessKey string `json:"secret_access_key"`
		} `json:"s3,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		Token          string   `json:"token"`
	} `json:"adapter,omitempty"`

	Workers struct {
		SyncInterval          Duration `json:"sync_interval"`
		ClipboardPollInterval Duration `json:"clipboard_poll_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var j StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&j); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:  j.App.TokenSignKey,
			TokenIssuer:   j.App.TokenIssuer,
			TokenDuration: time.Duration(j.App.TokenDuration),
			Tier:          j.App.Tier,
			Headless:      j.App.Headless,
			Version:       j.App.Version,
		},
		Storage: Storage{
			DB: DB{DSN: j.Storage.DB.DSN},
			Local: Local{
				DSN:        j.Storage.Local.DSN,
				QuotaBytes: j.Storage.Local.QuotaBytes,
			},
			S3: S3{
				Bucket:          j.Storage.S3.Bucket,
				Region:          j.Storage.S3.Region,
				Endpoint:        j.Storage.S3.Endpoint,
				AccessKeyID:     j.Storage.S3.AccessKeyID,
				SecretAccessKey: j.Storage.S3.SecretAccessKey,
			},
		},
		Server: Server{
			HTTPAddress:    j.Server.HTTPAddress,
			RequestTimeout: time.Duration(j.Server.RequestTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    j.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(j.Adapter.RequestTimeout),
			Token:          j.Adapter.Token,
		},
		Workers: Workers{
			SyncInterval:          time.Duration(j.Workers.SyncInterval),
			ClipboardPollInterval: time.Duration(j.Workers.ClipboardPollInterval),
		},
	}

	return cfg, nil
}

// Duration accepts either a Go duration string ("30s") or nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
