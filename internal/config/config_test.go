// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package config

import (
	"testing"
)

// configEnvVars lists every environment variable Load reads.
var configEnvVars = []string{
	"APP_HOST", "APP_PORT", "APP_ENV",
	"POSTGRES_HOST", "POSTGRES_PORT", "POSTGRES_USER", "POSTGRES_PASSWORD", "POSTGRES_DB",
	"VALKEY_HOST", "VALKEY_PORT", "VALKEY_PASSWORD",
	"S3_ENDPOINT", "S3_REGION", "S3_ACCESS_KEY", "S3_SECRET_KEY",
	"S3_BUCKET_PUBLIC", "S3_BUCKET_PRIVATE", "S3_PUBLIC_URL",
}

// clearConfigEnv blanks all config variables for the duration of the test.
// envOrDefault treats empty the same as unset, so defaults apply.
func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range configEnvVars {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	got := map[string]string{
		"Host":       cfg.Host,
		"Port":       cfg.Port,
		"Env":        cfg.Env,
		"DBHost":     cfg.DBHost,
		"DBPort":     cfg.DBPort,
		"DBUser":     cfg.DBUser,
		"DBPassword": cfg.DBPassword,
		"DBName":     cfg.DBName,
		"ValkeyHost": cfg.ValkeyHost,
		"ValkeyPort": cfg.ValkeyPort,
		"S3Region":   cfg.S3Region,
	}
	want := map[string]string{
		"Host":       "0.0.0.0",
		"Port":       "8080",
		"Env":        "development",
		"DBHost":     "localhost",
		"DBPort":     "5432",
		"DBUser":     "archfolio",
		"DBPassword": "changeme",
		"DBName":     "archfolio",
		"ValkeyHost": "localhost",
		"ValkeyPort": "6379",
		"S3Region":   "eu-central",
	}
	for k, w := range want {
		if got[k] != w {
			t.Errorf("%s: got %q, want %q", k, got[k], w)
		}
	}

	if !cfg.IsDev() {
		t.Error("IsDev() should be true for default environment")
	}
}

func TestLoad_ProductionGuard(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("APP_ENV", "production")

	if _, err := Load(); err == nil {
		t.Error("expected error for default DB password in production")
	}

	t.Setenv("POSTGRES_PASSWORD", "real-secret")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with password set: %v", err)
	}
	if cfg.IsDev() {
		t.Error("IsDev() should be false in production")
	}
}

func TestDSNAndAddr(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("POSTGRES_USER", "u")
	t.Setenv("POSTGRES_PASSWORD", "p")
	t.Setenv("POSTGRES_HOST", "db")
	t.Setenv("POSTGRES_PORT", "5433")
	t.Setenv("POSTGRES_DB", "sitedb")
	t.Setenv("APP_HOST", "127.0.0.1")
	t.Setenv("APP_PORT", "9000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load(): %v", err)
	}

	wantDSN := "postgres://u:p@db:5433/sitedb?sslmode=disable"
	if cfg.DSN() != wantDSN {
		t.Errorf("DSN(): got %q, want %q", cfg.DSN(), wantDSN)
	}
	if cfg.Addr() != "127.0.0.1:9000" {
		t.Errorf("Addr(): got %q, want %q", cfg.Addr(), "127.0.0.1:9000")
	}
}
