package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"dbName":  "plateful",
		},
		"session": map[string]any{
			"cookieName": "plateful_session",
		},
		"auth": map[string]any{
			"bcryptCost": 12,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_DBNAME", want: "postgres.dbName"},
		{envKey: "SESSION_COOKIENAME", want: "session.cookieName"},
		{envKey: "AUTH_BCRYPTCOST", want: "auth.bcryptCost"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	if cfg.Session.CookieName != defaultCookieName {
		t.Fatalf("cookie name = %q, want %q", cfg.Session.CookieName, defaultCookieName)
	}
	if cfg.Session.TTL != defaultSessionTTL {
		t.Fatalf("session ttl = %v, want %v", cfg.Session.TTL, defaultSessionTTL)
	}
	if cfg.HTTP.Timeouts.ReadTimeout != defaultHTTPTimeout {
		t.Fatalf("read timeout = %v, want %v", cfg.HTTP.Timeouts.ReadTimeout, defaultHTTPTimeout)
	}
}
