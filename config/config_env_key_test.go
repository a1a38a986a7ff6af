package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"secretKey": map[string]any{
			"access":          "",
			"accessTokenTTL":  "15m",
			"refreshTokenTTL": "168h",
		},
		"redis": map[string]any{
			"host": "localhost",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "SECRETKEY_ACCESSTOKENTTL", want: "secretKey.accessTokenTTL"},
		{envKey: "REDIS_HOST", want: "redis.host"},
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
