package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"backend": map[string]any{
			"baseUrl":        "",
			"rateLimitRps":   0,
			"retryBaseDelay": "",
		},
		"redis": map[string]any{
			"catalogTtl": "",
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"directory": map[string]any{
			"defaultPageSize": 10,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "BACKEND_BASEURL", want: "backend.baseUrl"},
		{envKey: "BACKEND_RATELIMITRPS", want: "backend.rateLimitRps"},
		{envKey: "BACKEND_RETRYBASEDELAY", want: "backend.retryBaseDelay"},
		{envKey: "REDIS_CATALOGTTL", want: "redis.catalogTtl"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "DIRECTORY_DEFAULTPAGESIZE", want: "directory.defaultPageSize"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
		{envKey: "BACKEND__TIMEOUT", want: "backend.timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
