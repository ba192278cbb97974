package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromDefaults(t *testing.T) {
	cfg, err := LoadFrom(nil)
	require.NoError(t, err)

	assert.Equal(t, "mongodb://localhost:27017/dd_db", cfg.Mongo.URL())
	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFromMongoVariables(t *testing.T) {
	tests := []struct {
		name    string
		environ map[string]string
		want    string
	}{
		{
			name:    "partial override",
			environ: map[string]string{"DB_NAME": "testdb"},
			want:    "mongodb://localhost:27017/testdb",
		},
		{
			name: "all set",
			environ: map[string]string{
				"MONGO_HOST": "db1",
				"MONGO_PORT": "27018",
				"DB_NAME":    "prod",
			},
			want: "mongodb://db1:27018/prod",
		},
		{
			name: "empty values fall back to defaults",
			environ: map[string]string{
				"MONGO_HOST": "",
				"MONGO_PORT": "",
				"DB_NAME":    "",
			},
			want: "mongodb://localhost:27017/dd_db",
		},
		{
			name:    "malformed port is kept",
			environ: map[string]string{"MONGO_PORT": "abc"},
			want:    "mongodb://localhost:abc/dd_db",
		},
		{
			name:    "unrelated variables are ignored",
			environ: map[string]string{"MONGO_URI": "mongodb://elsewhere", "DB_HOST": "pg"},
			want:    "mongodb://localhost:27017/dd_db",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadFrom(tt.environ)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Mongo.URL())
		})
	}
}

func TestLoadFromIsIdempotent(t *testing.T) {
	environ := map[string]string{"MONGO_HOST": "db1", "DB_NAME": "prod"}

	first, err := LoadFrom(environ)
	require.NoError(t, err)
	second, err := LoadFrom(environ)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, first.Mongo.URL(), second.Mongo.URL())
}

func TestLoadFromPrefixedSections(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{
		"ENV":                   "dev",
		"HTTP_PORT":             "9090",
		"HTTP_SHUTDOWN_TIMEOUT": "2s",
		"LOG_LEVEL":             "debug",
		"LOG_FORMAT":            "json",
	})
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, ":9090", cfg.HTTP.Addr())
	assert.Equal(t, 2*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, "json", cfg.Log.SlogFormat())
}

func TestLoadFromInvalidHTTPPort(t *testing.T) {
	_, err := LoadFrom(map[string]string{"HTTP_PORT": "eighty"})
	assert.Error(t, err)
}

func TestLoadReadsProcessEnvironment(t *testing.T) {
	t.Setenv("MONGO_HOST", "db1")
	t.Setenv("MONGO_PORT", "27018")
	t.Setenv("DB_NAME", "prod")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "mongodb://db1:27018/prod", cfg.Mongo.URL())
}
