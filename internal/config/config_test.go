package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validConfig = `
[server]
http_port = 8083
read_timeout = 10
write_timeout = 10
idle_timeout = 60
shutdown_timeout = 15

[logs]
file = "logs/availability.log"
level = "info"

[metrics]
enabled = true

[database]
host = "localhost"
port = 5432
user = "availability"
password = "secret"
dbname = "availability"
sslmode = "disable"
max_open_conns = 10
max_idle_conns = 5
conn_max_lifetime = 300

[tenant_service]
url = "http://localhost:8081"
timeout = 5

[google_calendar]
credentials_file = "secrets/calendar-sa.json"
timeout = 10

[scheduling]
slot_duration_minutes = 30
min_booking_notice_minutes = 30
page_size = 9
max_scan_days = 30
`

func TestLoad(t *testing.T) {
	path := writeConfigFile(t, validConfig)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8083, cfg.Server.HTTPPort)
	assert.Equal(t, "logs/availability.log", cfg.Logs.File)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path, "default metrics path applied")
	assert.Equal(t, "availability-service", cfg.Metrics.ServiceName, "default service name applied")
	assert.Equal(t, 30, cfg.Scheduling.SlotDurationMinutes)
	assert.Equal(t, 1, cfg.Scheduling.MaxConcurrentBookings, "default capacity applied")
	assert.Contains(t, cfg.Database.DSN(), "host=localhost")
	assert.Contains(t, cfg.Database.DSN(), "dbname=availability")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate string
	}{
		{name: "missing port", mutate: "http_port = 8083"},
		{name: "missing log file", mutate: `file = "logs/availability.log"`},
		{name: "missing tenant service url", mutate: `url = "http://localhost:8081"`},
		{name: "missing calendar credentials", mutate: `credentials_file = "secrets/calendar-sa.json"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			broken := validConfig
			broken = replaceLine(broken, tt.mutate, "")
			path := writeConfigFile(t, broken)

			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func replaceLine(content, line, replacement string) string {
	out := ""
	for _, l := range splitLines(content) {
		if l == line {
			l = replacement
		}
		out += l + "\n"
	}
	return out
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}
