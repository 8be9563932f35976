package interpreter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPickFieldAliasConvergence(t *testing.T) {
	for _, key := range []string{"vehicle", "car", "auto"} {
		fields := map[string]string{key: "2019 Honda Civic"}
		got, ok := pickField(fields, "vehicle")
		assert.True(t, ok, "alias %q", key)
		assert.Equal(t, "2019 Honda Civic", got, "alias %q", key)
	}
}

func TestPickFieldSkipsEmptyValues(t *testing.T) {
	fields := map[string]string{"vehicle": "   ", "car": "2019 Civic"}
	got, ok := pickField(fields, "vehicle")
	assert.True(t, ok)
	assert.Equal(t, "2019 Civic", got)

	_, ok = pickField(map[string]string{}, "vehicle")
	assert.False(t, ok)
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"280", 280},
		{"$280", 280},
		{" $ 280 ", 280},
		{"1,250.50", 1250.50},
		{"-20", -20},
		{"280.5 total", 280.5},
		{"about 150 bucks", 150},
		{"", 0},
		{"free", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseAmount(tt.raw), "raw %q", tt.raw)
	}
}

func TestNormalizeDate(t *testing.T) {
	now := time.Date(2026, 3, 14, 23, 59, 0, 0, time.UTC)

	tests := []struct {
		raw  string
		want string
	}{
		{"2025-12-01", "2025-12-01"},
		{"2025/12/01", "2025-12-01"},
		{"12/01/2025", "2025-12-01"},
		{"1/2/2025", "2025-01-02"},
		{"Jan 2, 2025", "2025-01-02"},
		{"not a date", "2026-03-14"},
		{"", "2026-03-14"},
		{"2025-13-45", "2026-03-14"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeDate(tt.raw, now), "raw %q", tt.raw)
	}
}
