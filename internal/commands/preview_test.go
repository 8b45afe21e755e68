package commands

import (
	"bytes"
	"testing"
	"time"

	"github.com/klabast/ledig-bane/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func previewConfig() *config.Config {
	return &config.Config{Timezone: "Europe/Oslo", MaxDaysAhead: 7}
}

// Tuesday 2024-03-05 10:30 Oslo time
var previewNow = time.Date(2024, 3, 5, 9, 30, 0, 0, time.UTC)

func TestPreviewToday(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runPreview(nil, previewConfig(), previewNow, &out))

	text := out.String()
	assert.Contains(t, text, "Ledige tider tirsdag 5. mars")
	assert.Contains(t, text, "Mølleparken")
	assert.Contains(t, text, "9 timer ledig")
	assert.Contains(t, text, "  ..#..#..##.#..#  07:00")
	assert.Contains(t, text, "  07:00-09:00  2 timer (forbi)")
	assert.Contains(t, text, "  10:00-12:00  2 timer (nå)")
	assert.Contains(t, text, "  17:00-18:00  1 time\n")
	assert.Contains(t, text, "av 4 baner")
	assert.Contains(t, text, "Ledig nå!")
}

func TestPreviewSingleVenue(t *testing.T) {
	var out bytes.Buffer
	err := runPreview([]string{"-venue", "molleparken"}, previewConfig(), previewNow, &out)
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "Totalt 9 timer på 1 av 1 baner")
	assert.Contains(t, text, "Mest ledig: Mølleparken")
	assert.NotContains(t, text, "Muselunden")
}

func TestPreviewFutureDate(t *testing.T) {
	var out bytes.Buffer
	err := runPreview([]string{"-date", "2024-03-09", "-venue", "molleparken"}, previewConfig(), previewNow, &out)
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "Ledige tider lørdag 9. mars")
	assert.Contains(t, text, "08:00\n")
	assert.NotContains(t, text, "(forbi)")
	assert.NotContains(t, text, "Ledig nå!")
}

func TestPreviewErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "Outside window", args: []string{"-date", "2024-03-20"}},
		{name: "Before today", args: []string{"-date", "2024-03-04"}},
		{name: "Bad date", args: []string{"-date", "5. mars"}},
		{name: "Unknown venue", args: []string{"-venue", "bislett"}},
		{name: "Unknown flag", args: []string{"-week"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			assert.Error(t, runPreview(tt.args, previewConfig(), previewNow, &out))
		})
	}
}
