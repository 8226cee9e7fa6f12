package timeparse_test

import (
	"testing"
	"time"

	"github.com/mikanfactory/cxline/internal/timeparse"
)

func TestParseResetsAt(t *testing.T) {
	now := time.Date(2025, 6, 22, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		value   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "unix seconds",
			value: "1750600800",
			want:  time.Unix(1750600800, 0),
		},
		{
			name:  "unix millis",
			value: "1750600800000",
			want:  time.UnixMilli(1750600800000),
		},
		{
			name:  "rfc3339",
			value: "2025-06-22T14:30:00Z",
			want:  time.Date(2025, 6, 22, 14, 30, 0, 0, time.UTC),
		},
		{
			name:  "relative minutes",
			value: "45m",
			want:  now.Add(45 * time.Minute),
		},
		{
			name:  "relative min suffix",
			value: "5min",
			want:  now.Add(5 * time.Minute),
		},
		{
			name:  "whitespace trimmed",
			value: "  1h  ",
			want:  now.Add(time.Hour),
		},
		{
			name:    "empty",
			value:   "",
			wantErr: true,
		},
		{
			name:    "negative duration",
			value:   "-5m",
			wantErr: true,
		},
		{
			name:    "garbage",
			value:   "soon",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := timeparse.ParseResetsAt(tt.value, now)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseResetsAt(%q) = %v, want error", tt.value, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseResetsAt(%q) unexpected error: %v", tt.value, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseResetsAt(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestFormatResetsAt(t *testing.T) {
	now := time.Date(2025, 6, 22, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"empty", "", ""},
		{"minutes", "45m", "in 45m"},
		{"hours and minutes", "1h30m", "in 1h30m"},
		{"whole hours", "2h", "in 2h"},
		{"seconds", "30s", "in 30s"},
		{"same day timestamp", "2025-06-22T14:30:00Z", "14:30"},
		{"other day timestamp", "2025-06-23T09:05:00Z", "Jun 23 09:05"},
		{"unix seconds", "1750600800", "14:00"},
		{"free text passes through", "tomorrow", "tomorrow"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := timeparse.FormatResetsAt(tt.value, now, time.UTC)
			if got != tt.want {
				t.Errorf("FormatResetsAt(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}
