package cache

import (
	"testing"
	"time"
)

func TestTimeUntilNext(t *testing.T) {
	t.Parallel()

	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("failed to load America/New_York timezone: %v", err)
	}

	tests := []struct {
		name string
		now  time.Time
		hour int
		want time.Duration
	}{
		{
			name: "later today",
			now:  time.Date(2024, 3, 1, 9, 30, 0, 0, ny),
			hour: 18,
			want: 8*time.Hour + 30*time.Minute,
		},
		{
			name: "already passed rolls to tomorrow",
			now:  time.Date(2024, 3, 1, 19, 0, 0, 0, ny),
			hour: 18,
			want: 23 * time.Hour,
		},
		{
			name: "exactly at the hour waits a full day",
			now:  time.Date(2024, 3, 1, 18, 0, 0, 0, ny),
			hour: 18,
			want: 24 * time.Hour,
		},
		{
			name: "now in another zone is converted",
			now:  time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC), // 07:00 in New York
			hour: 8,
			want: time.Hour,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := TimeUntilNext(tt.now, tt.hour, ny); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestUntilDailyRefresh_AlwaysPositive(t *testing.T) {
	t.Parallel()

	ttl := UntilDailyRefresh(8, time.UTC)
	for i := 0; i < 10; i++ {
		d := ttl()
		if d <= 0 || d > 24*time.Hour {
			t.Errorf("iteration %d: expected duration in (0, 24h], got %v", i, d)
		}
	}
}
