package report

import (
	"bytes"
	"errors"
	"testing"
	"time"
)

func TestWriteRenderTime(t *testing.T) {
	tests := []struct {
		elapsed time.Duration
		want    string
	}{
		{0, "Render time: 0.000 seconds\n"},
		{1234567 * time.Microsecond, "Render time: 1.235 seconds\n"},
		{42 * time.Millisecond, "Render time: 0.042 seconds\n"},
		{5 * time.Second, "Render time: 5.000 seconds\n"},
		{1234567 * time.Millisecond, "Render time: 1234.567 seconds\n"},
		{12 * time.Hour, "Render time: 43200.000 seconds\n"},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		if err := WriteRenderTime(&buf, tt.elapsed); err != nil {
			t.Fatalf("WriteRenderTime(%v) = %v", tt.elapsed, err)
		}
		if got := buf.String(); got != tt.want {
			t.Errorf("WriteRenderTime(%v) = %q, want %q", tt.elapsed, got, tt.want)
		}
	}
}

func TestTime(t *testing.T) {
	d, err := Time(func() error {
		time.Sleep(2 * time.Millisecond)
		return nil
	})
	if err != nil {
		t.Fatalf("Time() error = %v", err)
	}
	if d < 2*time.Millisecond {
		t.Errorf("Time() = %v, want at least 2ms", d)
	}
}

func TestTimeError(t *testing.T) {
	boom := errors.New("boom")
	d, err := Time(func() error { return boom })
	if !errors.Is(err, boom) {
		t.Errorf("Time() error = %v, want %v", err, boom)
	}
	if d < 0 {
		t.Errorf("Time() = %v, want non-negative", d)
	}
}
