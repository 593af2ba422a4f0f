package junos

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestRebootRPC(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		opts    RebootOptions
		want    string
		wantErr bool
	}{
		{
			name: "immediate",
			opts: RebootOptions{},
			want: "<request-reboot/>",
		},
		{
			name: "at future time",
			opts: RebootOptions{At: time.Date(2026, 9, 1, 3, 0, 0, 0, time.UTC)},
			want: "<request-reboot><at>2609010300</at></request-reboot>",
		},
		{
			name: "in minutes",
			opts: RebootOptions{In: 40},
			want: "<request-reboot><in>40</in></request-reboot>",
		},
		{
			name:    "time in the past",
			opts:    RebootOptions{At: time.Date(2023, 3, 24, 3, 0, 0, 0, time.UTC)},
			wantErr: true,
		},
		{
			name:    "time equal to now",
			opts:    RebootOptions{At: now},
			wantErr: true,
		},
		{
			name:    "negative delay",
			opts:    RebootOptions{In: -5},
			wantErr: true,
		},
		{
			name: "both at and in",
			opts: RebootOptions{
				At: time.Date(2026, 9, 1, 3, 0, 0, 0, time.UTC),
				In: 10,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := rebootRPC(tt.opts, now)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got rpc %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("rpc = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRebootScheduledConflict(t *testing.T) {
	t.Parallel()

	s := &fakeSession{err: errors.New("error: another shutdown is running")}
	_, err := Reboot(s, RebootOptions{})
	if !errors.Is(err, ErrShutdownScheduled) {
		t.Fatalf("expected ErrShutdownScheduled, got %v", err)
	}
}

func TestRebootReturnsDeviceMessage(t *testing.T) {
	t.Parallel()

	s := &fakeSession{reply: "Shutdown NOW!\n"}
	got, err := Reboot(s, RebootOptions{In: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Shutdown NOW!" {
		t.Errorf("message = %q, want %q", got, "Shutdown NOW!")
	}
	if len(s.rpcs) != 1 || !strings.Contains(s.rpcs[0], "<in>5</in>") {
		t.Errorf("unexpected rpcs sent: %v", s.rpcs)
	}
}
