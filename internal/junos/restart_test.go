package junos

import (
	"errors"
	"strings"
	"testing"
)

func TestRestartProcessRPC(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		kill    bool
		wantRPC string
	}{
		{
			name:    "graceful",
			wantRPC: "<restart-daemon><daemon-name>firewall</daemon-name></restart-daemon>",
		},
		{
			name:    "immediate",
			kill:    true,
			wantRPC: "<restart-daemon><daemon-name>firewall</daemon-name><immediately/></restart-daemon>",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := &fakeSession{reply: "restarting"}
			if _, err := RestartProcess(s, "firewall", tt.kill); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(s.rpcs) != 1 || s.rpcs[0] != tt.wantRPC {
				t.Errorf("rpc = %v, want %q", s.rpcs, tt.wantRPC)
			}
		})
	}
}

func TestRestartProcessEscapesName(t *testing.T) {
	t.Parallel()

	s := &fakeSession{reply: "ok"}
	if _, err := RestartProcess(s, "routing</daemon-name><immediately/>&x", false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "<restart-daemon><daemon-name>routing&lt;/daemon-name&gt;&lt;immediately/&gt;&amp;x</daemon-name></restart-daemon>"
	if len(s.rpcs) != 1 || s.rpcs[0] != want {
		t.Errorf("rpc = %v, want %q", s.rpcs, want)
	}
}

func TestRestartErrorMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		rpcErr   string
		wantPart string
	}{
		{
			name:     "process not in use",
			rpcErr:   "error: subsystem not running",
			wantPart: "not in use on this system",
		},
		{
			name:     "unknown process",
			rpcErr:   "error: invalid daemon: frwall",
			wantPart: "does not exist on this system",
		},
		{
			name:     "other errors pass through",
			rpcErr:   "error: something else entirely",
			wantPart: "something else entirely",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := &fakeSession{err: errors.New(tt.rpcErr)}
			_, err := RestartProcess(s, "frwall", false)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantPart) {
				t.Errorf("error %q does not contain %q", err, tt.wantPart)
			}
		})
	}
}

func TestIsExpectedForwardingDrop(t *testing.T) {
	t.Parallel()

	if !IsExpectedForwardingDrop(ForwardingProcess, errors.New("unexpected EOF")) {
		t.Error("EOF during forwarding restart should be expected")
	}
	if IsExpectedForwardingDrop("firewall", errors.New("unexpected EOF")) {
		t.Error("EOF during firewall restart should not be expected")
	}
	if IsExpectedForwardingDrop(ForwardingProcess, nil) {
		t.Error("nil error should not be expected")
	}
}
