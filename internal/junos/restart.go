package junos

import (
	"encoding/xml"
	"fmt"
	"strings"
)

// ForwardingProcess is the process whose restart drops the management
// session on small platforms.
const ForwardingProcess = "forwarding"

// RestartProcess restarts a named Junos process. With kill set, the process
// is restarted immediately (SIGKILL) instead of gracefully (SIGTERM).
// Returns the device's confirmation output, which is empty for kill-style
// restarts.
func RestartProcess(s Session, process string, kill bool) (string, error) {
	var rpc strings.Builder
	rpc.WriteString("<restart-daemon><daemon-name>")
	if err := xml.EscapeText(&rpc, []byte(process)); err != nil {
		return "", fmt.Errorf("invalid process name %q: %w", process, err)
	}
	rpc.WriteString("</daemon-name>")
	if kill {
		rpc.WriteString("<immediately/>")
	}
	rpc.WriteString("</restart-daemon>")

	data, err := s.Exec(rpc.String())
	if err != nil {
		return "", classifyRestartError(process, err)
	}
	return strings.TrimSpace(data), nil
}

// classifyRestartError maps the common restart RPC failures to messages an
// operator can act on.
func classifyRestartError(process string, err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "subsystem not running"):
		return fmt.Errorf("the %s process cannot be restarted: it is not in use on this system", process)
	case strings.Contains(msg, "invalid daemon"):
		return fmt.Errorf("the %s process does not exist on this system, maybe it's typed incorrectly", process)
	default:
		return err
	}
}

// IsExpectedForwardingDrop reports whether an error is the connection loss
// that normally follows restarting the forwarding process.
func IsExpectedForwardingDrop(process string, err error) bool {
	if process != ForwardingProcess || err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "EOF") ||
		strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "closed")
}
