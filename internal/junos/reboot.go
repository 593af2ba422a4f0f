package junos

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// junosAtFormat is the yymmddHHMM timestamp the request-reboot RPC expects.
const junosAtFormat = "0601021504"

// RebootOptions selects when the reboot happens. The zero value means
// reboot immediately. At and In are mutually exclusive.
type RebootOptions struct {
	// At is an absolute time to reboot at. Must be in the future.
	At time.Time
	// In is a delay before rebooting, in whole minutes. Must be >= 1 when
	// set.
	In int
}

// ErrShutdownScheduled reports that the device already has a reboot or
// shutdown pending.
var ErrShutdownScheduled = errors.New("unable to reboot, another reboot/shutdown has been scheduled")

// Reboot schedules a reboot and returns the device's confirmation message.
func Reboot(s Session, opts RebootOptions) (string, error) {
	rpc, err := rebootRPC(opts, time.Now())
	if err != nil {
		return "", err
	}

	data, err := s.Exec(rpc)
	if err != nil {
		if strings.Contains(err.Error(), "another shutdown is running") {
			return "", ErrShutdownScheduled
		}
		return "", err
	}
	return strings.TrimSpace(data), nil
}

// rebootRPC validates the options against the given current time and builds
// the request-reboot RPC.
func rebootRPC(opts RebootOptions, now time.Time) (string, error) {
	switch {
	case !opts.At.IsZero() && opts.In != 0:
		return "", errors.New("reboot time and delay are mutually exclusive")
	case !opts.At.IsZero():
		if !opts.At.After(now) {
			return "", fmt.Errorf("reboot time %s is in the past", opts.At.Format(time.RFC3339))
		}
		return fmt.Sprintf("<request-reboot><at>%s</at></request-reboot>", opts.At.Format(junosAtFormat)), nil
	case opts.In != 0:
		if opts.In < 1 {
			return "", errors.New("reboot delay must be a positive whole number of minutes")
		}
		return fmt.Sprintf("<request-reboot><in>%d</in></request-reboot>", opts.In), nil
	default:
		return "<request-reboot/>", nil
	}
}
