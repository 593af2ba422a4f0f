// Package junos wraps the small set of Junos RPCs the subcommands need:
// device facts, reboot scheduling, process restarts, statistics queries and
// candidate-configuration operations.
package junos

// Session is the slice of the NETCONF session the RPC wrappers use.
// *device.NETCONFSession satisfies it; tests substitute a fake.
type Session interface {
	// Exec sends a raw RPC and returns the reply body.
	Exec(rpc string) (string, error)
	// Command runs an operational CLI command and returns its text output.
	Command(cmd string) (string, error)
}
