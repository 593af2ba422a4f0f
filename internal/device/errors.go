package device

import "strings"

// Describe turns a connection error into operator guidance. The underlying
// SSH and NETCONF libraries surface failures as strings, so classification
// is by substring.
func Describe(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "connection refused"):
		return "Connection refused.\n" +
			"Check SSH settings, including acceptable ciphers.\n" +
			"Check that NETCONF over SSH is enabled."
	case strings.Contains(msg, "i/o timeout") || strings.Contains(msg, "timed out"):
		return "Connection timed out.\n" +
			"Check that the hostname or IP address is correct.\n" +
			"Check that the device is responding to requests.\n" +
			"Is this a Junos device?"
	case strings.Contains(msg, "unable to authenticate") || strings.Contains(msg, "permission denied"):
		return "Authentication failed.\n" +
			"Check the username and password."
	case strings.Contains(msg, "no such host"):
		return "This host is unknown. Check your spelling."
	default:
		return "There was an error connecting to the device: " + msg
	}
}
