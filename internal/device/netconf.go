package device

import (
	"encoding/xml"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/Juniper/go-netconf/netconf"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/ssh"
)

// DefaultNETCONFPort is the standard port for NETCONF over SSH.
const DefaultNETCONFPort = 830

// NETCONFSession wraps a NETCONF-over-SSH session to a Junos device.
type NETCONFSession struct {
	session *netconf.Session

	// Target is the host:port the session is connected to.
	Target string
}

// DialNETCONF opens a NETCONF session using password authentication. The
// cipher list mirrors the interactive transport so older devices still
// negotiate.
func DialNETCONF(host, username, password string, port int, timeout time.Duration) (*NETCONFSession, error) {
	cfg := &ssh.ClientConfig{
		User: username,
		Auth: []ssh.AuthMethod{
			ssh.Password(password),
			ssh.KeyboardInteractive(interactiveCallback(password)),
		},
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         timeout,
	}
	cfg.Ciphers = append(cfg.Ciphers, ciphers...)

	target := net.JoinHostPort(host, strconv.Itoa(port))
	s, err := netconf.DialSSHTimeout(target, cfg, timeout)
	if err != nil {
		return nil, fmt.Errorf("failed to open NETCONF session to %s: %w", target, err)
	}
	log.Debugf("NETCONF session %d established to %s", s.SessionID, target)

	return &NETCONFSession{session: s, Target: target}, nil
}

// Exec sends a raw RPC and returns the reply body.
func (s *NETCONFSession) Exec(rpc string) (string, error) {
	reply, err := s.session.Exec(netconf.RawMethod(rpc))
	if err != nil {
		return "", err
	}
	return reply.Data, nil
}

// Command runs an operational CLI command over NETCONF and returns its text
// output, as if typed at the operational prompt.
func (s *NETCONFSession) Command(cmd string) (string, error) {
	var b strings.Builder
	b.WriteString(`<command format="text">`)
	if err := xml.EscapeText(&b, []byte(cmd)); err != nil {
		return "", err
	}
	b.WriteString(`</command>`)

	data, err := s.Exec(b.String())
	if err != nil {
		return "", err
	}
	return stripOutputTags(data), nil
}

// Close ends the NETCONF session.
func (s *NETCONFSession) Close() {
	if s.session != nil {
		s.session.Close()
	}
}

// stripOutputTags removes the <output> wrapper Junos puts around text-format
// command results.
func stripOutputTags(data string) string {
	out := strings.TrimSpace(data)
	out = strings.TrimPrefix(out, "<output>")
	out = strings.TrimSuffix(out, "</output>")
	return strings.Trim(out, "\n")
}
