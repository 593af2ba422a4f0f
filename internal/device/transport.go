package device

import (
	"errors"
	"io"
	"net"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/ssh"
)

// Transport is an interactive SSH connection to a Junos device, with a PTY
// and a shell already requested. It carries the raw reader/writer pair the
// CLI session layers its prompt handling on top of.
type Transport struct {
	Addr     string
	Username string
	Password string
	Client   *ssh.Client
	Reader   io.Reader
	Writer   io.WriteCloser
	Timeout  time.Duration
}

// Ciphers accepted when negotiating with older Junos releases.
var ciphers = []string{
	"aes256-ctr", "aes128-ctr", "aes128-cbc", "3des-cbc",
	"aes192-ctr", "aes192-cbc", "aes256-cbc", "aes128-gcm@openssh.com",
}

// DefaultSSHPort is the port used for interactive CLI sessions.
const DefaultSSHPort = 22

// NewTransport prepares an SSH transport for the given device. The
// connection is not opened until Connect is called.
func NewTransport(host, username, password string, port int) *Transport {
	return &Transport{
		Addr:     net.JoinHostPort(host, strconv.Itoa(port)),
		Username: username,
		Password: password,
		Timeout:  6 * time.Second,
	}
}

// Connect dials the device and starts a shell over a PTY.
func (t *Transport) Connect() error {
	cfg := &ssh.ClientConfig{
		User: t.Username,
		Auth: []ssh.AuthMethod{
			ssh.Password(t.Password),
			ssh.KeyboardInteractive(interactiveCallback(t.Password)),
		},
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         t.Timeout,
	}
	cfg.Ciphers = append(cfg.Ciphers, ciphers...)

	client, err := ssh.Dial("tcp", t.Addr, cfg)
	if err != nil {
		return errors.New("failed to connect to device: " + err.Error())
	}
	t.Client = client

	session, err := client.NewSession()
	if err != nil {
		return errors.New("failed to start a new session: " + err.Error())
	}

	reader, _ := session.StdoutPipe()
	writer, _ := session.StdinPipe()
	t.Reader = reader
	t.Writer = writer

	modes := ssh.TerminalModes{
		ssh.ECHO:          1,
		ssh.TTY_OP_ISPEED: 14400,
		ssh.TTY_OP_OSPEED: 14400,
	}
	if err := session.RequestPty("xterm", 0, 200, modes); err != nil {
		return errors.New("failed to request pty: " + err.Error())
	}
	if err := session.Shell(); err != nil {
		return errors.New("failed to invoke shell: " + err.Error())
	}
	return nil
}

// Close tears down the SSH connection.
func (t *Transport) Close() {
	if t.Client == nil {
		return
	}
	if err := t.Client.Close(); err != nil {
		log.Warnf("device close failed: %v", err)
	}
}

// interactiveCallback answers every keyboard-interactive question with the
// login password. Some Junos builds only offer this auth method.
func interactiveCallback(password string) ssh.KeyboardInteractiveChallenge {
	return func(user, instruction string, questions []string, echos []bool) ([]string, error) {
		answers := make([]string, len(questions))
		for i := range questions {
			answers[i] = password
		}
		return answers, nil
	}
}
