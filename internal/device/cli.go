package device

import (
	"bufio"
	"fmt"
	"regexp"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

// CLISession is an interactive operational-mode session on a Junos device.
// It is the Go equivalent of opening "cli" over SSH: commands are written to
// the shell and output is collected until the prompt reappears.
type CLISession struct {
	transport *Transport

	// reader buffers the shell output across commands so nothing read
	// ahead of one command is lost before the next.
	reader *bufio.Reader

	// Prompt is the detected operational prompt, e.g. "admin@fw1>".
	Prompt string
}

// promptPattern matches a Junos operational prompt such as "admin@fw1>".
const promptPattern = `[\w\-\.@]+>`

var (
	promptRe = regexp.MustCompile(promptPattern)
	ansiRe   = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]|\x1b\[\?2004[lh]|\x1b\[\?25[hl]|\x1b\[\?12[hl]|\x1b\[\?7[hl]`)
)

// DialCLI opens an interactive CLI session and waits for the operational
// prompt.
func DialCLI(host, username, password string, port int) (*CLISession, error) {
	t := NewTransport(host, username, password, port)
	if err := t.Connect(); err != nil {
		return nil, err
	}

	s := &CLISession{
		transport: t,
		reader:    bufio.NewReaderSize(t.Reader, 64*1024),
	}
	prompt, err := s.findPrompt()
	if err != nil {
		t.Close()
		return nil, err
	}
	s.Prompt = prompt
	log.Debugf("detected prompt %q", prompt)
	return s, nil
}

// findPrompt reads the login banner until the operational prompt shows up.
func (s *CLISession) findPrompt() (string, error) {
	deadline := time.Now().Add(10 * time.Second)
	buf := make([]byte, 4096)
	var out string
	for time.Now().Before(deadline) {
		n, err := s.reader.Read(buf)
		if err != nil {
			return "", fmt.Errorf("failed to read login output: %w", err)
		}
		out += cleanChunk(string(buf[:n]))
		if m := promptRe.FindString(out); m != "" {
			return m, nil
		}
	}
	return "", fmt.Errorf("no operational prompt found in output: %q", out)
}

// Run executes one operational command and returns its output with the
// echoed command and trailing prompt removed. Output paging is disabled by
// appending "| no-more". The timeout bounds how long we wait for the prompt
// to come back; RSI generation needs this to be generous. A timed-out Run
// returns an error and leaves the session unusable for further commands.
func (s *CLISession) Run(command string, timeout time.Duration) (string, error) {
	if s.transport == nil {
		return "", fmt.Errorf("not connected, call DialCLI first")
	}

	outCh := make(chan string, 1)
	errCh := make(chan error, 1)
	go s.collectUntilPrompt(outCh, errCh)

	log.Debugf("sending command: %s", command)
	if _, err := fmt.Fprintf(s.transport.Writer, "%s | no-more\n", command); err != nil {
		return "", fmt.Errorf("failed to write command: %w", err)
	}

	select {
	case out := <-outCh:
		return trimEcho(out), nil
	case err := <-errCh:
		return "", fmt.Errorf("error reading device output: %w", err)
	case <-time.After(timeout):
		return "", fmt.Errorf("timed out after %s waiting for %q to finish", timeout, command)
	}
}

// collectUntilPrompt accumulates shell output and hands the completed text
// over outCh once the prompt appears on a line after the echoed command.
// The prompt line arrives without a trailing newline, so detection works on
// the accumulated text rather than complete lines.
func (s *CLISession) collectUntilPrompt(outCh chan<- string, errCh chan<- error) {
	buf := make([]byte, 64*1024)
	var b strings.Builder
	for {
		n, err := s.reader.Read(buf)
		if n > 0 {
			b.WriteString(cleanChunk(string(buf[:n])))
			text := b.String()
			lines := strings.Split(text, "\n")
			// The first line is the echoed command; the prompt counts
			// only once at least one full line has been consumed.
			if len(lines) > 1 && strings.Contains(lines[len(lines)-1], s.Prompt) {
				outCh <- text
				return
			}
		}
		if err != nil {
			errCh <- err
			return
		}
	}
}

// Close ends the session.
func (s *CLISession) Close() {
	if s.transport != nil {
		s.transport.Close()
	}
}

// Transport exposes the underlying SSH connection for file transfers.
func (s *CLISession) Transport() *Transport {
	return s.transport
}

// StripANSI removes terminal escape sequences from device output.
func StripANSI(s string) string {
	return ansiRe.ReplaceAllString(s, "")
}

// cleanChunk strips escape sequences and carriage returns from a raw read.
func cleanChunk(s string) string {
	return strings.ReplaceAll(StripANSI(s), "\r", "")
}

// trimEcho drops the echoed command line and the trailing prompt line from
// collected output.
func trimEcho(out string) string {
	lines := strings.Split(out, "\n")
	if len(lines) <= 2 {
		return ""
	}
	return strings.Join(lines[1:len(lines)-1], "\n")
}
