// Package support drives support-bundle collection: RSI generation, log
// archiving, retrieval off the device and optional FTP upload.
package support

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/jlaffaye/ftp"
	log "github.com/sirupsen/logrus"

	"github.com/netopskit/junosctl/internal/device"
)

// RSI can take a very long time on loaded platforms; the original tooling
// allowed half an hour.
const rsiTimeout = 30 * time.Minute

// archiveTimeout bounds the log-archive step.
const archiveTimeout = 5 * time.Minute

// RSIPath is where the device saves the RSI output for a given hostname and
// date.
func RSIPath(hostname string, t time.Time) string {
	return fmt.Sprintf("/var/log/RSI-Support-%s-%s.txt", hostname, t.Format("2006-01-02"))
}

// ArchivePath is where the device writes the compressed log archive.
func ArchivePath(hostname string, t time.Time) string {
	return fmt.Sprintf("/var/tmp/Support-%s-%s.tgz", hostname, t.Format("2006-01-02"))
}

// Collector runs the support commands over an interactive CLI session.
type Collector struct {
	CLI      *device.CLISession
	Hostname string
	Now      time.Time
}

// GenerateRSI asks the device to save "request support information" output
// to /var/log. Returns the remote path.
func (c *Collector) GenerateRSI() (string, error) {
	remote := RSIPath(c.Hostname, c.Now)
	log.Infof("generating support information at %s (this can take up to %s)", remote, rsiTimeout)
	cmd := fmt.Sprintf("request support information | save %s", remote)
	if _, err := c.CLI.Run(cmd, rsiTimeout); err != nil {
		return "", fmt.Errorf("failed to generate RSI: %w", err)
	}
	return remote, nil
}

// ArchiveLogs compresses /var/log into a support archive. Returns the
// remote path.
func (c *Collector) ArchiveLogs() (string, error) {
	remote := ArchivePath(c.Hostname, c.Now)
	log.Infof("archiving logs to %s", remote)
	cmd := fmt.Sprintf("file archive compress source /var/log/* destination %s", remote)
	out, err := c.CLI.Run(cmd, archiveTimeout)
	if err != nil {
		return "", fmt.Errorf("failed to archive logs: %w", err)
	}
	if strings.Contains(strings.ToLower(out), "error") {
		return "", fmt.Errorf("device reported an archive error: %s", strings.TrimSpace(out))
	}
	return remote, nil
}

// Download copies the archive off the device into dir and returns the local
// path.
func (c *Collector) Download(remote, dir string) (string, error) {
	local := filepath.Join(dir, filepath.Base(remote))
	if err := c.CLI.Transport().Retrieve(remote, local); err != nil {
		return "", err
	}
	return local, nil
}

// FTPTarget is a parsed "host[:port]/dir" upload destination.
type FTPTarget struct {
	Addr string
	Dir  string
}

// ParseFTPTarget splits the "host[:port]/dir" form the CLI accepts. The
// directory part is optional; a missing port defaults to 21.
func ParseFTPTarget(s string) (FTPTarget, error) {
	s = strings.TrimPrefix(s, "ftp://")
	if s == "" {
		return FTPTarget{}, fmt.Errorf("empty FTP target")
	}

	host, dir := s, ""
	if i := strings.Index(s, "/"); i != -1 {
		host, dir = s[:i], strings.Trim(s[i:], "/")
	}
	if host == "" {
		return FTPTarget{}, fmt.Errorf("FTP target %q has no host", s)
	}
	if !strings.Contains(host, ":") {
		host += ":21"
	}
	return FTPTarget{Addr: host, Dir: dir}, nil
}

// Upload stores a local file on the FTP server.
func Upload(target FTPTarget, username, password, localPath string) error {
	conn, err := ftp.Dial(target.Addr, ftp.DialWithTimeout(10*time.Second))
	if err != nil {
		return fmt.Errorf("failed to connect to FTP server: %w", err)
	}
	defer conn.Quit()

	if err := conn.Login(username, password); err != nil {
		return fmt.Errorf("can't upload to FTP, check your credentials: %w", err)
	}

	f, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("can't find the archive file to upload to FTP: %w", err)
	}
	defer f.Close()

	remote := path.Base(localPath)
	if target.Dir != "" {
		remote = path.Join(target.Dir, remote)
	}
	log.Infof("uploading %s to ftp://%s/%s", localPath, target.Addr, remote)
	if err := conn.Stor(remote, f); err != nil {
		return fmt.Errorf("FTP upload failed: %w", err)
	}
	return nil
}
