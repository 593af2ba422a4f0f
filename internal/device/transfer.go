package device

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	scp "github.com/bramvdbogaerde/go-scp"
	"github.com/bramvdbogaerde/go-scp/auth"
	"github.com/pkg/sftp"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/ssh"
)

// newSFTPClient opens an SFTP subsystem on the existing SSH connection.
func (t *Transport) newSFTPClient() (*sftp.Client, error) {
	if t.Client == nil {
		return nil, errors.New("SSH connection is not established")
	}
	client, err := sftp.NewClient(t.Client)
	if err != nil {
		return nil, fmt.Errorf("failed to create SFTP client: %w", err)
	}
	return client, nil
}

// Retrieve downloads a file from the device over SFTP, falling back to SCP
// when the SFTP subsystem is unavailable. Junos disables SFTP unless
// "set system services ssh sftp-server" is configured.
func (t *Transport) Retrieve(remotePath, localPath string) error {
	client, err := t.newSFTPClient()
	if err != nil {
		log.Infof("SFTP unavailable (%v), falling back to SCP", err)
		return t.retrieveSCP(remotePath, localPath)
	}
	defer client.Close()

	remote, err := client.Open(remotePath)
	if err != nil {
		return fmt.Errorf("failed to open remote file %q: %w", remotePath, err)
	}
	defer remote.Close()

	local, err := os.Create(localPath)
	if err != nil {
		return fmt.Errorf("failed to create local file %q: %w", localPath, err)
	}
	defer local.Close()

	if _, err := io.Copy(local, remote); err != nil {
		log.Infof("SFTP copy failed (%v), falling back to SCP", err)
		return t.retrieveSCP(remotePath, localPath)
	}

	log.Infof("retrieved %q to %q", remotePath, localPath)
	return nil
}

// retrieveSCP downloads a file from the device over SCP on a fresh
// connection.
func (t *Transport) retrieveSCP(remotePath, localPath string) error {
	cfg, err := auth.PasswordKey(t.Username, t.Password, ssh.InsecureIgnoreHostKey())
	if err != nil {
		return fmt.Errorf("failed to create SSH config: %w", err)
	}

	client := scp.NewClient(t.Addr, &cfg)
	if err := client.Connect(); err != nil {
		return fmt.Errorf("failed to connect via SCP: %w", err)
	}
	defer client.Close()

	local, err := os.Create(localPath)
	if err != nil {
		return fmt.Errorf("failed to create local file %q: %w", localPath, err)
	}
	defer local.Close()

	if err := client.CopyFromRemote(context.Background(), local, remotePath); err != nil {
		return fmt.Errorf("failed to copy %q via SCP: %w", remotePath, err)
	}

	log.Infof("retrieved %q to %q via SCP", remotePath, localPath)
	return nil
}
