package junos

import (
	"encoding/xml"
	"errors"
	"fmt"
	"strings"
)

// Candidate-configuration actions used by the template pusher.
const (
	ActionMerge   = "merge"
	ActionReplace = "replace"
)

// ErrLocked reports that the candidate configuration could not be locked,
// usually because another user holds an exclusive lock.
var ErrLocked = errors.New("configuration cannot be locked, another user may hold an exclusive lock or have uncommitted changes")

// Diff returns the difference between the candidate and the last committed
// configuration, or "" when there are no pending changes.
func Diff(s Session) (string, error) {
	data, err := s.Exec(`<get-configuration compare="rollback" rollback="0" format="text"/>`)
	if err != nil {
		return "", fmt.Errorf("failed to compare configuration: %w", err)
	}
	diff := strings.TrimSpace(stripConfigurationOutput(data))
	return diff, nil
}

// LoadText loads text-format configuration into the candidate with the
// given action (merge or replace).
func LoadText(s Session, config, action string) error {
	if action != ActionMerge && action != ActionReplace {
		return fmt.Errorf("unsupported load action %q", action)
	}

	var rpc strings.Builder
	fmt.Fprintf(&rpc, `<load-configuration action="%s" format="text"><configuration-text>`, action)
	if err := xml.EscapeText(&rpc, []byte(config)); err != nil {
		return err
	}
	rpc.WriteString("</configuration-text></load-configuration>")

	if _, err := s.Exec(rpc.String()); err != nil {
		if strings.Contains(err.Error(), "configuration database locked") {
			return ErrLocked
		}
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	return nil
}

// Commit commits the candidate configuration.
func Commit(s Session) error {
	if _, err := s.Exec("<commit-configuration/>"); err != nil {
		return fmt.Errorf("commit failed: %w", err)
	}
	return nil
}

// CommitCheck validates the candidate configuration without committing it.
func CommitCheck(s Session) error {
	if _, err := s.Exec("<commit-configuration><check/></commit-configuration>"); err != nil {
		return fmt.Errorf("commit check failed: %w", err)
	}
	return nil
}

// Rollback discards pending candidate changes.
func Rollback(s Session) error {
	if _, err := s.Exec(`<load-configuration rollback="0"/>`); err != nil {
		return fmt.Errorf("rollback failed: %w", err)
	}
	return nil
}

// stripConfigurationOutput removes the <configuration-information> /
// <configuration-output> wrappers around a text-format diff.
func stripConfigurationOutput(data string) string {
	out := strings.TrimSpace(data)
	for _, tag := range []string{"configuration-information", "configuration-output"} {
		out = strings.TrimPrefix(out, "<"+tag+">")
		out = strings.TrimSuffix(out, "</"+tag+">")
		out = strings.TrimSpace(out)
	}
	return out
}
