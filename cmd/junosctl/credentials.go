package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// promptCredentials asks for a username and a hidden password on the
// terminal. The label distinguishes device and FTP prompts. Blank values
// are rejected; there is no anonymous access to either.
func promptCredentials(label, username string) (string, string, error) {
	fmt.Printf("Please provide %s credentials\n", label)

	if username == "" {
		fmt.Print("Username: ")
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil {
			return "", "", fmt.Errorf("failed to read username: %w", err)
		}
		username = strings.TrimSpace(line)
	}
	if username == "" {
		return "", "", fmt.Errorf("you can't have a blank username")
	}

	fmt.Print("Password: ")
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", "", fmt.Errorf("failed to read password: %w", err)
	}
	password := string(raw)
	if password == "" {
		return "", "", fmt.Errorf("you can't have a blank password")
	}
	return username, password, nil
}
