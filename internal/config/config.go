package config

import (
	"fmt"
	"os"
	"strings"
)

// DefaultPath is where credentials are looked up when --config is not given:
// a config.txt in the working directory.
const DefaultPath = "config.txt"

// Credentials holds the three values required to log into the service.
type Credentials struct {
	Account  string
	Username string
	Password string
}

// Error marks a missing or malformed credentials file. The top-level
// handler maps it to its own exit code.
type Error struct {
	Path string
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("config file %s: %s", e.Path, e.Msg)
}

// Load reads a credentials file: exactly three newline-separated plaintext
// lines (account, username, password). An absent file or any empty line is
// fatal to the run.
func Load(path string) (Credentials, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Credentials{}, &Error{Path: path, Msg: "not found (expected three lines: account, username, password)"}
	}
	if err != nil {
		return Credentials{}, &Error{Path: path, Msg: err.Error()}
	}

	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	fields := make([]string, 0, 3)
	for _, l := range lines {
		fields = append(fields, strings.TrimSpace(l))
	}
	for len(fields) < 3 {
		fields = append(fields, "")
	}

	creds := Credentials{
		Account:  fields[0],
		Username: fields[1],
		Password: fields[2],
	}

	switch {
	case creds.Account == "":
		return Credentials{}, &Error{Path: path, Msg: "line 1 (account) is empty"}
	case creds.Username == "":
		return Credentials{}, &Error{Path: path, Msg: "line 2 (username) is empty"}
	case creds.Password == "":
		return Credentials{}, &Error{Path: path, Msg: "line 3 (password) is empty"}
	}
	return creds, nil
}
