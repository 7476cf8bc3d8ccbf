package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/samzong/gmq/internal/ui"
)

// scissorsLine marks the start of the diff git appends with commit -v.
const scissorsLine = "# ------------------------ >8 ------------------------"

var errNoMessage = errors.New("no commit message given: pass it as an argument, with --file, or on stdin")

// readMessage resolves the message from --file, the arguments or piped
// stdin, in that order. "-" as the only argument forces stdin.
func readMessage(args []string, file string) (string, error) {
	switch {
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("failed to read message file: %w", err)
		}
		return normalizeMessage(stripComments(string(data))), nil
	case len(args) == 1 && args[0] == "-":
		return readStdin()
	case len(args) > 0:
		return normalizeMessage(strings.Join(args, " ")), nil
	}

	if ui.IsTerminal(inReader()) {
		return "", errNoMessage
	}
	return readStdin()
}

func readStdin() (string, error) {
	data, err := io.ReadAll(inReader())
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	msg := normalizeMessage(string(data))
	if strings.TrimSpace(msg) == "" {
		return "", errNoMessage
	}
	return msg, nil
}

// stripComments removes git comment lines and anything below the scissors
// line, as git does before recording the message.
func stripComments(message string) string {
	var kept []string
	for _, line := range strings.Split(message, "\n") {
		if strings.TrimRight(line, "\r") == scissorsLine {
			break
		}
		if strings.HasPrefix(line, "#") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

func normalizeMessage(message string) string {
	message = strings.ReplaceAll(message, "\r\n", "\n")
	return strings.TrimRight(message, "\n")
}

// openInput opens path, or stdin when path is empty or "-".
func openInput(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(inReader()), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	return f, nil
}
