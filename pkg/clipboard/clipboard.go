package clipboard

import (
	"errors"
	"os/exec"
	"strings"
)

var ErrUnavailable = errors.New("no clipboard tool available")

// ReadText returns the text on the system clipboard.
func ReadText() (string, error) {
	return read(readCommands)
}

// WriteText replaces the system clipboard with text.
func WriteText(text string) error {
	return write(writeCommands, text)
}

// read runs the first available command and returns its output
func read(commands [][]string) (string, error) {
	for _, args := range commands {
		if _, err := exec.LookPath(args[0]); err != nil {
			continue
		}

		output, err := exec.Command(args[0], args[1:]...).Output()

		if err != nil {
			continue
		}

		return strings.TrimRight(string(output), "\r\n"), nil
	}

	return "", ErrUnavailable
}

// write pipes text into the first available command
func write(commands [][]string, text string) error {
	for _, args := range commands {
		if _, err := exec.LookPath(args[0]); err != nil {
			continue
		}

		cmd := exec.Command(args[0], args[1:]...)
		cmd.Stdin = strings.NewReader(text)

		if err := cmd.Run(); err != nil {
			continue
		}

		return nil
	}

	return ErrUnavailable
}
