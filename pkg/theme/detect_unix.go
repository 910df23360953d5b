//go:build !windows

package theme

import (
	"os"
	"syscall"
	"time"

	"golang.org/x/term"
)

func queryTerminalBackground() bool {
	fd := int(os.Stdin.Fd())

	if !term.IsTerminal(fd) {
		return false
	}

	oldState, err := term.MakeRaw(fd)

	if err != nil {
		return false
	}

	defer term.Restore(fd, oldState)

	os.Stdout.WriteString("\x1b]11;?\x07")

	buf := make([]byte, 64)
	done := make(chan int, 1)

	go func() {
		n, _ := os.Stdin.Read(buf)
		done <- n
	}()

	var light bool

	select {
	case n := <-done:
		light = parseLuma(string(buf[:n])) > 0.5
	case <-time.After(100 * time.Millisecond):
	}

	// a late reply must not leak into the UI input
	syscall.SetNonblock(fd, true)

	drain := make([]byte, 64)

	for {
		if n, _ := syscall.Read(fd, drain); n <= 0 {
			break
		}
	}

	syscall.SetNonblock(fd, false)

	return light
}
