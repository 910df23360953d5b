//go:build windows

package theme

// OSC 11 is not answered reliably by Windows terminals.
func queryTerminalBackground() bool {
	return false
}
