//go:build windows

package clipboard

var readCommands = [][]string{
	{"powershell", "-NoProfile", "-Command", "Get-Clipboard"},
}

var writeCommands = [][]string{
	{"clip"},
}
