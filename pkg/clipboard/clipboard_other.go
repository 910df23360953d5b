//go:build !darwin && !linux && !windows

package clipboard

var readCommands [][]string

var writeCommands [][]string
