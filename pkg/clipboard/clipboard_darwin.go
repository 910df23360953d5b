//go:build darwin

package clipboard

var readCommands = [][]string{
	{"pbpaste"},
}

var writeCommands = [][]string{
	{"pbcopy"},
}
