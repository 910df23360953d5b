package app

import "strings"

// command is a slash command typed into the input
type command struct {
	Name string
	Arg  string
}

var commands = []struct {
	Name  string
	Usage string
	Help  string
}{
	{"personality", "/personality [name]", "Choose how the assistant talks"},
	{"agent", "/agent [name]", "Create the agent"},
	{"file", "/file [path]", "Select a PDF or DOCX document"},
	{"upload", "/upload", "Upload the selected document"},
	{"status", "/status", "Check the processing status of the upload"},
	{"copy", "/copy", "Copy the latest reply to the clipboard"},
	{"help", "/help", "Show this help"},
	{"quit", "/quit", "Exit application"},
}

// parseCommand splits a known slash command from its argument. Anything
// else is a chat message.
func parseCommand(input string) (command, bool) {
	input = strings.TrimSpace(input)

	if !strings.HasPrefix(input, "/") {
		return command{}, false
	}

	name, arg, _ := strings.Cut(input[1:], " ")

	for _, c := range commands {
		if c.Name == name {
			return command{
				Name: name,
				Arg:  strings.TrimSpace(arg),
			}, true
		}
	}

	return command{}, false
}
