package main

import "strings"

// Options taking a value as the following word, if not given as --name=value.
var valueOptions = map[string]bool{
	"--config":   true,
	"--token":    true,
	"--url":      true,
	"--wire-log": true,
}

var commandNames = map[string]bool{
	"next":     true,
	"add":      true,
	"done":     true,
	"modify":   true,
	"edit":     true,
	"cat":      true,
	"show":     true,
	"annotate": true,
	"export":   true,
}

// splitArgs separates the options, which are parsed by cobra, from the words of the command. Only
// double-dash words are options; -tag is a filter or a modification.
func splitArgs(args []string) (options, words []string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "--") {
			words = append(words, arg)
			continue
		}
		options = append(options, arg)
		if valueOptions[strings.ReplaceAll(arg, "_", "-")] && i+1 < len(args) {
			i++
			options = append(options, args[i])
		}
	}
	return options, words
}

// splitCommand splits the words at the first command name. Without one, the command is next and
// all words are filters.
func splitCommand(words []string) (filters []string, command string, mods []string) {
	for i, w := range words {
		if commandNames[w] {
			return words[:i], w, words[i+1:]
		}
	}
	return words, "next", nil
}
