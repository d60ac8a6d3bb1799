package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/lokalise/lokalise-mcp/internal/ui"
)

// verbs are the leading words of the flat command names.
var verbs = map[string]bool{
	"list": true, "get": true, "create": true, "update": true, "delete": true,
	"add": true, "remove": true, "bulk": true, "empty": true,
}

// suggestCorrectCommand checks whether the user split a command into words
// or wrote them in the wrong order and returns the corrected command line.
//
// Parameters:
//   - unknownCmd: The command that was not recognized by Cobra
//   - allArgs: All command line arguments (excluding program name)
//   - rootCmd: The root command whose subcommands are candidates
//
// Returns:
//   - string: The suggested command line, empty if none was found
//   - bool: True if a valid suggestion was found
//
// Example:
//
//	unknownCmd: "keys"
//	allArgs: ["keys", "list", "--project-id", "123"]
//	Returns: "lokalise-mcp list-keys --project-id 123", true
func suggestCorrectCommand(unknownCmd string, allArgs []string, rootCmd *cobra.Command) (string, bool) {
	unknownIdx := -1
	for i, arg := range allArgs {
		if arg == unknownCmd {
			unknownIdx = i
			break
		}
	}
	if unknownIdx == -1 {
		return "", false
	}

	// The first positional argument after the unknown word is the other
	// half of the command.
	nextIdx := -1
	for i := unknownIdx + 1; i < len(allArgs); i++ {
		if !strings.HasPrefix(allArgs[i], "-") {
			nextIdx = i
			break
		}
	}
	if nextIdx == -1 {
		return "", false
	}
	next := allArgs[nextIdx]

	verb, noun := unknownCmd, next
	if !verbs[verb] && verbs[noun] {
		verb, noun = noun, verb
	}

	name, ok := findCommand(rootCmd, verb, noun)
	if !ok {
		return "", false
	}

	parts := []string{rootCmd.Name()}
	parts = append(parts, allArgs[:unknownIdx]...)
	parts = append(parts, name)
	parts = append(parts, allArgs[unknownIdx+1:nextIdx]...)
	parts = append(parts, allArgs[nextIdx+1:]...)
	return strings.Join(parts, " "), true
}

// findCommand looks up verb-noun among the subcommands of root, accepting
// the singular or plural form of noun.
func findCommand(root *cobra.Command, verb, noun string) (string, bool) {
	noun = strings.ReplaceAll(noun, "_", "-")
	candidates := []string{verb + "-" + noun}
	if strings.HasSuffix(noun, "s") {
		candidates = append(candidates, verb+"-"+strings.TrimSuffix(noun, "s"))
	} else {
		candidates = append(candidates, verb+"-"+noun+"s")
	}

	for _, c := range candidates {
		for _, cmd := range root.Commands() {
			if cmd.Name() == c && !cmd.Hidden {
				return c, true
			}
		}
	}
	return "", false
}

// printCommandSuggestion prints a "did you mean" suggestion to the user.
//
// Parameters:
//   - suggestion: The suggested command string to display
func printCommandSuggestion(suggestion string) {
	ui.PrintInfo("Did you mean:")
	ui.PrintDim("  %s", suggestion)
}
