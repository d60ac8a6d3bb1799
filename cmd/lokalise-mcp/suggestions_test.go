package main

import (
	"testing"

	"github.com/spf13/cobra"
)

func createTestRootCmd() *cobra.Command {
	root := &cobra.Command{Use: "lokalise-mcp"}
	for _, name := range []string{"list-keys", "get-key", "list-projects", "create-task", "bulk-update-translations", "list-glossary-terms"} {
		root.AddCommand(&cobra.Command{Use: name})
	}
	return root
}

func TestSuggestCorrectCommand(t *testing.T) {
	rootCmd := createTestRootCmd()

	tests := []struct {
		name           string
		unknownCmd     string
		allArgs        []string
		wantSuggestion string
		wantFound      bool
	}{
		{
			name:           "noun before verb",
			unknownCmd:     "keys",
			allArgs:        []string{"keys", "list", "--project-id", "123"},
			wantSuggestion: "lokalise-mcp list-keys --project-id 123",
			wantFound:      true,
		},
		{
			name:           "verb and noun as separate words",
			unknownCmd:     "list",
			allArgs:        []string{"list", "projects"},
			wantSuggestion: "lokalise-mcp list-projects",
			wantFound:      true,
		},
		{
			name:           "singular noun",
			unknownCmd:     "list",
			allArgs:        []string{"--debug", "list", "key", "--limit", "5"},
			wantSuggestion: "lokalise-mcp --debug list-keys --limit 5",
			wantFound:      true,
		},
		{
			name:           "plural noun for singular command",
			unknownCmd:     "tasks",
			allArgs:        []string{"tasks", "create", "--title", "x"},
			wantSuggestion: "lokalise-mcp create-task --title x",
			wantFound:      true,
		},
		{
			name:           "compound noun with underscore",
			unknownCmd:     "list",
			allArgs:        []string{"list", "glossary_terms"},
			wantSuggestion: "lokalise-mcp list-glossary-terms",
			wantFound:      true,
		},
		{
			name:       "no second word",
			unknownCmd: "keys",
			allArgs:    []string{"keys", "--project-id", "123"},
			wantFound:  false,
		},
		{
			name:       "no matching command",
			unknownCmd: "list",
			allArgs:    []string{"list", "widgets"},
			wantFound:  false,
		},
		{
			name:       "unknown word not in args",
			unknownCmd: "open",
			allArgs:    []string{"list", "keys"},
			wantFound:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			suggestion, found := suggestCorrectCommand(tt.unknownCmd, tt.allArgs, rootCmd)
			if found != tt.wantFound {
				t.Errorf("suggestCorrectCommand() found = %v, want %v", found, tt.wantFound)
			}
			if suggestion != tt.wantSuggestion {
				t.Errorf("suggestCorrectCommand() suggestion = %q, want %q", suggestion, tt.wantSuggestion)
			}
		})
	}
}
