package uninstall

import (
	"fmt"
	"strings"
)

// splitCommand splits a Windows uninstall string into executable and
// arguments, honoring double-quoted segments:
//
//	"C:\Package Cache\{guid}\dotnet-sdk.exe" /uninstall /quiet
//
// Quotes group, they are not kept in the output tokens.
func splitCommand(command string) (exe string, args []string, err error) {
	var tokens []string
	var current strings.Builder
	inQuotes := false

	for _, r := range command {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ' ' && !inQuotes:
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(r)
		}
	}
	if inQuotes {
		return "", nil, fmt.Errorf("unbalanced quotes in uninstall command %q", command)
	}
	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}
	if len(tokens) == 0 {
		return "", nil, fmt.Errorf("empty uninstall command")
	}

	return tokens[0], tokens[1:], nil
}
