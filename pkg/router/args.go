package router

import "strings"

// ParseArguments splits an argument remainder into individual tokens on
// whitespace runs. Commands that take positional arguments use this instead
// of re-splitting by hand.
func ParseArguments(args string) []string {
	return strings.Fields(args)
}
