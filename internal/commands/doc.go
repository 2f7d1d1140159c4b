// Package commands holds the chat command handlers. One command per file: the
// file name (without .go) is the command name, its capitalized form the
// handler type. registry_gen.go is produced by cmd/gencommands and must be
// regenerated whenever a command file is added, renamed or removed.
package commands

//go:generate go run discordapi/cmd/gencommands -dir . -out registry_gen.go
