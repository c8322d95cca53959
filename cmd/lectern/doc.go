// Package main hosts the Lectern CLI entrypoint and command graph.
//
// The Cobra command tree serves the browser viewer, builds decks headlessly,
// prints the lesson outline and export history, checks the content provider,
// and scaffolds configuration. Configuration is resolved once in the root
// command so subcommands only deal with their own output.
//
// Keep this package lean: behavior lives in the internal packages and is only
// wired together here.
package main
