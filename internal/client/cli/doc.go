// Package cli provides the interactive goalline command-line client.
//
// It wires configuration, local session storage, the API client and the
// session into a REPL. Each browsing command fetches one listing, renders it
// as a plain-text table and accepts optional key=value filters:
//
//	matches team_id=T1 status=FT
//	teams country=England
//
// Errors are printed with the backend's message and never end the REPL.
// Nothing is retried: running the command again is the retry.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
