// Package cli provides the interactive DraftKeeper command-line client.
//
// It wires configuration, the local checkpoint queue, the gRPC API client,
// and an interactive REPL that supports online/offline operation. Typical
// flow: paste an access token, pick a draft, edit it, and let the sync
// engine deliver checkpoints in the background.
//
// Key features:
//   - Token entry (tokens are issued by the surrounding platform)
//   - Edit drafts field by field with debounced checkpointing
//   - Load / Discard / Promote drafts
//   - Offline editing with replay on reconnect
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
