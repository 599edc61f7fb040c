// Package client contains client-side building blocks for DraftKeeper.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) to talk
//     to the DraftKeeper backend: Ping, SaveDraft, LoadDraft, ClearDraft,
//     and PromoteDraft.
//  2. A concrete gRPC implementation (see GRPCClient) that manages a
//     connection, injects an access token via an interceptor, and maps gRPC
//     status codes to sentinel errors.
//  3. Local persistence bootstrap utilities (InitDatabase, RunMigrations) for
//     the CLI, wiring an SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match with
// errors.Is: ErrUnavailable, ErrUnauthorized, ErrForbidden, ErrRateLimited,
// ErrPayloadTooLarge, ErrLocalDataNotAvailable.
//
// Concurrency & Contexts
//
// Implementations should be safe for concurrent use unless stated otherwise.
// All operations accept context.Context and must honor cancellation/timeouts.
//
// See Also
//
//   - Interface:  Client
//   - gRPC impl:  GRPCClient
//   - DB helpers: InitDatabase, RunMigrations
package client
