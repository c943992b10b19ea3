// Package repository defines the data access interface for the portfolio
// backend.
//
// The Repository interface is the single surface the HTTP layer talks to.
// The actual implementation lives in the sqlite subpackage.
//
// # SQLite Implementation
//
// The sqlite implementation provides a complete repository over one SQLite
// file in WAL mode. It handles:
//
// - CRUD operations for every content collection
// - JSON serialization of array-valued columns
// - Admin credentials, session issue/resolve/revoke, expired-session sweep
// - Idempotent schema creation, column backfill, and one-time seeding
// - A transactional replace-all for the social-link list
//
// # Not-found Semantics
//
// Lookups and updates targeting a missing row return (nil, nil); deletes
// return false. The HTTP layer translates these into 404 responses. Errors
// are reserved for storage failures.
//
// # Testing
//
// The sqlite repository is tested against in-memory databases, including
// migration idempotency and rollback behavior.
package repository
