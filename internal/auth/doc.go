// Package auth provides password hashing and session-token utilities for
// admin authentication.
//
// # Password Hashing
//
// Passwords are hashed with scrypt (N=16384, r=8, p=1) using a random
// 16-byte salt and a 64-byte derived key:
//
//	stored, err := auth.HashPassword(password)
//	ok := auth.VerifyPassword(password, stored)
//
// The stored form is hex(salt):hex(key). Verification never errors on
// malformed input and compares in constant time.
//
// # Session Tokens
//
// Session tokens are opaque 32-byte random values encoded as 64 hex
// characters. They carry no claims; validity lives entirely in the
// admin_sessions table.
//
// # Header Extraction
//
// ExtractSessionToken implements the auth contract shared with clients:
// X-Session-Token takes precedence, then Authorization with an optional
// Bearer prefix.
package auth
