// Package handler implements HTTP request handlers for the portfolio API.
//
// This package provides the HTTP layer for the public site, the auth
// endpoints, and the admin content management API.
//
// # Handlers
//
// Handler serves three route groups registered via Register:
//
// Public routes deliver site content (profile, projects, offers,
// retainers, case studies, service pages, blog posts) and accept intake
// submissions (contact form, lead captures, analytics events).
//
// Auth routes issue and revoke opaque admin session tokens.
//
// Admin routes require a valid session and cover content CRUD, contact
// triage, analytics reporting, content export/import, and a live event
// stream (SSE).
//
// Middleware provides request logging, panic recovery, and CORS support.
//
// # API Design
//
// All handlers follow REST conventions:
// - GET for retrieval
// - POST for creation
// - PUT for updates
// - DELETE for removal
//
// Request bodies are validated before processing: strings are trimmed and
// length-capped, entity ids are slugs, and URLs and emails are checked.
//
// # Response Format
//
// Success responses return JSON data with appropriate status codes
// (200, 201). Error responses return JSON with an {error} structure.
//
// # Authentication
//
// Admin endpoints accept the session token in the X-Session-Token header
// or as an Authorization bearer value; EventSource clients may pass it
// as a token query parameter. Invalid or expired tokens yield 401 with
// no further detail.
package handler
