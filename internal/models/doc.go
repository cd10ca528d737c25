// Package models defines the core domain models for tipsplit.
//
// # Models
//
//   - Session: a tip form held by the server on behalf of one client
//
// The form itself (inputs and derived amounts) lives in package form; a
// Session only adds identity and timestamps around it.
//
// # Design Principles
//
// 1. **No persistence**: sessions live in memory and expire after a TTL
// 2. **Value semantics**: a Session carries a copy of the form, never a pointer into a store
// 3. **IDs as strings**: session IDs are UUID strings so they travel in tokens unchanged
package models
