// Package core provides the small set of shared domain types used across
// toolcheck:
//
//   - Content / Part (role-based transcript segments, including function
//     calls and function responses emitted by an agent)
//   - CallLimiter (a concurrency safe budget for external calls)
//
// Higher layers (toolcall, judge, model) build on these types so transcripts
// produced by an agent runtime can be evaluated without conversion glue.
package core
