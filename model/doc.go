// Package model defines the provider-agnostic abstractions used to talk to
// language models acting as evaluation judges.
//
// Core goals:
//   - Keep request/response shapes minimal and transport independent
//   - Normalize tool / function call representation (ToolDefinition, core.FunctionCall)
//   - Facilitate lightweight mocking for tests (MockModel)
//
// Providers (OpenAI, Anthropic) implement the Model interface in sub
// packages so the judge remains decoupled from vendor SDKs.
package model
