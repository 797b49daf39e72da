// Package testutil contains helper builders used across tests to reduce
// boilerplate when constructing tool call records and agent transcripts.
// They are not intended for production usage.
package testutil
