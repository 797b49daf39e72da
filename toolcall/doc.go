// Package toolcall defines the tool invocation record model used by the
// correctness checks in package evaluation.
//
// A Record is an immutable value describing one invocation of a named tool:
// its name, description, the reasoning that led to the call, the input
// parameters and the output. Parameters and outputs are represented with
// Value, a tagged variant (null, bool, number, string, list, object) that
// accepts any JSON-shaped data while keeping equality well defined.
//
// Only the name and input parameters of a record form its match Key; the
// remaining fields are explanatory metadata.
//
// Usage:
//
//	search := toolcall.MustRecord(
//	  "search tool",
//	  "tool that searches the web for the latest information",
//	  "User asked for information outside my knowledge",
//	  map[string]toolcall.Value{"user_string": toolcall.String("what is today's date?")},
//	  toolcall.MustValue(map[string]any{"num_results": 5}),
//	)
//
// Records can also be extracted from an agent transcript with FromContents.
package toolcall
