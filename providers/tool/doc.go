// Package tool provides the generic typed tool abstraction used to expose Go
// functions to a tool-calling language model. A [Tool] pairs a handler
// function with reflection-derived JSON schemas; a [Catalog] stores tools for
// name-based dispatch during the conversation loop.
package tool
