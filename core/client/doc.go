// Package client implements the tool-calling conversation loop over an
// [ai.Provider]: it advertises registered tools, dispatches the model's tool
// calls through a catalog, feeds results back, and returns the final
// response. Provider calls pass through a configurable send middleware chain
// (see the middleware subpackage for logging and timeout implementations).
package client
