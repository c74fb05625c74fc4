// Package ai defines the provider-agnostic chat model contract: the
// [Provider] interface plus the request, response, message, and tool-calling
// types exchanged with a hosted language model. Concrete vendor
// implementations live in subpackages.
package ai
