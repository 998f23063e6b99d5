// Package ai defines the answer-service abstraction used to optimize,
// review, and risk-check customer-support replies with a chat model.
//
// The package contains only interfaces, configuration, and shared errors.
// Concrete implementations live in subpackages: openai talks to any
// OpenAI-compatible chat API, mock provides test doubles.
package ai
