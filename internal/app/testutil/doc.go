// Package testutil provides test doubles and fixtures shared by the relay's
// package tests.
//
//   - MockProvider: testify mock of provider.Provider
//   - EchoProvider: deterministic provider that answers with its own input
//   - Fixtures: sample audio payloads in the shapes clients send them
package testutil
