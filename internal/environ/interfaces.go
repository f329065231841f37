// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package environ abstracts the process environment behind injectable
// providers.
//
// Core concepts:
//   - Provider: read-only key lookup used by the override merge.
//   - Environment: a Provider that can also be written to (by .env loading)
//     and enumerated (by the env-format loader).
//
// [OS] talks to the real process environment. [Map] is an isolated,
// concurrency-safe in-memory environment, so tests and embedded callers
// never have to mutate process-wide state.
package environ

//go:generate mockgen -source=interfaces.go -destination=../mock/environ_mock.go -package=mock

// Provider looks up environment variables by exact name.
type Provider interface {
	// Lookup returns the value of the variable named key and whether it is set.
	// A variable set to the empty string is reported as present.
	Lookup(key string) (string, bool)
}

// Environment is a Provider that can be modified and enumerated.
type Environment interface {
	Provider

	// Set assigns value to the variable named key, replacing any previous value.
	Set(key, value string) error

	// Environ returns a snapshot of every variable. Modifying the returned map
	// does not affect the environment.
	Environ() map[string]string
}
