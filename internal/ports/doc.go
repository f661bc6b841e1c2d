// Package ports defines the interfaces that connect the command layer
// to infrastructure adapters.
//
// The command layer and the sync orchestration depend only on these
// interfaces. Adapters in internal/adapters implement them with
// concrete transports, which keeps the HTTP plumbing injectable in
// tests.
package ports
