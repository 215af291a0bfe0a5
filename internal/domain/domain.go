// Package domain holds cross-cutting domain constants and sentinel errors.
package domain

// KeyPrefix namespaces every key this service reads or writes in the store.
const KeyPrefix = "affinity:"
