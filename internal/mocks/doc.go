// Package mocks provides in-memory mock implementations of the store and
// auth service interfaces for testing. Each mock offers overridable
// function fields for customized behavior plus a sensible default
// in-memory implementation.
package mocks
