// Package dispatch maps operation names and positional argument lists
// onto the persistence operations, executing them either directly
// against a local store or through a remote caller. The set of exposed
// names and their argument order is identical on both paths, so callers
// stay transport-agnostic.
//
// Name resolution goes through a static registry built once at
// construction; an unknown name fails with *UnknownOpError before any
// store handle or network connection is created.
package dispatch
