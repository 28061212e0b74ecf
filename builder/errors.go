// SPDX-License-Identifier: MIT
// Package: euler/builder
//
// errors.go - sentinel errors for builder constructors.
//
// Constructors wrap these with "<Method>: ...: %w"; callers branch with
// errors.Is.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor's
// minimum, or a fixture larger than the graph it is applied to.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrTooFewEdges indicates a non-positive edge count for RandomEdges.
var ErrTooFewEdges = errors.New("builder: edge count too small")

// ErrNeedRandSource indicates a stochastic constructor ran without a
// random source (see WithSeed, WithRand, WithSource).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrUnknownParityPolicy indicates a ParityPolicy value or name that is not
// one of ParityNone, ParitySinglePass, ParityPairOdd.
var ErrUnknownParityPolicy = errors.New("builder: unknown parity policy")

// ErrConstructFailed indicates a constructor could not complete, e.g. a nil
// constructor or a rejected edge.
var ErrConstructFailed = errors.New("builder: construction failed")
