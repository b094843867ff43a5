// Package ir provides the in-memory value tree addressed by the pointer
// engine: an ordered-key-preserving recursive representation of JSON-like
// documents, together with an order-preserving JSON codec and the in-place
// mutation helpers the traversal engine builds on.
package ir
