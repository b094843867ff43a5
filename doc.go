// Package docptr addresses, reads, mutates and deletes values inside nested
// trees of mappings, sequences and scalars using an extended pointer syntax:
// RFC 6901 paths plus a wildcard segment "*" that fans one operation out to
// every child at a level, an append segment "-" for sequence-tail insertion,
// and relative pointers resolved against a caller-supplied contextual root.
//
// Four operations share one traversal engine: GetAll and SetAll are strict,
// RemoveAll tolerates structural absence and is idempotent, and CopyAll
// combines a tolerant read of the source with strict writes into the target.
// Mutations across a wildcard fan-out are not transactional: a failing
// branch leaves earlier branches applied.
package docptr
