// Package jptr parses the extended pointer syntax used to address values in
// a document tree: RFC 6901 segments plus a wildcard segment "*" that fans
// out to every child, an append segment "-" for sequence-tail insertion,
// relative pointers ("<count>[#]<remainder>") resolved against a contextual
// root pointer, and a trailing "#" modifier selecting key identity instead
// of value.
package jptr
