// Package meta holds the descriptive metadata types for form, table and
// hyperlink rendering: descriptors that store pointer strings as
// configuration and rely on the pointer engine to read and write the
// described entity properties. The package knows nothing about how forms
// or tables are drawn.
package meta
