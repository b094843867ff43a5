// Package schema is a thin orchestration layer around an external
// JSON-Schema validation routine. It keeps a registry of named schema
// documents and resolves "$ref" strings to nested sub-definitions using the
// pointer engine, so the external routine always sees fully located
// definitions. It enforces nothing itself.
package schema
