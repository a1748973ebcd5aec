// Package mmfile loads KWZ files into memory as a single immutable buffer,
// memory-mapping them where the platform allows.
package mmfile
