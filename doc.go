// Package jfield reads typed, optional fields out of a parsed document
// tree without per-field presence and type checking boilerplate.
//
// # Usage
//
//	doc, err := load.File("config.json")
//	if err != nil {
//	    return err
//	}
//	port := jfield.Extract(doc, "port", int32(8080))
//	name := jfield.Extract(doc, "name", "default")
//	retries := jfield.ExtractNumeric(doc, "retries", int32(3)) // accepts "3" too
//
// Accessors are total: a missing field, a field of the wrong kind, and a
// string that does not coerce all fall back to the caller's default. They
// are pure, non-blocking and allocation-free, so they can sit inside hot
// loops.
//
// # Type selection
//
// The requested type is the type parameter, normally inferred from the
// default value. Beware untyped constant defaults: Extract(doc, "n", 0)
// instantiates int and reads the field through the signed 64-bit arm, not
// the 32-bit one. Pass a typed default or instantiate explicitly
// (Extract[int32](doc, "n", 0)) when a narrower width is intended.
//
// # Diagnostics
//
// With JFIELD_DEBUG_KIND=1, an extraction that finds a number of a
// different subkind than requested notes it on stderr; with
// JFIELD_DEBUG_RANGE=1, string coercion overflows are noted. Neither
// changes what is returned.
//
// # Related Packages
//
//   - github.com/jfield/jfield/ir - document tree
//   - github.com/jfield/jfield/load - JSON and YAML loaders
//   - github.com/jfield/jfield/numlit - permissive numeric literal parsing
//   - github.com/jfield/jfield/bitcast - same-width bit reinterpretation
package jfield
