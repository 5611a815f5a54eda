// Package load turns raw document bytes into ir.Node trees.
//
// # Usage
//
//	// Load a file; *.yaml and *.yml decode as YAML, the rest as JSON.
//	doc, err := load.File("config.json")
//
//	// Decode bytes directly.
//	doc, err := load.JSON([]byte(`{"a": 5}`))
//	doc, err := load.YAML([]byte("a: 5"))
//
// File reads are unbuffered byte streams behind a fixed 64KiB buffer, not
// line-oriented text. Number subkinds survive decoding: 5 arrives as an
// integer-stored number, 5.0 as a float-stored one.
//
// # Related Packages
//
//   - github.com/jfield/jfield/ir - document tree
//   - github.com/jfield/jfield - typed field accessors over the tree
package load
