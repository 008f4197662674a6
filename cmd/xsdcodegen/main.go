// Package main provides the CLI entrypoint for xsdcodegen.
//
// xsdcodegen compiles XML Schema (XSD) documents into Go type
// declarations:
//   - Parses a schema from a file or URL into a grammar model
//   - Resolves type, element, attribute and group references to a fixed point
//   - Renders the result as one gofmt-formatted Go source file
package main

import "os"

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
