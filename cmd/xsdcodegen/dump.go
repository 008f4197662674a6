package main

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/DRvader/xml-schema-sub000/internal/grammar"
	"github.com/DRvader/xml-schema-sub000/internal/source"
)

// dumpCmd parses a schema without resolving it and dumps the grammar
// model. Useful when the generated types do not look like the document.
func dumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <schema>",
		Short: "Parse a schema and dump its grammar model",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			data, err := source.Fetch(args[0])
			if err != nil {
				return err
			}

			schema, err := grammar.Parse(data)
			if err != nil {
				return fmt.Errorf("parsing %s: %w", args[0], err)
			}

			spew.Dump(schema)

			return nil
		},
	}
}
