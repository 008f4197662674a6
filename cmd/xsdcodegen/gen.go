package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	xmlschema "github.com/DRvader/xml-schema-sub000"
	"github.com/DRvader/xml-schema-sub000/internal/config"
	"github.com/DRvader/xml-schema-sub000/internal/gen"
)

func genCmd() *cobra.Command {
	var (
		configPath string
		pkgName    string
		output     string
		header     string
		noImports  bool
	)

	cmd := &cobra.Command{
		Use:   "gen <schema>",
		Short: "Generate Go types from a schema file or URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			settings := config.Default()

			if configPath != "" {
				loaded, err := config.LoadFile(configPath)
				if err != nil {
					return err
				}

				settings = loaded
			}

			// Flags override file settings.
			if pkgName != "" {
				settings.Package = pkgName
			}

			if output != "" {
				settings.Output = output
			}

			if header != "" {
				settings.Header = header
			}

			if noImports {
				off := false
				settings.ResolveImports = &off
			}

			return runGen(args[0], settings)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML settings file")
	cmd.Flags().StringVarP(&pkgName, "package", "p", "", "generated package name")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&header, "header", "", "comment line above the package clause")
	cmd.Flags().BoolVar(&noImports, "no-imports", false, "skip <import> resolution")

	return cmd
}

func runGen(location string, settings config.Generation) error {
	opts := xmlschema.CompileOptions{ResolveImports: settings.ImportsEnabled()}

	schema, err := xmlschema.CompileFile(location, opts)
	if err != nil {
		return fmt.Errorf("compiling %s: %w", location, err)
	}

	for _, msg := range schema.Diagnostics() {
		log.Warn(msg)
	}

	src, err := schema.Generate(xmlschema.GenerateConfig{
		Package: settings.Package,
		Header:  settings.Header,
	})
	if err != nil {
		return err
	}

	return gen.WriteFile(src, settings.Output)
}
