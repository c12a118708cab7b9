// Copyright 2026 The HOCON-Go Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command hocon is a small front end over this module's parser,
// resolver, and renderer: parse a document, resolve it, read a single
// path out of it, or re-render it. Grounded on cmd/cue/cmd's
// cobra.Command-per-subcommand layout (root.go, eval.go).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hocon.sh/go/config"
	"hocon.sh/go/herrors"
	"hocon.sh/go/parser"
	"hocon.sh/go/path"
	"hocon.sh/go/render"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "hocon",
		Short:         "parse, resolve, and query HOCON/JSON configuration files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newParseCmd(), newGetCmd(), newRenderCmd(), newValidateCmd())
	return root
}

func loadResolved(filename string, allowUnresolved bool) (*config.Config, error) {
	cfg, err := config.ParseFile(filename)
	if err != nil {
		return nil, err
	}
	return cfg.Resolve(config.ResolveOptions{
		UseSystemEnvironment: true,
		AllowUnresolved:      allowUnresolved,
	})
}

func newParseCmd() *cobra.Command {
	var allowUnresolved bool
	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "parse and resolve a document, printing it back as HOCON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadResolved(args[0], allowUnresolved)
			if err != nil {
				return err
			}
			out, err := cfg.Render(render.Options{Indent: 2})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().BoolVar(&allowUnresolved, "allow-unresolved", false, "leave unresolvable substitutions in place instead of failing")
	return cmd
}

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <file> <path>",
		Short: "print the string value at a dotted-key path",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadResolved(args[0], false)
			if err != nil {
				return err
			}
			s, err := cfg.GetString(args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}
	return cmd
}

func newRenderCmd() *cobra.Command {
	var asJSON bool
	var withComments bool
	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "re-render a document as JSON or HOCON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadResolved(args[0], false)
			if err != nil {
				return err
			}
			out, err := cfg.Render(render.Options{JSON: asJSON, Comments: withComments, Indent: 2})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "render strict JSON instead of HOCON")
	cmd.Flags().BoolVar(&withComments, "comments", false, "preserve attached comments (HOCON output only)")
	return cmd
}

func newValidateCmd() *cobra.Command {
	var restrict []string
	cmd := &cobra.Command{
		Use:   "validate <file> <reference-file>",
		Short: "check a document's shape against a reference document",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadResolved(args[0], false)
			if err != nil {
				return err
			}
			refCfg, err := config.ParseFile(args[1], parser.WithFlavor(parser.HOCON))
			if err != nil {
				return err
			}
			restrictPaths := make([]path.Path, len(restrict))
			for i, expr := range restrict {
				p, err := path.Parse(expr)
				if err != nil {
					return herrors.NewBadPath("%s", err.Error())
				}
				restrictPaths[i] = p
			}
			if err := cfg.CheckValid(refCfg, restrictPaths...); err != nil {
				if vf, ok := err.(*herrors.ValidationFailed); ok {
					for _, p := range vf.Problems {
						fmt.Fprintln(cmd.OutOrStdout(), p.String())
					}
					os.Exit(1)
				}
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "valid")
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&restrict, "restrict", nil, "only check the reference's subtree at this path (repeatable)")
	return cmd
}
