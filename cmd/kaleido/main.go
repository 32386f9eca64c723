// Command kaleido is the Kaleido language frontend CLI.
//
// Subcommands:
//
//	kaleido repl              interactive parse loop on stdin
//	kaleido run <file.kal>    parse a source file, reporting each construct
//	kaleido tokens <file.kal> dump the token stream as a table
//
// An optional --ops YAML file registers extra binary operators for repl and
// run (see package repl for the format).
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/metaphox/kaleido-lang/ast"
	"github.com/metaphox/kaleido-lang/lexer"
	"github.com/metaphox/kaleido-lang/parser"
	"github.com/metaphox/kaleido-lang/repl"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "kaleido",
		Short:        "Parse Kaleido source into an AST",
		SilenceUsage: true,
	}
	root.AddCommand(newReplCmd(), newRunCmd(), newTokensCmd())
	return root
}

// loadOps builds the session operator table: defaults plus whatever the
// --ops file registers.
func loadOps(path string) (parser.OpTable, error) {
	ops := parser.DefaultOps()
	if path == "" {
		return ops, nil
	}
	cfg, err := repl.LoadOpConfig(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Apply(ops); err != nil {
		return nil, err
	}
	return ops, nil
}

func newReplCmd() *cobra.Command {
	var opsFile string
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Interactive parse loop on stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, err := loadOps(opsFile)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			r := repl.NewWithOps(cmd.InOrStdin(), repl.LogHandler{W: out}, out, ops)
			r.SetPrompt("kaleido >>> ")
			r.Run()
			return nil
		},
	}
	cmd.Flags().StringVar(&opsFile, "ops", "", "YAML file registering extra binary operators")
	return cmd
}

func newRunCmd() *cobra.Command {
	var opsFile string
	cmd := &cobra.Command{
		Use:   "run <file.kal>",
		Short: "Parse a source file, reporting each top-level construct",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, err := loadOps(opsFile)
			if err != nil {
				return err
			}
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			out := cmd.OutOrStdout()
			r := repl.NewWithOps(f, repl.LogHandler{W: out}, out, ops)
			if failed := r.Run(); failed > 0 {
				return fmt.Errorf("%s: %d top-level construct(s) failed to parse", args[0], failed)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&opsFile, "ops", "", "YAML file registering extra binary operators")
	return cmd
}

func newTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <file.kal>",
		Short: "Dump the token stream of a source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Type", "Literal", "Value", "Line", "Col"})

			l := lexer.New(f)
			for {
				tok := l.NextToken()
				value := ""
				if tok.Type == ast.NUMBER {
					value = strconv.FormatFloat(tok.Value, 'g', -1, 64)
				}
				table.Append([]string{
					tok.Type.String(),
					tok.Literal,
					value,
					strconv.Itoa(tok.Line),
					strconv.Itoa(tok.Col),
				})
				if tok.Type == ast.EOF {
					break
				}
			}
			table.Render()
			return nil
		},
	}
}
