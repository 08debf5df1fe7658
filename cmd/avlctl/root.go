package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/avlkit/avl"
	"github.com/katalvlaran/avlkit/scenario"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// app carries what every subcommand shares.
type app struct {
	fs    afero.Fs
	log   logger
	quiet bool
}

func newRootCmd(fs afero.Fs) *cobra.Command {
	a := &app{fs: fs, log: nopLogger{}}

	root := &cobra.Command{
		Use:           "avlctl",
		Short:         "Drive AVL trees with literal key sequences",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if !a.quiet {
				a.log = newStdLogger(cmd.ErrOrStderr())
			}
		},
	}
	root.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "suppress progress messages")

	root.AddCommand(a.runCmd(), a.walkCmd(), a.showCmd(), a.exportCmd(), versionCmd())
	return root
}

func (a *app) runCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "run [file ...]",
		Short: "Run scenario files, or the built-in course scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			sc := scenario.Builtin()
			if len(args) > 0 {
				var err error
				if sc, err = scenario.LoadAll(a.fs, args...); err != nil {
					return err
				}
				a.log.Log("loaded %d scenarios from %d file(s)", len(sc), len(args))
			} else {
				a.log.Log("running %d built-in scenarios", len(sc))
			}

			results := scenario.RunAll(sc)
			printResults(cmd.OutOrStdout(), results, verbose)

			if failed := scenario.Failed(results); failed > 0 {
				return errors.Errorf("%d of %d scenarios failed", failed, len(results))
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print every traversal")

	return cmd
}

func printResults(w io.Writer, results []scenario.Result, verbose bool) {
	for _, r := range results {
		status := "PASS"
		if !r.OK() {
			status = "FAIL"
		}
		fmt.Fprintf(w, "%s %s\n", status, r.Name)

		if r.Invalid != nil {
			fmt.Fprintf(w, "  invalid: %v\n", r.Invalid)
		}
		for _, m := range r.Mismatches {
			fmt.Fprintf(w, "  %s\n", m)
		}
		if verbose {
			for _, o := range avl.Orders {
				fmt.Fprintf(w, "  %-5s %s\n", o, r.Traversals[o])
			}
			fmt.Fprintf(w, "  size  %d\n", r.Size)
		}
	}
	fmt.Fprintf(w, "%d passed, %d failed\n", len(results)-scenario.Failed(results), scenario.Failed(results))
}

func (a *app) walkCmd() *cobra.Command {
	var (
		order  string
		remove []int
	)
	cmd := &cobra.Command{
		Use:   "walk [flags] [--] key ...",
		Short: "Insert keys, remove --remove keys, print one traversal",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := avl.ParseOrder(order)
			if err != nil {
				return err
			}
			t, err := buildTree(args, remove)
			if err != nil {
				return err
			}
			seq, err := t.Traverse(o)
			if err != nil {
				return err
			}
			a.log.Log("%s-order walk over %d keys", o, t.Size())
			fmt.Fprintln(cmd.OutOrStdout(), scenario.Format(seq))

			return nil
		},
	}
	cmd.Flags().StringVarP(&order, "order", "o", avl.OrderPre.String(), "traversal order: pre, in, post or level")
	cmd.Flags().IntSliceVarP(&remove, "remove", "r", nil, "keys to remove after inserting")

	return cmd
}

func (a *app) showCmd() *cobra.Command {
	var remove []int
	cmd := &cobra.Command{
		Use:   "show [flags] [--] key ...",
		Short: "Draw the tree built from the keys",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := buildTree(args, remove)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if err := t.Fprint(w); err != nil {
				return errors.Wrap(err, "draw tree")
			}
			fmt.Fprintf(w, "size=%d height=%d\n", t.Size(), t.Height())

			return nil
		},
	}
	cmd.Flags().IntSliceVarP(&remove, "remove", "r", nil, "keys to remove after inserting")

	return cmd
}

func (a *app) exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export file",
		Short: "Write the built-in scenarios as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc := scenario.Builtin()
			if err := scenario.Save(a.fs, args[0], sc); err != nil {
				return err
			}
			a.log.Log("wrote %d scenarios to %s", len(sc), args[0])

			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the avlctl version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}

// buildTree inserts the integer keys in args, then removes the keys in remove.
func buildTree(args []string, remove []int) (*avl.Tree[int], error) {
	t := avl.New[int]()
	for _, s := range args {
		k, err := strconv.Atoi(s)
		if err != nil {
			return nil, errors.Wrapf(err, "key %q", s)
		}
		t.Insert(k)
	}
	for _, k := range remove {
		t.Remove(k)
	}

	return t, nil
}
