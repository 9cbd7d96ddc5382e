// Command bstviz animates a binary search tree operation in the
// terminal: it builds a tree, runs one operation against it, and
// prints (or plays back) the resulting frame sequence.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"go.lepak.sg/bstviz/anim"
	"go.lepak.sg/bstviz/layout"
	"go.lepak.sg/bstviz/playback"
	"go.lepak.sg/bstviz/tree/bst"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	values   []int
	play     bool
	interval time.Duration
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "bstviz <operation> [value]",
		Short: "Animate a binary search tree operation",
		Long: `bstviz builds a binary search tree from --values, runs one operation
against it, and shows the animation frames the operation produces.

Operations taking a value: insert, search, remove.
Operations taking none:    min, max, inorder, preorder, postorder.`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}

	cmd.Flags().IntSliceVar(&opts.values, "values",
		[]int{15, 6, 23, 4, 7, 20, 50},
		"keys inserted in order before the operation runs")
	cmd.Flags().BoolVar(&opts.play, "play", false,
		"play the frames back over time instead of printing a table")
	cmd.Flags().DurationVar(&opts.interval, "interval", 500*time.Millisecond,
		"delay between frames with --play")

	return cmd
}

func run(cmd *cobra.Command, opts options, args []string) error {
	op := args[0]

	var arg int
	switch op {
	case "insert", "search", "remove":
		if len(args) != 2 {
			return fmt.Errorf("%s needs a value", op)
		}
		var err error
		arg, err = strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("bad value %q: %w", args[1], err)
		}
	case "min", "max", "inorder", "preorder", "postorder":
		if len(args) != 1 {
			return fmt.Errorf("%s takes no value", op)
		}
	default:
		return fmt.Errorf("unknown operation %q", op)
	}

	out := cmd.OutOrStdout()

	tr, dups := bst.FromValues(opts.values...)
	if len(dups) != 0 {
		fmt.Fprintf(out, "ignored duplicate --values entries: %v\n", dups)
	}

	var (
		frames  []anim.Frame[int]
		message string
	)

	switch op {
	case "insert":
		res := tr.Insert(arg)
		// layout after the mutation so the new key has a coordinate
		lookup := layout.Grid(tr)
		var hl *int
		if res.OK {
			hl = &arg
		}
		frames = anim.FromPath(res.Path, lookup, hl)
		message = res.Message
	case "remove":
		// layout before the mutation: the animation replays the
		// descent on the tree as it was
		lookup := layout.Grid(tr)
		res := tr.Remove(arg)
		frames = anim.FromPath(res.Path, lookup, nil)
		message = res.Message
	case "search":
		lookup := layout.Grid(tr)
		res := tr.Search(arg)
		var hl *int
		if res.OK {
			hl = &arg
		}
		frames = anim.FromPath(res.Path, lookup, hl)
		message = res.Message
	case "min", "max":
		lookup := layout.Grid(tr)
		res := tr.FindMin()
		if op == "max" {
			res = tr.FindMax()
		}
		var hl *int
		if res.OK {
			hl = &res.Value
		}
		frames = anim.FromPath(res.Path, lookup, hl)
		message = res.Message
	case "inorder", "preorder", "postorder":
		lookup := layout.Grid(tr)
		var res bst.DetailedResult[int]
		switch op {
		case "inorder":
			res = tr.InOrderDetailed()
		case "preorder":
			res = tr.PreOrderDetailed()
		case "postorder":
			res = tr.PostOrderDetailed()
		}
		frames = anim.FromEvents(res.Steps, lookup)
		message = fmt.Sprintf("%s; values: %v", res.Message, res.Values)
	}

	if s := tr.String(); s != "" {
		fmt.Fprint(out, s)
	}
	fmt.Fprintln(out, message)

	if opts.play {
		return play(cmd.Context(), out, frames, opts.interval)
	}

	printFrames(out, frames)
	return nil
}

func printFrames(w io.Writer, frames []anim.Frame[int]) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Current", "Pointer", "Visited", "Stack", "Edges"})
	table.SetAutoFormatHeaders(false)

	for i, f := range frames {
		table.Append([]string{
			strconv.Itoa(i),
			formatKey(f.Current),
			formatCoord(f.Pointer),
			fmt.Sprint(f.Visited),
			fmt.Sprint(f.PathStack),
			formatEdges(f.Edges),
		})
	}

	table.Render()
}

// play delivers the frames one per interval, stopping early on
// interrupt.
func play(ctx context.Context, w io.Writer, frames []anim.Frame[int], interval time.Duration) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	co := playback.CoPlay(frames, interval)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		i := 0
		for {
			select {
			case f, ok := <-co.Frames():
				if !ok {
					return nil
				}
				fmt.Fprintf(w, "frame %2d: current=%s pointer=%s visited=%v stack=%v edges=%s\n",
					i, formatKey(f.Current), formatCoord(f.Pointer),
					f.Visited, f.PathStack, formatEdges(f.Edges))
				i++
			case <-ctx.Done():
				co.Stop()
				return ctx.Err()
			}
		}
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func formatKey(k *int) string {
	if k == nil {
		return "-"
	}
	return strconv.Itoa(*k)
}

func formatCoord(c *anim.Coord) string {
	if c == nil {
		return "-"
	}
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

func formatEdges(edges []anim.Edge) string {
	if len(edges) == 0 {
		return "-"
	}
	parts := make([]string, len(edges))
	for i, e := range edges {
		parts[i] = fmt.Sprintf("(%d,%d)->(%d,%d)", e.From.X, e.From.Y, e.To.X, e.To.Y)
	}
	return strings.Join(parts, " ")
}
