package anim_test

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
	"github.com/stretchr/testify/require"

	"go.lepak.sg/bstviz/anim"
	"go.lepak.sg/bstviz/layout"
	"go.lepak.sg/bstviz/tree/bst"
)

func TestFromPathDataDriven(t *testing.T) {
	runScript(t, "testdata/from_path")
}

func TestFromEventsDataDriven(t *testing.T) {
	runScript(t, "testdata/from_events")
}

// runScript executes one datadriven script end to end: "build" makes a
// tree and snapshots its layout, the remaining commands run an engine
// operation and print the frames the generator produces for it.
func runScript(t *testing.T, path string) {
	var (
		tr     *bst.Tree[int]
		lookup anim.Lookup[int]
	)

	datadriven.RunTest(t, path, func(t *testing.T, d *datadriven.TestData) string {
		switch d.Cmd {
		case "build":
			var vs []int
			for _, f := range strings.Fields(d.Input) {
				v, err := strconv.Atoi(f)
				require.NoError(t, err)
				vs = append(vs, v)
			}
			var dups []int
			tr, dups = bst.FromValues(vs...)
			require.Empty(t, dups)
			lookup = layout.Grid(tr)

			var sb strings.Builder
			tr.Do(func(k int) bool {
				at := lookup[k]
				fmt.Fprintf(&sb, "%d (%d,%d)\n", k, at.X, at.Y)
				return true
			})
			return sb.String()

		case "search":
			v := cmdValue(t, d)
			res := tr.Search(v)
			var hl *int
			if res.OK {
				hl = &v
			}
			var sb strings.Builder
			fmt.Fprintf(&sb, "found: %t\npath: %v\n", res.OK, res.Path)
			writeFrames(&sb, anim.FromPath(res.Path, lookup, hl))
			return sb.String()

		case "min", "max":
			res := tr.FindMin()
			if d.Cmd == "max" {
				res = tr.FindMax()
			}
			var hl *int
			if res.OK {
				hl = &res.Value
			}
			var sb strings.Builder
			fmt.Fprintf(&sb, "value: %d\npath: %v\n", res.Value, res.Path)
			writeFrames(&sb, anim.FromPath(res.Path, lookup, hl))
			return sb.String()

		case "inorder", "preorder", "postorder":
			var res bst.DetailedResult[int]
			switch d.Cmd {
			case "inorder":
				res = tr.InOrderDetailed()
			case "preorder":
				res = tr.PreOrderDetailed()
			case "postorder":
				res = tr.PostOrderDetailed()
			}

			var sb strings.Builder
			fmt.Fprintf(&sb, "values: %v\n", res.Values)
			steps := make([]string, len(res.Steps))
			for i, s := range res.Steps {
				steps[i] = fmt.Sprintf("%s(%d)", s.Action, s.Value)
			}
			fmt.Fprintf(&sb, "steps: %s\n", strings.Join(steps, " "))
			writeFrames(&sb, anim.FromEvents(res.Steps, lookup))
			return sb.String()

		default:
			t.Fatalf("unknown command %q", d.Cmd)
			return ""
		}
	})
}

func cmdValue(t *testing.T, d *datadriven.TestData) int {
	require.Len(t, d.CmdArgs, 1)
	v, err := strconv.Atoi(d.CmdArgs[0].Key)
	require.NoError(t, err)
	return v
}

func writeFrames(sb *strings.Builder, frames []anim.Frame[int]) {
	for i, f := range frames {
		fmt.Fprintf(sb, "%d: current=%s pointer=%s visited=%v stack=%v edges=%s\n",
			i, fmtKey(f.Current), fmtCoord(f.Pointer),
			f.Visited, f.PathStack, fmtEdges(f.Edges))
	}
}

func fmtKey(k *int) string {
	if k == nil {
		return "-"
	}
	return strconv.Itoa(*k)
}

func fmtCoord(c *anim.Coord) string {
	if c == nil {
		return "-"
	}
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

func fmtEdges(edges []anim.Edge) string {
	if len(edges) == 0 {
		return "[]"
	}
	parts := make([]string, len(edges))
	for i, e := range edges {
		parts[i] = fmt.Sprintf("(%d,%d)->(%d,%d)", e.From.X, e.From.Y, e.To.X, e.To.Y)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
