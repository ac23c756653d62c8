package stepform

import (
	"github.com/enetx/g"
)

// ToDOT generates a DOT language string representation of the step flow.
// The active step is green, the terminal step grey, and transitions that
// validate a group are drawn dashed.
func (f *Form) ToDOT() g.String {
	b := g.NewBuilder()

	b.WriteString("digraph Form {\n")
	b.WriteString("  rankdir=LR;\n")
	b.WriteString(
		"  node [shape=box, style=\"rounded,filled\", fillcolor=\"#f8f8f8\", color=\"#444444\", fontname=\"Helvetica\"];\n",
	)
	b.WriteString("  edge [fontname=\"Helvetica\", fontsize=10];\n\n")

	b.WriteString("  __start [shape=point, style=invis];\n")
	b.WriteString(g.Format("  __start -> \"{}\" [label=\" start\"];\n\n", StepPersonal))

	for step := range steps.Iter() {
		var attrs g.Slice[g.String]
		attrs.Push(g.Format("label=\"{}\\n{}\"", step.Index(), step))

		switch {
		case step == f.current:
			attrs.Push("fillcolor=\"#90ee90\"", "penwidth=2")
		case flow.Get(step).IsNone():
			attrs.Push("fillcolor=\"#d3d3d3\"", "peripheries=2")
		}

		var tooltips g.Slice[g.String]

		if f.onEnter.Contains(step) {
			tooltips.Push("OnEnter")
		}

		if f.onExit.Contains(step) {
			tooltips.Push("OnExit")
		}

		if tooltips.NotEmpty() {
			attrs.Push(g.Format("tooltip=\"{}\"", tooltips.Join("\\n")))
		}

		b.WriteString(g.Format("  \"{}\" [{}];\n", step, attrs.Join(", ")))
	}

	b.WriteByte('\n')

	for from := range steps.Iter() {
		rows := flow.Get(from)
		if rows.IsNone() {
			continue
		}

		for row := range rows.Some().Iter() {
			var edge g.Slice[g.String]

			if row.gate != "" {
				edge.Push(g.Format("label=\" {} ({}) \"", row.action, row.gate))
				edge.Push("style=dashed", "color=red", "arrowhead=odiamond")
			} else {
				edge.Push(g.Format("label=\" {} \"", row.action))
			}

			b.WriteString(g.Format("  \"{}\" -> \"{}\" [{}];\n", from, row.to, edge.Join(", ")))
		}
	}

	b.WriteString("}\n")

	return b.String()
}
