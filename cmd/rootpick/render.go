package main

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
	dto "github.com/prometheus/client_model/go"

	"github.com/IlikeChooros/go-mcts-root/pkg/bench"
	"github.com/IlikeChooros/go-mcts-root/pkg/mcts"
)

type renderer struct {
	out *termenv.Output
}

func newRenderer(w io.Writer, noColor bool) *renderer {
	opts := []termenv.OutputOption{}
	if noColor {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}
	return &renderer{out: termenv.NewOutput(w, opts...)}
}

func (r *renderer) children(tree *mcts.Tree[string], decision mcts.Decision[string]) {
	fmt.Fprintf(r.out, "%-8s %8s %8s %8s\n", "move", "visits", "value", "left")
	for _, child := range tree.Root.Children {
		line := fmt.Sprintf("%-8s %8d %8s %8s", child.Move, child.N(), formatValue(child.Value()), formatValue(child.MovesLeft()))
		style := r.out.String(line)
		if child == decision.Node {
			style = style.Foreground(r.out.Color("2")).Bold()
		}
		fmt.Fprintln(r.out, style)
	}
}

func (r *renderer) decision(decision mcts.Decision[string]) {
	if decision.Empty() {
		fmt.Fprintln(r.out, r.out.String("no legal moves").Foreground(r.out.Color("1")))
		return
	}

	fmt.Fprintf(r.out, "\nbestmove %s value %s visits %d bonus %+.4f\n",
		r.out.String(decision.Move()).Bold(), formatValue(decision.Value), decision.Visits, decision.Bonus)
}

func (r *renderer) counters(c mcts.DecisionCounters, noiseModifications int32) {
	fmt.Fprintf(r.out, "mlh considered %d changed %d (%.1f%%) noise overrides %d (this game %d)\n",
		c.MLHConsidered, c.MLHChanged, 100*c.MLHChangeRatio(), c.NoiseOverrides, noiseModifications)
}

func (r *renderer) summary(s bench.AgreementSummary) {
	rate := r.out.String(fmt.Sprintf("%.2f%%", 100*s.AgreementRate)).Bold()
	fmt.Fprintf(r.out, "snapshots %d agreed %d disagreed %d skipped %d workers %d agreement %s\n",
		s.TotalSnapshots, s.Agreed, s.Disagreed, s.Skipped, s.Workers, rate)
}

func (r *renderer) metrics(families []*dto.MetricFamily) {
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			value := metric.GetCounter().GetValue()
			if family.GetType() == dto.MetricType_GAUGE {
				value = metric.GetGauge().GetValue()
			}
			fmt.Fprintf(r.out, "%s %g\n", family.GetName(), value)
		}
	}
}
