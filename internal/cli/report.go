// SPDX-License-Identifier: MIT
// Package: qdistill/internal/cli
//
// report.go — plain-text rendering of results, predictions and sweeps.

package cli

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/katalvlaran/qdistill/circuit"
	"github.com/katalvlaran/qdistill/distill"
)

// proxyNote is printed under every fidelity figure. The estimate is
// computed from measured bitstring statistics, so phase coherences are
// invisible to it.
const proxyNote = "note: fidelity is a classical proxy over measured statistics"

// writeResult renders one experiment as a key/value table.
func writeResult(w io.Writer, res distill.Result) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "protocol\t%s\n", res.Protocol)
	fmt.Fprintf(tw, "input noise\t%.4f\n", res.Noise)
	fmt.Fprintf(tw, "shots\t%d\n", res.Completed)
	fmt.Fprintf(tw, "success rate\t%.4f\n", res.SuccessRate)
	if res.Degenerate {
		fmt.Fprintf(tw, "output\tdegenerate (nothing accepted)\n")
	} else {
		fmt.Fprintf(tw, "output fidelity\t%.4f\n", res.FidelityEstimate)
		fmt.Fprintf(tw, "output counts\t%s\n", formatCounts(res.Output))
	}
	tw.Flush()
	fmt.Fprintln(w, proxyNote)
}

// writePrediction renders one closed-form prediction.
func writePrediction(w io.Writer, p circuit.Protocol, eps float64, pred distill.Prediction) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "protocol\t%s\n", p)
	fmt.Fprintf(tw, "input noise\t%.4f\n", eps)
	fmt.Fprintf(tw, "output error rate\t%.3e\n", pred.OutputErrorRate)
	fmt.Fprintf(tw, "output fidelity\t%.6f\n", pred.OutputFidelity)
	fmt.Fprintf(tw, "predicted success\t%.4f\n", pred.PredictedSuccess)
	tw.Flush()
}

// writeSweep renders the empirical-versus-theory table. A row matches
// when both the success rate and the fidelity sit within tolerance of
// their predictions.
func writeSweep(w io.Writer, p circuit.Protocol, points []distill.Point, tolerance float64) {
	fmt.Fprintf(w, "protocol %s\n", p)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "noise\tsuccess(sim)\tsuccess(th)\tfidelity(sim)\tfidelity(th)\tmatch")
	for _, pt := range points {
		if pt.Err != nil {
			fmt.Fprintf(tw, "%.4f\t-\t-\t-\t-\terror: %v\n", pt.Result.Noise, pt.Err)
			continue
		}
		mark := "no"
		if within(pt.Result.SuccessRate, pt.Prediction.PredictedSuccess, tolerance) &&
			within(pt.Result.FidelityEstimate, pt.Prediction.OutputFidelity, tolerance) {
			mark = "ok"
		}
		fmt.Fprintf(tw, "%.4f\t%.4f\t%.4f\t%.4f\t%.4f\t%s\n",
			pt.Result.Noise,
			pt.Result.SuccessRate, pt.Prediction.PredictedSuccess,
			pt.Result.FidelityEstimate, pt.Prediction.OutputFidelity,
			mark)
	}
	tw.Flush()
	fmt.Fprintln(w, proxyNote)
}

func within(a, b, tol float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tol
}

// formatCounts renders an output distribution with sorted keys so the
// report is stable across runs.
func formatCounts(counts map[string]int) string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := ""
	for i, k := range keys {
		if i > 0 {
			out += " "
		}
		out += fmt.Sprintf("%s:%d", k, counts[k])
	}
	return out
}
