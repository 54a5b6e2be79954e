package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/djdv/go-pagesim"
	"github.com/djdv/go-pagesim/internal/config"
	"github.com/shopspring/decimal"
)

// writeReport prints one row per policy, in [pagesim.Policies] order.
func writeReport(w io.Writer, cfg config.Config, results map[pagesim.Policy]pagesim.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "POLICY\tFAULTS\tHITS\tFAULT RATE\n")
	for _, policy := range reportOrder(results) {
		result := results[policy]
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s%%\n",
			policy, result.Faults, result.Hits(), faultPercent(result))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if !cfg.Trace {
		return nil
	}
	for _, policy := range reportOrder(results) {
		if _, err := fmt.Fprintf(w, "%s trace: %s\n",
			policy, joinInts(results[policy].Trace)); err != nil {
			return err
		}
	}
	return nil
}

func reportOrder(results map[pagesim.Policy]pagesim.Result) []pagesim.Policy {
	order := make([]pagesim.Policy, 0, len(results))
	for policy := range pagesim.Policies() {
		if _, ok := results[policy]; ok {
			order = append(order, policy)
		}
	}
	return order
}

// faultPercent renders faults/references as a percentage
// with two decimal places.
func faultPercent(result pagesim.Result) string {
	references := len(result.Trace)
	if references == 0 {
		return decimal.Zero.StringFixed(2)
	}
	const percentPrecision = 4 // Ratio digits kept before scaling.
	var (
		faults = decimal.New(int64(result.Faults), 0)
		total  = decimal.New(int64(references), 0)
		ratio  = faults.DivRound(total, percentPrecision)
	)
	return ratio.Mul(decimal.New(100, 0)).StringFixed(2)
}

func joinInts(ints []int) string {
	var builder strings.Builder
	for i, value := range ints {
		if i > 0 {
			builder.WriteByte(' ')
		}
		fmt.Fprint(&builder, value)
	}
	return builder.String()
}
