package main

import (
	"fmt"
	"io"
	"runtime"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-colsum/internal/cpu"
	"github.com/cwbudde/algo-colsum/internal/kernel"
	"github.com/cwbudde/algo-colsum/internal/kernel/registry"
)

func printInfo(w io.Writer) error {
	features := cpu.DetectFeatures()
	selected := kernel.Implementation()

	names := features.Names()
	if len(names) == 0 {
		names = []string{"none"}
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "arch:\t%s\n", features.Architecture)
	fmt.Fprintf(tw, "features:\t%s\n", strings.Join(names, " "))
	fmt.Fprintf(tw, "gomaxprocs:\t%d\n", runtime.GOMAXPROCS(0))
	fmt.Fprintf(tw, "kernel:\t%s\n", selected)
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(w)

	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Variant\tSIMD\tPriority\tUsable")
	fmt.Fprintln(tw, "-------\t----\t--------\t------")
	for _, e := range registry.Global.ListEntries() {
		usable := "no"
		if cpu.Supports(features, e.SIMDLevel) {
			usable = "yes"
		}
		if e.Name == selected {
			usable += " (selected)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", e.Name, e.SIMDLevel, e.Priority, usable)
	}
	return tw.Flush()
}
