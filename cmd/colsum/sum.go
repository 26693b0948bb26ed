package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/apache/arrow/go/v7/arrow"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-colsum/arrowio"
	"github.com/cwbudde/algo-colsum/column"
	"github.com/cwbudde/algo-colsum/reduce"
)

func runSum(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	rec, err := readInput(args[0])
	if err != nil {
		return err
	}
	defer rec.Release()

	result, err := arrowio.SumRecordBy(rec, cfg.By, cfg.Weight, reduce.WithConfig(cfg.Config))
	if err != nil {
		return err
	}
	defer result.Release()

	if cfg.Output != "" {
		if err := writeOutput(cfg.Output, result); err != nil {
			return err
		}
		log.Printf("wrote %d rows to %s", result.NumRows(), cfg.Output)
	}
	return printRecord(cmd.OutOrStdout(), result)
}

func writeOutput(path string, rec arrow.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := arrowio.WriteRecord(f, rec); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// printRecord writes rec as an aligned table, one line per result row.
func printRecord(w io.Writer, rec arrow.Record) error {
	t, err := arrowio.FromRecord(rec)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for j, name := range t.Names {
		if j > 0 {
			fmt.Fprint(tw, "\t")
		}
		fmt.Fprint(tw, name)
	}
	fmt.Fprintln(tw)

	for i := 0; i < t.NumRows(); i++ {
		for j, c := range t.Columns {
			if j > 0 {
				fmt.Fprint(tw, "\t")
			}
			fmt.Fprint(tw, formatCell(c, i))
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

func formatCell(c column.Column, i int) string {
	if c.Missing(i) {
		return "NA"
	}
	switch cc := c.(type) {
	case *column.Float64:
		return strconv.FormatFloat(cc.Values[i], 'g', -1, 64)
	case *column.Int32:
		return strconv.FormatInt(int64(cc.Values[i]), 10)
	case *column.Bool:
		return strconv.FormatBool(cc.Values[i])
	case *column.String:
		return cc.Values[i]
	default:
		return "?"
	}
}
