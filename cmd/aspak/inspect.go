package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nettfg/aspak"
	"github.com/nettfg/aspak/internal/binfile"
	"github.com/nettfg/aspak/internal/indexfile"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <bin-or-idx>",
	Short: "Dump the entry table of a bin or index file",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	path := args[0]
	if strings.HasSuffix(path, aspak.BinExt) {
		return inspectBin(cmd.OutOrStdout(), path)
	}
	return inspectIndex(cmd.OutOrStdout(), path)
}

func inspectBin(out io.Writer, path string) error {
	r, err := binfile.Open(path)
	if err != nil {
		return err
	}
	defer r.Close()

	var dataSize uint64
	for _, e := range r.Entries() {
		dataSize += e.Size
	}
	fmt.Fprintln(out, TitleStyle.Render(path))
	fmt.Fprintf(out, "version %d, %d entries, %d data bytes\n\n", r.Version(), r.Len(), dataSize)

	w := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tOFFSET\tSIZE")
	for _, e := range r.Entries() {
		fmt.Fprintf(w, "%016x\t%d\t%d\n", e.ID, e.Offset, e.Size)
	}
	return w.Flush()
}

func inspectIndex(out io.Writer, path string) error {
	records, err := indexfile.Read(path)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, TitleStyle.Render(path))
	fmt.Fprintf(out, "%d records\n\n", len(records))

	w := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tBIN\tOFFSET\tSIZE")
	for _, rec := range records {
		fmt.Fprintf(w, "%016x\t%d\t%d\t%d\n", rec.ID, rec.Bin, rec.Offset, rec.Size)
	}
	return w.Flush()
}
