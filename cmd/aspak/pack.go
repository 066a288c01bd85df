package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nettfg/aspak"
)

var (
	packParallel   bool
	packCollisions bool
	packReport     string

	packCmd = &cobra.Command{
		Use:   "pack <assets-root> <out-dir>",
		Short: "Pack scene assets into bins and an index",
		Long: `Pack discovers scene descriptors under the assets root, splits assets
into shared and per-scene sets, and writes shared.bin, one bin per
scene, and assets.idx into the output directory.

The run is all-or-nothing: a missing or unreadable asset aborts the
pack and no partial output file is left behind.`,
		Args: cobra.ExactArgs(2),
		RunE: runPack,
	}
)

func init() {
	packCmd.Flags().BoolVar(&packParallel, "parallel", false, "build bins concurrently (output bytes are identical)")
	packCmd.Flags().BoolVar(&packCollisions, "check-collisions", false, "fail if two asset paths hash to the same id")
	packCmd.Flags().StringVar(&packReport, "report", "", "write a YAML packing report to this path")
}

func runPack(cmd *cobra.Command, args []string) error {
	opts := []aspak.PackOption{aspak.WithLogger(newLogger())}
	if packParallel {
		opts = append(opts, aspak.WithParallel())
	}
	if packCollisions {
		opts = append(opts, aspak.WithCollisionCheck())
	}
	if packReport != "" {
		opts = append(opts, aspak.WithReport(packReport))
	}

	summary, err := aspak.Pack(cmd.Context(), args[0], args[1], opts...)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s %d assets into %d bins\n",
		SuccessStyle.Render("Packed"), summary.Assets, summary.Bins)
	return nil
}
