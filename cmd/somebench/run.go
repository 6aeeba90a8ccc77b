// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"code.hybscloud.com/some/internal/bench"
)

func newRunCmd(configFile *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the shape iteration scenarios",
		Long: `Run sweeps a collection of squares and circles, calling Info then Bump
on each shape, once per round. Every variant stores the same shapes and
reports the same checksum.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := loadConfig(*configFile, cmd.Flags())
			if err != nil {
				return err
			}
			logger, err := newLogger(cmd.ErrOrStderr(), v)
			if err != nil {
				return err
			}
			opts, err := benchOptions(v)
			if err != nil {
				return err
			}

			logger.Info("Running scenarios...",
				slog.Int("n", opts.N),
				slog.Int("rounds", opts.Rounds),
				slog.Int("parallel", opts.Parallel),
			)
			results, err := bench.Run(cmd.Context(), logger, opts)
			if err != nil {
				return fmt.Errorf("run: %w", err)
			}
			if v.GetBool(cfgKeyJSON) {
				return writeJSON(cmd.OutOrStdout(), results)
			}
			return writeTable(cmd.OutOrStdout(), results)
		},
	}
	f := cmd.Flags()
	f.Int(cfgKeyN, 1024, "shapes per collection")
	f.Int(cfgKeyRounds, 100, "sweeps over each collection")
	f.StringSlice(cfgKeyVariants, nil, "variants to run (default: all)")
	f.Int(cfgKeyParallel, 1, "variants measured at once")
	f.Bool(cfgKeyJSON, false, "output as JSON")
	f.String(cfgKeyLogLevel, "info", "log level: debug, info, warn or error")
	return cmd
}

func writeJSON(w io.Writer, results []bench.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

func writeTable(w io.Writer, results []bench.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "VARIANT\tN\tROUNDS\tINLINE\tELAPSED\tPER CALL\tCHECKSUM")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%s\t%s\t%d\n",
			r.Variant, r.N, r.Rounds, r.Inline, r.Elapsed, r.PerCall, r.Checksum)
	}
	return tw.Flush()
}

func newVariantsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "variants",
		Short: "List the storage variants",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, v := range bench.Variants() {
				fmt.Fprintln(cmd.OutOrStdout(), v)
			}
		},
	}
}
