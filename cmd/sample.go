package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vipcxj/randfactory/internal/export"
	"github.com/vipcxj/randfactory/internal/sample"
)

func newIntCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "int RANGE",
		Short: "Draw unsigned 32-bit integers from a closed interval",
		Long: `Draw unsigned 32-bit integers from RANGE, every value being equally likely.
RANGE is [min,max] with both ends included, or a single number N meaning [N,N].`,
		Example: `  randfactory int [1,6]
  randfactory int [0,9] --count 5 --format json
  eval "$(randfactory int [1,100] --format env --name roll)"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			iv, err := sample.ParseClosedInterval(args[0], sample.ParseUint32)
			if err != nil {
				return err
			}
			values := make([]uint32, a.cfg.Count)
			for i := range values {
				if values[i], err = a.sampler.Uint32(iv); err != nil {
					return err
				}
			}
			return export.WriteUints(cmd.OutOrStdout(), a.options(), values)
		},
	}
}

func newFloatCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "float RANGE",
		Short: "Draw floating-point numbers from a closed interval",
		Long: `Draw floating-point numbers from RANGE, both ends included.
Values are derived from 32 random bits, so at most 2^32 distinct values
can be produced for any interval.`,
		Example: `  randfactory float [0,1]
  randfactory float [-0.5,0.5] -c 3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			iv, err := sample.ParseClosedInterval(args[0], sample.ParseFloat64)
			if err != nil {
				return err
			}
			values := make([]float64, a.cfg.Count)
			for i := range values {
				if values[i], err = a.sampler.Float64(iv); err != nil {
					return err
				}
			}
			return export.WriteFloats(cmd.OutOrStdout(), a.options(), values)
		},
	}
}

func newPointCmd(a *app) *cobra.Command {
	x := newIntervalValue(sample.ParseFloat64)
	y := newIntervalValue(sample.ParseFloat64)

	cmd := &cobra.Command{
		Use:   "point --x RANGE|VALUE --y RANGE|VALUE",
		Short: "Draw 2D points with independent coordinates",
		Long: `Draw 2D points whose coordinates are sampled independently.
A coordinate given as a single value is held fixed.`,
		Example: `  randfactory point --x [0,640] --y [0,480]
  randfactory point --x 3 --y [0,1] --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			draw := func() (sample.Point[float64], error) {
				switch {
				case x.iv.IsSingleValue():
					return sample.PointAtX(a.sampler, x.iv.Lower, y.iv)
				case y.iv.IsSingleValue():
					return sample.PointAtY(a.sampler, x.iv, y.iv.Lower)
				default:
					return sample.PointIn(a.sampler, x.iv, y.iv)
				}
			}
			points := make([]sample.Point[float64], a.cfg.Count)
			for i := range points {
				p, err := draw()
				if err != nil {
					return err
				}
				points[i] = p
			}
			return export.WritePoints(cmd.OutOrStdout(), a.options(), points)
		},
	}
	cmd.Flags().Var(x, "x", "X coordinate range, or a fixed value")
	cmd.Flags().Var(y, "y", "Y coordinate range, or a fixed value")
	_ = cmd.MarkFlagRequired("x")
	_ = cmd.MarkFlagRequired("y")
	return cmd
}
