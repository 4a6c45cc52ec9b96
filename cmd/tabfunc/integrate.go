package main

import (
	"fmt"
	"strconv"

	"github.com/on-the-ground/tabulated_go/functions"
	"github.com/on-the-ground/tabulated_go/internal/configkeys"
	"github.com/on-the-ground/tabulated_go/pure"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func newIntegrateCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "integrate",
		Short: "Integrate a function over [left, right] with the trapezoid rule",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return bindFlags(v, cmd.Flags(), append(functionBindings,
				binding{configkeys.ConfigIntegrateStep, "step"},
				binding{configkeys.ConfigIntegrateMemoSize, "memo-size"},
			)...)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(v, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer logger.Sync()

			f, err := parseFunction(v.GetString(configkeys.ConfigFunctionName))
			if err != nil {
				return err
			}
			if size := v.GetUint32(configkeys.ConfigIntegrateMemoSize); size > 0 {
				f = pure.Tableize(f, size)
			}

			left := v.GetFloat64(configkeys.ConfigFunctionLeft)
			right := v.GetFloat64(configkeys.ConfigFunctionRight)
			step := v.GetFloat64(configkeys.ConfigIntegrateStep)
			logger.Debug("integrating",
				zap.String("function", v.GetString(configkeys.ConfigFunctionName)),
				zap.Float64("left", left),
				zap.Float64("right", right),
				zap.Float64("step", step),
			)

			value, err := functions.Integrate(f, left, right, step)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(value, 'g', -1, 64))
			return err
		},
	}
	functionFlags(cmd.Flags(), 0, 1)
	cmd.Flags().Float64("step", 1e-3, "discretization step")
	cmd.Flags().Uint32("memo-size", 2, "memoize the integrand over this many recent points, 0 disables")
	return cmd
}
