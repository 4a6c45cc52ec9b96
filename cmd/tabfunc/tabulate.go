package main

import (
	"fmt"
	"io"

	"github.com/on-the-ground/tabulated_go/functions"
	"github.com/on-the-ground/tabulated_go/functions/tabio"
	"github.com/on-the-ground/tabulated_go/internal/configkeys"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	formatText   = "text"
	formatBinary = "binary"
)

func encoder(format string) (func(io.Writer, functions.TabulatedFunction) error, error) {
	switch format {
	case formatText:
		return tabio.WriteText, nil
	case formatBinary:
		return tabio.WriteBinary, nil
	}
	return nil, fmt.Errorf("unknown format %q, want %s or %s", format, formatText, formatBinary)
}

func decoder(format string) (func(io.Reader) (*functions.ArrayTabulatedFunction, error), error) {
	switch format {
	case formatText:
		return tabio.ReadText, nil
	case formatBinary:
		return tabio.ReadBinary, nil
	}
	return nil, fmt.Errorf("unknown format %q, want %s or %s", format, formatText, formatBinary)
}

func newTabulateCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tabulate",
		Short: "Sample a function at evenly spaced points and write the table",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return bindFlags(v, cmd.Flags(), append(functionBindings,
				binding{configkeys.ConfigTabulateCount, "count"},
				binding{configkeys.ConfigTabulateFormat, "format"},
			)...)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(v, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer logger.Sync()

			write, err := encoder(v.GetString(configkeys.ConfigTabulateFormat))
			if err != nil {
				return err
			}
			f, err := parseFunction(v.GetString(configkeys.ConfigFunctionName))
			if err != nil {
				return err
			}

			tab, err := functions.Tabulate(f,
				v.GetFloat64(configkeys.ConfigFunctionLeft),
				v.GetFloat64(configkeys.ConfigFunctionRight),
				v.GetInt(configkeys.ConfigTabulateCount),
			)
			if err != nil {
				return err
			}
			logger.Debug("tabulated", zap.Int("points", tab.PointsCount()), zap.Uint64("hash", functions.Hash(tab)))
			return write(cmd.OutOrStdout(), tab)
		},
	}
	functionFlags(cmd.Flags(), 0, 1)
	cmd.Flags().Int("count", 11, "number of points")
	cmd.Flags().String("format", formatText, "output format: text or binary")
	return cmd
}
