package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/on-the-ground/tabulated_go/internal/configkeys"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewCommand builds the tabfunc command tree with its own viper instance.
func NewCommand() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(configkeys.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:          "tabfunc",
		Short:        "Integrate, tabulate and encode functions of one variable",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().String("log-level", "warn", "log level: debug, info, warn or error")
	cobra.CheckErr(v.BindPFlag(configkeys.ConfigLogLevel, cmd.PersistentFlags().Lookup("log-level")))

	cmd.AddCommand(
		newIntegrateCommand(v),
		newTabulateCommand(v),
		newDecodeCommand(v),
		newTasksCommand(v),
	)
	return cmd
}

// binding ties a viper key to a flag of the running command.
type binding struct {
	key  string
	flag string
}

// bindFlags is run from PreRunE so that commands sharing a key each read
// their own flag.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet, bindings ...binding) error {
	for _, b := range bindings {
		f := flags.Lookup(b.flag)
		if f == nil {
			return fmt.Errorf("unknown flag %q for key %q", b.flag, b.key)
		}
		if err := v.BindPFlag(b.key, f); err != nil {
			return err
		}
	}
	return nil
}

func functionFlags(flags *pflag.FlagSet, left, right float64) {
	flags.String("func", "exp", "function: exp, sin, cos, tan, ln or log:<base>")
	flags.Float64("left", left, "left border")
	flags.Float64("right", right, "right border")
}

var functionBindings = []binding{
	{configkeys.ConfigFunctionName, "func"},
	{configkeys.ConfigFunctionLeft, "left"},
	{configkeys.ConfigFunctionRight, "right"},
}

func newLogger(v *viper.Viper, w io.Writer) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(v.GetString(configkeys.ConfigLogLevel))
	if err != nil {
		return nil, err
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(zapcore.AddSync(w)),
		level,
	)
	return zap.New(core), nil
}
