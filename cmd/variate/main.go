// Command variate draws reproducible random variates from the command line.
package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/montanaflynn/stats"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/nozzle/variate"
	"github.com/nozzle/variate/dist"
	"github.com/nozzle/variate/internal/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:           "variate",
		Short:         "Draw reproducible normal, lognormal and uniform variates",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(v, cmd.ErrOrStderr())
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "YAML config file")
	pf.Uint32("seed", 0, "Random seed")
	pf.String("source", "mersenne-twister", "Uniform source (mersenne-twister, tausworthe)")
	pf.String("normal", "kinderman-ramage", "Normal method (kinderman-ramage, box-muller, inversion)")
	pf.IntP("count", "n", 10, "Number of variates")
	pf.StringP("output", "o", "", "Output CSV file (default stdout)")
	pf.BoolP("verbose", "v", false, "Verbose output")
	_ = v.BindPFlags(pf)

	root.AddCommand(
		newDrawCmd(v, "norm", "Normal(mean, sd) variates", "mean", "sd",
			func(s *variate.Sampler, n int, loc, scale float64) dist.Variates { return s.Norm(n, loc, scale) }),
		newDrawCmd(v, "lnorm", "Lognormal(meanlog, sdlog) variates", "meanlog", "sdlog",
			func(s *variate.Sampler, n int, loc, scale float64) dist.Variates { return s.LNorm(n, loc, scale) }),
		newUnifCmd(v),
		newSummaryCmd(v),
	)
	return root
}

// initConfig merges flags, VARIATE_* environment variables and an optional
// config file, then sets up diagnostics.
func initConfig(v *viper.Viper, stderr io.Writer) error {
	v.SetEnvPrefix("VARIATE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	logging.SetOutput(zerolog.ConsoleWriter{Out: stderr, NoColor: true})
	if v.GetBool("verbose") {
		logging.SetLevel(zerolog.DebugLevel)
	} else {
		logging.SetLevel(zerolog.WarnLevel)
	}
	return nil
}

func newSampler(v *viper.Viper) (*variate.Sampler, error) {
	config := variate.DefaultConfig()
	config.Seed = v.GetUint32("seed")
	config.Source = v.GetString("source")
	config.Normal = v.GetString("normal")

	s, err := variate.New(config)
	if err != nil {
		return nil, err
	}
	l := logging.For("variate")
	l.Debug().
		Uint32("seed", config.Seed).
		Str("source", s.Source().Name()).
		Str("normal", config.Normal).
		Msg("sampler ready")
	return s, nil
}

type drawFunc func(s *variate.Sampler, n int, loc, scale float64) dist.Variates

func addParamFlags(fs *pflag.FlagSet, loc, scale string) {
	fs.Float64(loc, 0, "Location parameter")
	fs.Float64(scale, 1, "Scale parameter")
}

func newDrawCmd(v *viper.Viper, name, short, loc, scale string, draw drawFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			l, _ := cmd.Flags().GetFloat64(loc)
			s, _ := cmd.Flags().GetFloat64(scale)

			sampler, err := newSampler(v)
			if err != nil {
				return err
			}
			return emit(v, cmd.OutOrStdout(), draw(sampler, v.GetInt("count"), l, s))
		},
	}
	addParamFlags(cmd.Flags(), loc, scale)
	return cmd
}

func newUnifCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unif",
		Short: "Uniform [low, high) deviates straight from the source",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			low, _ := cmd.Flags().GetFloat64("low")
			high, _ := cmd.Flags().GetFloat64("high")

			sampler, err := newSampler(v)
			if err != nil {
				return err
			}
			return emit(v, cmd.OutOrStdout(), sampler.UniformRange(v.GetInt("count"), low, high))
		},
	}
	cmd.Flags().Float64("low", 0, "Lower bound")
	cmd.Flags().Float64("high", 1, "Upper bound (exclusive)")
	return cmd
}

func newSummaryCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Draw a batch and print summary statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fs := cmd.Flags()
			which, _ := fs.GetString("dist")
			loc, _ := fs.GetFloat64("loc")
			scale, _ := fs.GetFloat64("scale")

			sampler, err := newSampler(v)
			if err != nil {
				return err
			}

			n := v.GetInt("count")
			var xs dist.Variates
			switch which {
			case "norm":
				xs = sampler.Norm(n, loc, scale)
			case "lnorm":
				xs = sampler.LNorm(n, loc, scale)
			case "unif":
				xs = sampler.Uniform(n)
			default:
				return fmt.Errorf("unknown distribution %q", which)
			}
			return printSummary(cmd.OutOrStdout(), which, xs)
		},
	}
	fs := cmd.Flags()
	fs.String("dist", "norm", "Distribution (norm, lnorm, unif)")
	addParamFlags(fs, "loc", "scale")
	return cmd
}

func printSummary(w io.Writer, name string, xs dist.Variates) error {
	sum := variate.Summarize(xs)
	fmt.Fprintf(w, "dist    %s\n", name)
	fmt.Fprintf(w, "n       %d\n", sum.N)
	fmt.Fprintf(w, "mean    %.6f\n", sum.Mean)
	fmt.Fprintf(w, "sd      %.6f\n", sum.StdDev)
	fmt.Fprintf(w, "min     %.6f\n", sum.Min)
	fmt.Fprintf(w, "max     %.6f\n", sum.Max)

	if sum.N == 0 || xs.HasNaN() {
		return nil
	}
	data := stats.LoadRawData([]float64(xs))
	median, err := data.Median()
	if err != nil {
		return err
	}
	p5, err := data.Percentile(5)
	if err != nil {
		return err
	}
	p95, err := data.Percentile(95)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "median  %.6f\n", median)
	fmt.Fprintf(w, "p5      %.6f\n", p5)
	fmt.Fprintf(w, "p95     %.6f\n", p95)
	return nil
}

// emit writes xs to --output, or to w when no file is given.
func emit(v *viper.Viper, w io.Writer, xs dist.Variates) error {
	path := v.GetString("output")
	if path == "" {
		return writeCSV(w, xs)
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := writeCSV(file, xs); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// writeCSV writes one value per row.
func writeCSV(w io.Writer, xs []float64) error {
	writer := csv.NewWriter(w)
	for _, x := range xs {
		if err := writer.Write([]string{strconv.FormatFloat(x, 'g', -1, 64)}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
