// 19 Oct 2026

package main

import (
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/andrew-torda/mutfq/pkg/config"
	"github.com/andrew-torda/mutfq/pkg/mutfq"
)

// newRootCmd builds the command. Flags are bound into a fresh viper,
// so tests can make as many as they like.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	v := viper.New()
	var cfgFile string
	cmd := &cobra.Command{
		Use:   "mutfq -r ratio -f file[,file...]",
		Short: "Randomly substitute bases in fastq reads",
		Long: `Mutate a fraction of the bases in every read of each fastq file.
The wildcard N is never changed. Files are shared out amongst workers.`,
		Version:       "0.1.0",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfgFile != "" {
				v.SetConfigFile(cfgFile)
				if err := v.ReadInConfig(); err != nil {
					return err
				}
			}
			setLogging(v, stderr)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := config.New(v)
			if err != nil {
				return err
			}
			p, err := mutfq.Check(&c)
			if err != nil {
				return err
			}
			return mutfq.Run(p, stdout)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	f := cmd.Flags()
	f.StringVar(&cfgFile, "config", "", "config file (yaml, toml or json)")
	f.StringP(config.KeyFastq, "f", "", "fastq files, gzip or snappy compression allowed, separate with commas")
	f.Float64P(config.KeyRatio, "r", 0, "mutation ratio, 0~1")
	f.IntP(config.KeyThread, "t", config.DfltThread, "max thread number")
	f.BoolP(config.KeyPos, "p", false, "add mutation positions to the header description")
	f.StringP(config.KeyOutpath, "o", config.DfltOutpath, "output path, created if necessary")
	f.Bool(config.KeyStrict, false, "stop on a file at the first malformed record")
	f.Bool(config.KeyReport, false, "write a mutation spectrum table next to each output")
	f.Bool(config.KeyPlot, false, "write a plot of mutations per position next to each output")
	f.Bool(config.KeyDryRun, false, "check options and list outputs, but do not mutate")
	f.BoolP(config.KeyVerbose, "v", false, "debugging output")
	f.BoolP(config.KeyQuiet, "q", false, "only print warnings and errors")

	config.SetDefaults(v)
	config.BindEnv(v)
	f.VisitAll(func(fl *pflag.Flag) {
		if fl.Name != "config" {
			mustBind(v, fl.Name, fl)
		}
	})
	return cmd
}

// mustBind ties a flag to a viper key. It only fails on a nil flag,
// which is a mistake in this file.
func mustBind(v *viper.Viper, key string, fl *pflag.Flag) {
	if err := v.BindPFlag(key, fl); err != nil {
		panic(err)
	}
}

// setLogging sends log output to w at a level chosen by the
// verbose and quiet settings.
func setLogging(v *viper.Viper, w io.Writer) {
	log.SetOutput(w)
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	switch {
	case v.GetBool(config.KeyVerbose):
		log.SetLevel(log.DebugLevel)
	case v.GetBool(config.KeyQuiet):
		log.SetLevel(log.WarnLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}
