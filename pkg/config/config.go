// Package config holds the settings for a run. They are unmarshalled
// from viper, so they may come from the command line, the environment
// (MUTFQ_RATIO, MUTFQ_THREAD, ...) or a config file.
package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is put in front of the upper case key names to give
// environment variables.
const EnvPrefix = "MUTFQ"

// Keys, which are also the long flag names.
const (
	KeyFastq   = "fastq"
	KeyRatio   = "ratio"
	KeyThread  = "thread"
	KeyPos     = "pos"
	KeyOutpath = "outpath"
	KeyStrict  = "strict"
	KeyReport  = "report"
	KeyPlot    = "plot"
	KeyDryRun  = "dry-run"
	KeyVerbose = "verbose"
	KeyQuiet   = "quiet"
)

var allKeys = []string{
	KeyFastq, KeyRatio, KeyThread, KeyPos, KeyOutpath, KeyStrict,
	KeyReport, KeyPlot, KeyDryRun, KeyVerbose, KeyQuiet,
}

// Defaults
const (
	DfltThread  = 4
	DfltOutpath = "./"
)

// Config is what the user asked for, before any checking.
type Config struct {
	// comma separated list of fastq files, possibly compressed
	Fastq string `mapstructure:"fastq"`

	// fraction of each read to mutate, 0 < ratio <= 1
	Ratio float64 `mapstructure:"ratio"`

	// number of workers
	Thread int `mapstructure:"thread"`

	// append mutated positions to the read description
	Pos bool `mapstructure:"pos"`

	// directory for the output, made if necessary
	Outpath string `mapstructure:"outpath"`

	// give up on a file at the first broken record
	Strict bool `mapstructure:"strict"`

	// write a .spectrum.tsv file next to each output
	Report bool `mapstructure:"report"`

	// write a .spectrum.png file next to each output
	Plot bool `mapstructure:"plot"`

	// check everything, but do not read or write fastq
	DryRun bool `mapstructure:"dry-run"`

	Verbose bool `mapstructure:"verbose"`
	Quiet   bool `mapstructure:"quiet"`
}

// SetDefaults puts the default values into v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyThread, DfltThread)
	v.SetDefault(KeyOutpath, DfltOutpath)
}

// BindEnv makes v look at MUTFQ_xxx variables. Dashes in keys become
// underscores, so dry-run is MUTFQ_DRY_RUN.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	for _, k := range allKeys { // Unmarshal only sees keys viper knows
		if err := v.BindEnv(k); err != nil {
			panic(err) // only for an empty key
		}
	}
}

// New returns a Config populated from v. The ratio and the fastq
// list have no defaults, so they must be set somewhere.
func New(v *viper.Viper) (Config, error) {
	var c Config
	var missing []string
	if !v.IsSet(KeyRatio) {
		missing = append(missing, "-r/--ratio")
	}
	if !v.IsSet(KeyFastq) {
		missing = append(missing, "-f/--fastq")
	}
	if len(missing) > 0 {
		return c, errors.New("missing required option " + strings.Join(missing, ", "))
	}
	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}
	return c, nil
}
