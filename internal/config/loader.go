package config

import (
	"errors"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/torosent/benchrig/internal/chart"
	"github.com/torosent/benchrig/internal/metrics"
)

// ErrHelpRequested is returned when the user requests help via --help flag.
var ErrHelpRequested = errors.New("help requested")

// LoadRun parses the session runner's command line (and optional config
// file) into a RunConfig. Path validation is left to Resolve.
func LoadRun(args []string) (*RunConfig, error) {
	cmd := newRunCommand()
	fs, err := parse(cmd.Flags(), args, func() { displayHelp(cmd) })
	if err != nil {
		return nil, err
	}
	if len(args) == 0 {
		displayHelp(cmd)
		return nil, ErrHelpRequested
	}

	settings, err := fileSettings(fs)
	if err != nil {
		return nil, err
	}

	cfg := &RunConfig{}
	if raw, ok := settings["testplans"]; ok {
		plans, err := asStringSlice(raw)
		if err != nil {
			return nil, errors.New("testplans: " + err.Error())
		}
		cfg.Testplans = plans
	}
	if raw, ok := settings["env"]; ok {
		cfg.EnvPath, err = asString(raw)
		if err != nil {
			return nil, errors.New("env: " + err.Error())
		}
	}
	if raw, ok := settings["output"]; ok {
		cfg.OutputDir, err = asString(raw)
		if err != nil {
			return nil, errors.New("output: " + err.Error())
		}
	}
	if raw, ok := settings["testcase"]; ok {
		cfg.TestcaseFilter, err = asString(raw)
		if err != nil {
			return nil, errors.New("testcase: " + err.Error())
		}
	}

	if fs.Changed("env") {
		cfg.EnvPath, _ = fs.GetString("env")
	}
	if fs.Changed("output") {
		cfg.OutputDir, _ = fs.GetString("output")
	}
	if fs.Changed("testcase") {
		cfg.TestcaseFilter, _ = fs.GetString("testcase")
	}
	cfg.Verbosity, _ = fs.GetCount("verbose")
	cfg.JSONOutput, _ = fs.GetBool("json")

	// Positional arguments override a testplan list from the config file.
	if positional := fs.Args(); len(positional) > 0 {
		cfg.Testplans = positional
	}

	cfg.EnvPath = strings.TrimSpace(cfg.EnvPath)
	cfg.OutputDir = strings.TrimSpace(cfg.OutputDir)
	return cfg, nil
}

// LoadPlot parses the reporting tool's command line (and optional config
// file) into a PlotConfig. Enum and path validation is left to Validate,
// except for enums that must parse to typed values here.
func LoadPlot(args []string) (*PlotConfig, error) {
	cmd := newPlotCommand()
	fs, err := parse(cmd.Flags(), args, func() { displayHelp(cmd) })
	if err != nil {
		return nil, err
	}

	settings, err := fileSettings(fs)
	if err != nil {
		return nil, err
	}

	cfg := &PlotConfig{}
	str := func(flag string, keys ...string) string {
		val := ""
		for _, key := range append(keys, flag) {
			if raw, ok := settings[key]; ok {
				if s, err := asString(raw); err == nil {
					val = s
				}
			}
		}
		if fs.Changed(flag) {
			val, _ = fs.GetString(flag)
		} else if val == "" {
			val, _ = fs.GetString(flag)
		}
		return strings.TrimSpace(val)
	}

	if cfg.Kind, err = chart.ParseKind(str("kind")); err != nil {
		return nil, err
	}
	cfg.OutputRoot = str("output-root", "output_root", "outputroot")
	cfg.Name = str("name")
	if cfg.Metric, err = metrics.ParseMetric(str("metric")); err != nil {
		return nil, err
	}
	if cfg.XKey, err = metrics.ParseXKey(str("x-key", "x_key", "xkey")); err != nil {
		return nil, err
	}
	if cfg.XScale, err = chart.ParseScale(str("x-scale", "x_scale", "xscale")); err != nil {
		return nil, err
	}
	if cfg.YScale, err = chart.ParseScale(str("y-scale", "y_scale", "yscale")); err != nil {
		return nil, err
	}
	cfg.Title = str("title")
	cfg.XLabel = str("x-label", "x_label", "xlabel")
	cfg.YLabel = str("y-label", "y_label", "ylabel")
	cfg.LabelTemplate = str("label")

	cfg.Show = boolSetting(fs, settings, "show")
	cfg.Save = boolSetting(fs, settings, "save")
	cfg.DumpAggregate = boolSetting(fs, settings, "dump-aggregate", "dump_aggregate")
	cfg.Verbosity, _ = fs.GetCount("verbose")

	rawFormats, _ := fs.GetStringSlice("save-format")
	if len(rawFormats) == 0 {
		if raw, ok := settings["save_format"]; ok {
			if formats, err := asStringSlice(raw); err == nil {
				rawFormats = formats
			}
		}
	}
	for _, rf := range rawFormats {
		f, err := chart.ParseFormat(rf)
		if err != nil {
			return nil, err
		}
		cfg.Formats = append(cfg.Formats, f)
	}

	return cfg, nil
}

func parse(fs *pflag.FlagSet, args []string, showHelp func()) (*pflag.FlagSet, error) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			showHelp()
			return nil, ErrHelpRequested
		}
		return nil, err
	}
	if helpFlag := fs.Lookup("help"); helpFlag != nil {
		if wantsHelp, err := strconv.ParseBool(helpFlag.Value.String()); err == nil && wantsHelp {
			showHelp()
			return nil, ErrHelpRequested
		}
	}
	return fs, nil
}

// fileSettings loads the optional --config file through viper.
func fileSettings(fs *pflag.FlagSet) (map[string]interface{}, error) {
	configPath, _ := fs.GetString("config")
	if configPath == "" {
		return nil, nil
	}
	v := viper.New()
	v.SetConfigFile(configPath)
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}
	return v.AllSettings(), nil
}

func boolSetting(fs *pflag.FlagSet, settings map[string]interface{}, flag string, keys ...string) bool {
	val := false
	for _, key := range append(keys, flag) {
		if raw, ok := settings[key]; ok {
			if b, ok := raw.(bool); ok {
				val = b
			}
		}
	}
	if fs.Changed(flag) {
		val, _ = fs.GetBool(flag)
	}
	return val
}

func asString(raw interface{}) (string, error) {
	switch v := raw.(type) {
	case string:
		return v, nil
	case int:
		return strconv.Itoa(v), nil
	default:
		return "", errors.New("expected a string value")
	}
}

func asStringSlice(raw interface{}) ([]string, error) {
	switch v := raw.(type) {
	case []string:
		return v, nil
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, entry := range v {
			s, err := asString(entry)
			if err != nil {
				return nil, err
			}
			out = append(out, s)
		}
		return out, nil
	case string:
		return []string{v}, nil
	default:
		return nil, errors.New("expected a list of strings")
	}
}
