package config

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// newRunCommand creates the session-runner cobra command with all flags
// configured.
func newRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "benchrig [flags] <testplan>...",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	cmd.SetOut(os.Stdout)
	configureRunFlags(cmd.Flags())
	return cmd
}

func configureRunFlags(flags *pflag.FlagSet) {
	flags.StringP("env", "e", "", "Path to the environment definition (required)")
	flags.StringP("output", "o", "", "Output directory for result artifacts (default: randomized path under the temp root)")
	flags.String("testcase", "", "Run only testcases whose name matches this filter")
	flags.CountP("verbose", "v", "Increase verbosity (repeatable)")
	flags.Bool("json", false, "Emit the post-run summary as JSON")
	flags.String("config", "", "Path to configuration file (JSON or YAML)")
}

// newPlotCommand creates the reporting-tool cobra command with all flags
// configured.
func newPlotCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "benchplot [flags]",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	cmd.SetOut(os.Stdout)
	configurePlotFlags(cmd.Flags())
	return cmd
}

func configurePlotFlags(flags *pflag.FlagSet) {
	flags.String("kind", "line", "Plot kind: 'line' or 'scatter'")
	flags.StringP("output-root", "r", "", "Root of the result tree to aggregate (required)")
	flags.StringP("metric", "m", "iops", "Metric to plot: 'iops', 'bw' or 'lat'")
	flags.StringP("x-key", "x", "iodepth", "Context key for the x axis: 'iodepth' or 'numjobs'")
	flags.String("x-scale", "linear", "X axis scale: linear, log, symlog or logit")
	flags.String("y-scale", "linear", "Y axis scale: linear, log, symlog or logit")
	flags.String("title", "", "Plot title (default: derived from metric and x key)")
	flags.String("x-label", "", "X axis label override")
	flags.String("y-label", "", "Y axis label override")
	flags.Bool("show", false, "Open the rendered plot with the platform viewer")
	flags.Bool("save", false, "Save the plot to image files")
	flags.StringSlice("save-format", nil, "Image format to save (repeatable: png, pdf)")
	flags.Bool("dump-aggregate", false, "Serialize the aggregated series next to the images")
	flags.StringP("label", "l", "", "Series label template, e.g. 'bs={{bs}}'")
	flags.String("name", "", "Base name for output artifacts (default: <metric>_vs_<x-key>)")
	flags.CountP("verbose", "v", "Increase verbosity (repeatable)")
	flags.String("config", "", "Path to configuration file (JSON or YAML)")
}

// displayHelp prints the help message for a command.
func displayHelp(cmd *cobra.Command) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Usage: %s\n\nFlags:\n", cmd.UseLine())
	fs := cmd.Flags()
	fs.SetOutput(out)
	fs.PrintDefaults()
}
