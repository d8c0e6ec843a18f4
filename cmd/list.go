package cmd

import (
	"fmt"
	"os"

	"github.com/mj1618/winlist/internal/config"
	"github.com/mj1618/winlist/internal/model"
	"github.com/mj1618/winlist/internal/output"
	"github.com/mj1618/winlist/internal/platform"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List on-screen windows",
	Long: `List the on-screen windows front to back. Windows the window server could
not describe are skipped and counted on stderr.

Examples:
  winlist list
  winlist list --app Safari --format yaml
  winlist list --layer 0 --bbox 0,0,1440,900
  winlist list --apps
  winlist list --raw`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().Bool("apps", false, "List owning applications instead of windows")
	listCmd.Flags().Bool("raw", false, "Print the window server's raw descriptions without decoding")
	listCmd.Flags().Int("pid", 0, "Filter windows by PID")
	listCmd.Flags().String("app", "", "Filter windows by app name")
	listCmd.Flags().Int("layer", config.NoLayer, "Filter windows by window-server layer (-1 = all)")
	listCmd.Flags().String("bbox", "", "Only windows intersecting x,y,w,h")
	listCmd.Flags().Bool("pretty", false, "Pretty-print JSON output")
}

func listOptions(cmd *cobra.Command) (platform.ListOptions, error) {
	apps, _ := cmd.Flags().GetBool("apps")
	raw, _ := cmd.Flags().GetBool("raw")
	pid, _ := cmd.Flags().GetInt("pid")
	appName, _ := cmd.Flags().GetString("app")
	bboxStr, _ := cmd.Flags().GetString("bbox")

	opts := platform.ListOptions{
		Raw:  raw,
		Apps: apps,
		PID:  pid,
		App:  appName,
	}
	if raw && apps {
		return opts, fmt.Errorf("--raw and --apps cannot be combined")
	}

	// The configured default layer narrows decoded listings only; raw output
	// ignores it, while an explicit --layer still conflicts with --raw.
	layer := config.NoLayer
	if !raw {
		layer = cfg.List.Layer
	}
	if cmd.Flags().Changed("layer") {
		layer, _ = cmd.Flags().GetInt("layer")
	}
	if layer != config.NoLayer {
		opts.Layer = &layer
	}

	if bboxStr != "" {
		bbox, err := platform.ParseBBox(bboxStr)
		if err != nil {
			return opts, err
		}
		opts.BBox = bbox
	}
	return opts, nil
}

func runList(cmd *cobra.Command, args []string) error {
	opts, err := listOptions(cmd)
	if err != nil {
		return err
	}
	if opts.Raw && !opts.Filter().IsZero() {
		return fmt.Errorf("filters need decoded windows and cannot be combined with --raw")
	}

	enumOpts := []platform.Option{platform.WithLogger(logger)}
	if opts.Raw {
		enumOpts = append(enumOpts, platform.RawDescriptions())
	}
	report, err := platform.List(enumOpts...)
	if err != nil {
		return err
	}
	if n := report.SkippedCount(); n > 0 {
		fmt.Fprintf(os.Stderr, "skipped %d of %d windows (use --verbose for details)\n", n, report.Total)
	}

	if opts.Raw {
		return output.Print(output.DescriptionList(report.Descriptions))
	}

	windows := model.FilterWindows(report.Windows, opts.Filter())
	if opts.Apps {
		return output.Print(output.AppList(model.Apps(windows)))
	}
	return output.Print(output.WindowList(windows))
}
