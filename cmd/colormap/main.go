package main

import (
	"fmt"
	"os"

	"github.com/jsvensson/colormap"
	"github.com/jsvensson/colormap/internal/config"
	"github.com/jsvensson/colormap/internal/format"
	"github.com/jsvensson/colormap/segmented"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

var (
	flagConfig  string
	flagLevels  int
	flagReverse bool
	flagVerbose int
	flagCheck   bool
	version     = "dev" // Injected at build time via ldflags
)

var rootCmd = &cobra.Command{
	Use:     "colormap",
	Short:   "Convert colors and build colormaps",
	Version: version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		commonlog.Configure(flagVerbose, nil)
	},
	SilenceUsage: true,
}

var fmtCmd = &cobra.Command{
	Use:   "fmt [files...]",
	Short: "Format colormap definition files",
	Long:  "Format one or more definition files in-place. Prints the name of each file that was modified.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFmt,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "colormap definition file")
	pf.IntVar(&flagLevels, "levels", colormap.DefaultLevels, "number of colormap levels")
	pf.BoolVar(&flagReverse, "reverse", false, "reverse the colormap")
	pf.CountVarP(&flagVerbose, "verbose", "v", "increase log verbosity (repeatable)")

	fmtCmd.Flags().BoolVarP(&flagCheck, "check", "c", false, "check if files are formatted (do not write changes)")

	rootCmd.AddCommand(convertCmd, colorCmd, showCmd, pngCmd, exportCmd, namesCmd, listCmd, fmtCmd, versionCmd)
}

// newBuilder returns a builder over the built-in colormaps plus the
// definitions of --config.
func newBuilder() (*colormap.Builder, *config.File, error) {
	b := colormap.NewBuilder(segmented.NewRegistry())
	if flagConfig == "" {
		return b, nil, nil
	}
	f, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("loading definitions: %w", err)
	}
	if err := f.Register(b); err != nil {
		return nil, nil, err
	}
	return b, f, nil
}

// buildOptions turns the persistent flags into builder options. --levels
// only applies when given so definitions keep their own level count.
func buildOptions(cmd *cobra.Command) []colormap.Option {
	opts := []colormap.Option{colormap.WithReverse(flagReverse)}
	if cmd.Flags().Changed("levels") {
		opts = append(opts, colormap.WithLevels(flagLevels))
	}
	return opts
}

// getColormap builds a colormap from 1 to 3 names with Builder.Get.
func getColormap(cmd *cobra.Command, b *colormap.Builder, names []string) (*segmented.Colormap, error) {
	cm, err := b.Get(names, buildOptions(cmd)...)
	if err != nil {
		return nil, err
	}
	sc, ok := cm.(*segmented.Colormap)
	if !ok {
		return nil, fmt.Errorf("unexpected colormap type %T", cm)
	}
	return sc, nil
}

func runFmt(cmd *cobra.Command, args []string) error {
	hasErrors := false
	needsFormatting := false

	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error reading %s: %v\n", path, err)
			hasErrors = true
			continue
		}

		content := string(data)
		formatted, err := format.Format(content)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error formatting %s: %v\n", path, err)
			hasErrors = true
			continue
		}

		if formatted == content {
			continue
		}

		fmt.Fprintln(cmd.OutOrStdout(), path)
		needsFormatting = true

		if !flagCheck {
			if err := os.WriteFile(path, []byte(formatted), 0o644); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error writing %s: %v\n", path, err)
				hasErrors = true
			}
		}
	}

	if hasErrors || (flagCheck && needsFormatting) {
		os.Exit(1)
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
