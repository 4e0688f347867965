// Command vellum runs the rendering pipeline on a document: parse an HTML
// file, load a pre-parsed stylesheet from its JSON interchange form, resolve
// styles, lay the styled tree out against a viewport and dump the requested
// tree. Painting the resulting boxes is left to a consumer.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/vellum-dev/vellum/boxes"
	"github.com/vellum-dev/vellum/css"
	"github.com/vellum-dev/vellum/dom"
	"github.com/vellum-dev/vellum/layout"
	"github.com/vellum-dev/vellum/logger"
	"github.com/vellum-dev/vellum/style"
	"github.com/vellum-dev/vellum/utils"
)

const version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "vellum <document.html> <stylesheet.json>",
		Short:        "resolve styles and lay a document out into a box tree",
		Version:      version,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if viper.GetBool("quiet") {
				logger.SetLoggers(zap.NewNop().Sugar(), nil)
			}
			return run(args[0], args[1])
		},
	}

	cmd.Flags().Float64("width", 1024, "viewport width in pixels")
	cmd.Flags().Float64("height", 768, "viewport height in pixels")
	cmd.Flags().String("dump", "layout", "tree to dump: dom, style or layout")
	cmd.Flags().Bool("quiet", false, "silence progress logging")

	viper.SetEnvPrefix("VELLUM")
	viper.AutomaticEnv()
	for _, flag := range []string{"width", "height", "dump", "quiet"} {
		_ = viper.BindPFlag(flag, cmd.Flags().Lookup(flag))
	}
	return cmd
}

func run(docPath, sheetPath string) error {
	root, err := loadDocument(docPath)
	if err != nil {
		return err
	}
	sheet, err := loadStylesheet(sheetPath)
	if err != nil {
		return err
	}

	styled := style.Resolve(root, sheet)

	switch dump := viper.GetString("dump"); dump {
	case "dom":
		dom.PrintTree(os.Stdout, root)
	case "style":
		style.PrintTree(os.Stdout, styled)
	case "layout":
		var viewport boxes.Dimensions
		viewport.Content.Width = utils.Fl(viper.GetFloat64("width"))
		viewport.Content.Height = utils.Fl(viper.GetFloat64("height"))

		tree, err := layout.Layout(styled, viewport)
		if err != nil {
			return err
		}
		boxes.PrintTree(os.Stdout, tree)
	default:
		return fmt.Errorf("unknown dump target %q", dump)
	}
	return nil
}

func loadDocument(path string) (*dom.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return dom.ParseBody(f)
}

func loadStylesheet(path string) (*css.Stylesheet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return css.LoadStylesheet(f)
}
