package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/contentkit/richhtml/pkg/config"
	"github.com/contentkit/richhtml/pkg/logging"
	"github.com/contentkit/richhtml/pkg/renderer"
	"github.com/contentkit/richhtml/pkg/richtext"
)

var (
	renderOutput string
	renderRaw    bool
	renderXHTML  bool

	renderCmd = &cobra.Command{
		Use:   "render [file]",
		Short: "Render a JSON rich-text document to HTML",
		Long: `Render reads a type-tagged JSON rich-text document from a file (or stdin
when no file is given) and writes the rendered HTML to stdout or, with -o,
to a file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runRender,
	}
)

func init() {
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "Write HTML to this file instead of stdout")
	renderCmd.Flags().BoolVar(&renderRaw, "raw", false, "Do not HTML-escape text and attribute values (trusted input only)")
	renderCmd.Flags().BoolVar(&renderXHTML, "xhtml", false, "Emit self-closing void elements (<img ... />)")
}

func runRender(cmd *cobra.Command, args []string) error {
	logger := logging.GetLogger("cmd.render")
	defer logging.LogDuration(time.Now(), "render")

	overrides := map[string]interface{}{}
	if cmd.Flags().Changed("raw") {
		overrides["render.escape"] = !renderRaw
	}
	if cmd.Flags().Changed("xhtml") {
		overrides["render.xhtml"] = renderXHTML
	}

	cfg, err := config.LoadWithOverrides(cfgFile, overrides)
	if err != nil {
		return err
	}

	var in io.Reader = os.Stdin
	source := "stdin"
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open document: %w", err)
		}
		defer f.Close()
		in, source = f, args[0]
	}

	doc, err := richtext.DecodeDocument(in)
	if err != nil {
		return err
	}
	logger.Info().Str("source", source).Int("topLevelNodes", len(doc.Content)).Msg("document loaded")

	reg := renderer.New(cfg.RendererOptions())
	html, err := reg.RenderDocument(doc)
	if err != nil {
		return err
	}

	if renderOutput == "" {
		fmt.Println(html)
		return nil
	}
	if err := os.WriteFile(renderOutput, []byte(html), 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	logger.Info().Str("path", renderOutput).Int("bytes", len(html)).Msg("HTML written")
	return nil
}
