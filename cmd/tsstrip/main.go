// Package main implements the tsstrip CLI.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tsstrip/tsstrip/pkg/buffer"
	"github.com/tsstrip/tsstrip/pkg/config"
	"github.com/tsstrip/tsstrip/pkg/diag"
	"github.com/tsstrip/tsstrip/pkg/tsstrip"
	"github.com/tsstrip/tsstrip/pkg/ui"
)

var version = "0.1.0-alpha"

func main() {
	rootCmd := &cobra.Command{
		Use:          "tsstrip",
		Short:        "tsstrip - strip TypeScript type syntax to plain JavaScript",
		Version:      version,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(stripCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func stripCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "strip [file.ts]",
		Short: "Strip type syntax from a .ts/.tsx file, writing plain JavaScript",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStrip(args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file path (default: replace .ts/.tsx with .js)")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			ui.PrintVersionInfo(version)
		},
	}
}

func runStrip(inputPath, outputPath string) error {
	cfg, err := config.Load("")
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if outputPath == "" {
		outputPath = deriveOutputPath(inputPath, cfg.OutputSuffix)
	}

	src, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", inputPath, err)
	}

	ui.PrintHeader(version)
	ui.PrintTranspile(inputPath, outputPath)

	start := time.Now()
	buf := buffer.NewByteBuffer(src)
	result, err := tsstrip.Transpile(cfg.SourceKind, buf, cliLogger{})
	if err != nil {
		return fmt.Errorf("transpiling %s: %w", inputPath, err)
	}

	if result.Panicked {
		ui.PrintPanicked(inputPath)
		for _, d := range result.Diagnostics {
			fmt.Fprint(os.Stderr, diag.Render(d, src, inputPath))
		}
		return fmt.Errorf("parse failed")
	}

	if cfg.KeepEmptyDeclareWarning {
		for _, d := range result.Diagnostics {
			ui.PrintWarning(d.Message)
		}
	}

	if err := os.WriteFile(outputPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}

	ui.PrintSuccess(time.Since(start))
	return nil
}

func deriveOutputPath(inputPath, suffix string) string {
	for _, ext := range []string{".tsx", ".ts"} {
		if strings.HasSuffix(inputPath, ext) {
			return inputPath[:len(inputPath)-len(ext)] + suffix
		}
	}
	return inputPath + suffix
}

// cliLogger wires tsstrip.Logger to the ui package's warning/error lines.
type cliLogger struct{}

func (cliLogger) Debugf(format string, args ...any) {}
func (cliLogger) Warnf(format string, args ...any)  { ui.PrintWarning(fmt.Sprintf(format, args...)) }
func (cliLogger) Errorf(format string, args ...any) {
	fmt.Fprintln(os.Stderr, fmt.Sprintf(format, args...))
}
