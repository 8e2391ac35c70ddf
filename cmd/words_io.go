/*
Copyright © 2025 Miquel Sabaté Solà <mssola@mssola.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mssola/mihi/internal/app"
	"github.com/mssola/mihi/internal/entity"
)

const (
	exportOutputKey = "words.export.output"
	exportGzipKey   = "words.export.gzip"
	importGzipKey   = "words.import.gzip"
)

var wordsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export every word as YAML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		outputPath := viper.GetString(exportOutputKey)
		gzipEnabled := viper.GetBool(exportGzipKey)
		if outputPath == "" {
			outputPath = "-"
		}
		if !gzipEnabled && outputPath != "-" && strings.HasSuffix(strings.ToLower(outputPath), ".gz") {
			gzipEnabled = true
		}

		return withContainer(func(c *app.Container) error {
			words, err := c.Words.Export(cmd.Context())
			if err != nil {
				return err
			}

			var (
				writer  = cmd.OutOrStdout()
				closers []func() error
			)
			if outputPath != "-" {
				file, createErr := os.Create(filepath.Clean(outputPath))
				if createErr != nil {
					return fmt.Errorf("create output file: %w", createErr)
				}
				writer = file
				closers = append(closers, file.Close)
			}
			if gzipEnabled {
				gzw := gzip.NewWriter(writer)
				writer = gzw
				closers = append([]func() error{gzw.Close}, closers...)
			}

			err = encodeWords(writer, words)
			for _, closer := range closers {
				if cerr := closer(); cerr != nil && err == nil {
					err = cerr
				}
			}
			if err != nil {
				return err
			}
			if outputPath != "-" {
				cmd.PrintErrf("Exported %d words to %s\n", len(words), outputPath)
			}
			return nil
		})
	},
}

var wordsImportCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import words from a YAML file, or from standard input",
	Long: `Import the words listed in a YAML file as produced by 'mihi words export'.
Words that already exist are updated. Invalid words are reported and skipped.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		inputPath := "-"
		if len(args) == 1 {
			inputPath = args[0]
		}
		gzipEnabled := viper.GetBool(importGzipKey)
		if !gzipEnabled && inputPath != "-" && strings.HasSuffix(strings.ToLower(inputPath), ".gz") {
			gzipEnabled = true
		}

		var (
			reader  = cmd.InOrStdin()
			closers []func() error
		)
		if inputPath != "-" {
			file, openErr := os.Open(filepath.Clean(inputPath))
			if openErr != nil {
				return fmt.Errorf("open input file: %w", openErr)
			}
			reader = file
			closers = append(closers, file.Close)
		}
		defer func() {
			for _, closer := range closers {
				if cerr := closer(); cerr != nil && err == nil {
					err = cerr
				}
			}
		}()
		if gzipEnabled {
			gzr, gzErr := gzip.NewReader(reader)
			if gzErr != nil {
				return fmt.Errorf("create gzip reader: %w", gzErr)
			}
			reader = gzr
			closers = append([]func() error{gzr.Close}, closers...)
		}

		words, err := decodeWords(reader)
		if err != nil {
			return err
		}

		return withContainer(func(c *app.Container) error {
			report, err := c.Words.Import(cmd.Context(), words)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %d words, updated %d.\n", report.Created, report.Updated)
			for _, failure := range report.Failures {
				cmd.PrintErrf("skipped '%s': %v\n", failure.Enunciated, failure.Err)
			}
			if len(report.Failures) > 0 {
				return fmt.Errorf("%d words could not be imported", len(report.Failures))
			}
			return nil
		})
	},
}

func init() {
	wordsCmd.AddCommand(wordsExportCmd, wordsImportCmd)

	wordsExportCmd.Flags().StringP("output", "o", "-", "output file, - for standard output")
	wordsExportCmd.Flags().Bool("gzip", false, "compress the output with gzip")
	bindFlagToViper(exportOutputKey, wordsExportCmd.Flags().Lookup("output"))
	bindFlagToViper(exportGzipKey, wordsExportCmd.Flags().Lookup("gzip"))

	wordsImportCmd.Flags().Bool("gzip", false, "the input is compressed with gzip")
	bindFlagToViper(importGzipKey, wordsImportCmd.Flags().Lookup("gzip"))
}

func encodeWords(w io.Writer, words []entity.Word) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(words); err != nil {
		return fmt.Errorf("encode words: %w", err)
	}
	return enc.Close()
}

// decodeWords reads a YAML list of words. Missing fields keep the defaults
// of a new word.
func decodeWords(r io.Reader) ([]entity.Word, error) {
	var nodes []yaml.Node
	if err := yaml.NewDecoder(r).Decode(&nodes); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode words: %w", err)
	}

	words := make([]entity.Word, 0, len(nodes))
	for i := range nodes {
		w := entity.NewWord()
		if err := nodes[i].Decode(&w); err != nil {
			return nil, fmt.Errorf("decode word #%d: %w", i+1, err)
		}
		words = append(words, w)
	}
	return words, nil
}
