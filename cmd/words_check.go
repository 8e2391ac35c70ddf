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
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mssola/mihi/internal/app"
	"github.com/mssola/mihi/internal/usecase"
)

var wordsCheckCmd = &cobra.Command{
	Use:   "check <enunciate> <file>",
	Short: "Check a declension table written by hand",
	Long: `Compare the answers in a YAML file, or standard input when the file is "-",
against the declension table of the word. Each answer names the case, the
gender for adjectives, and the value written as "singular, plural":

  - case: nominative
    value: rosa, rosae
  - case: genitive
    value: rosae, rosārum`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		answers, err := readAnswers(cmd.InOrStdin(), args[1])
		if err != nil {
			return err
		}

		return withContainer(func(c *app.Container) error {
			mismatches, err := c.Inflections.Check(cmd.Context(), args[0], answers)
			if err != nil {
				return err
			}
			if len(mismatches) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "All correct!")
				return nil
			}
			if err := printMismatches(cmd.OutOrStdout(), mismatches); err != nil {
				return err
			}
			return fmt.Errorf("%d mistakes found", len(mismatches))
		})
	},
}

func init() {
	wordsCmd.AddCommand(wordsCheckCmd)
}

func readAnswers(stdin io.Reader, path string) ([]usecase.Answer, error) {
	reader := stdin
	if path != "-" {
		file, err := os.Open(filepath.Clean(path))
		if err != nil {
			return nil, fmt.Errorf("open answers: %w", err)
		}
		defer file.Close()
		reader = file
	}

	var answers []usecase.Answer
	if err := yaml.NewDecoder(reader).Decode(&answers); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("no answers given")
		}
		return nil, fmt.Errorf("decode answers: %w", err)
	}
	return answers, nil
}

func printMismatches(out io.Writer, mismatches []usecase.Mismatch) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CASE\tGENDER\tEXPECTED\tGOT")
	for _, m := range mismatches {
		expected, got := m.Expected, m.Got
		if expected == "" {
			expected = "-"
		}
		if got == "" {
			got = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", m.Case, m.Gender, expected, got)
	}
	return tw.Flush()
}
