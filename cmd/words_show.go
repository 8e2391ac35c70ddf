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
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/mssola/mihi/internal/app"
	"github.com/mssola/mihi/internal/entity"
	"github.com/mssola/mihi/internal/repository"
	"github.com/mssola/mihi/internal/usecase"
)

var wordsShowCmd = &cobra.Command{
	Use:   "show [enunciate]...",
	Short: "Print the declension table of nouns and adjectives",
	Long: `Print the declension table of the given words. With --all every noun and
adjective of the dictionary is printed instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")
		asJSON, _ := cmd.Flags().GetBool("json")
		if len(args) == 0 && !all {
			return fmt.Errorf("give at least one enunciate or use --all")
		}

		return withContainer(func(c *app.Container) error {
			ctx := cmd.Context()

			var words []*entity.Word
			if all {
				listed, _, err := c.Words.List(ctx, &repository.ListWordQuery{OrderBy: "enunciated"}, "")
				if err != nil {
					return err
				}
				words = lo.Filter(listed, func(w *entity.Word, _ int) bool { return w.Inflectable() })
			} else {
				for _, enunciated := range args {
					w, err := c.Words.Find(ctx, enunciated)
					if err != nil {
						return fmt.Errorf("'%s': %w", enunciated, err)
					}
					words = append(words, w)
				}
			}

			inflections, err := c.Inflections.InflectAll(ctx, words)
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(inflections)
			}
			for i, inf := range inflections {
				if i > 0 {
					fmt.Fprintln(cmd.OutOrStdout())
				}
				if err := printInflection(cmd.OutOrStdout(), inf); err != nil {
					return err
				}
			}
			return nil
		})
	},
}

func init() {
	wordsCmd.AddCommand(wordsShowCmd)
	wordsShowCmd.Flags().Bool("all", false, "print every noun and adjective")
	wordsShowCmd.Flags().Bool("json", false, "print the tables as JSON")
}

func printInflection(out io.Writer, inf *usecase.Inflection) error {
	fmt.Fprintf(out, "%s (%s)\n", inf.Word.Enunciated, describeWord(inf.Word))
	if t := inf.Word.TranslationFor(entity.LanguageEnglish); t != "" {
		fmt.Fprintf(out, "  %s\n", t)
	}
	fmt.Fprintln(out)

	tw := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	if len(inf.Rows) > 0 && len(inf.Rows[0].Cells) > 1 {
		for _, cell := range inf.Rows[0].Cells {
			fmt.Fprintf(tw, "\t%s", cell.Gender)
		}
		fmt.Fprintln(tw)
	}
	for _, row := range inf.Rows {
		fmt.Fprint(tw, row.Case)
		for _, cell := range row.Cells {
			fmt.Fprintf(tw, "\t%s", cell.Rendered)
		}
		fmt.Fprintln(tw)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if inf.Comparative == "" && inf.Superlative == "" && inf.Adverb == "" {
		return nil
	}
	fmt.Fprintln(out)
	tw = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "comparative:\t%s\n", inf.Comparative)
	fmt.Fprintf(tw, "superlative:\t%s\n", inf.Superlative)
	fmt.Fprintf(tw, "adverb:\t%s\n", inf.Adverb)
	return tw.Flush()
}
