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
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/mssola/mihi/internal/app"
	"github.com/mssola/mihi/internal/entity"
	"github.com/mssola/mihi/internal/repository"
)

var wordsLsCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List the words of the dictionary",
	Example: `  mihi words ls --category noun --kind us
  mihi words ls --filter "declension == 3 && 'onlyplural' in flags"
  mihi words ls --tag lesson-1 --tag lesson-2
  mihi words ls --order-by "weight desc, enunciated" --page 2`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		query, filter, err := listQueryFromFlags(cmd)
		if err != nil {
			return err
		}

		return withContainer(func(c *app.Container) error {
			words, total, err := c.Words.List(cmd.Context(), query, filter)
			if err != nil {
				return err
			}
			return printWords(cmd.OutOrStdout(), words, total)
		})
	},
}

func init() {
	wordsCmd.AddCommand(wordsLsCmd)

	f := wordsLsCmd.Flags()
	f.String("filter", "", "CEL expression over enunciated, particle, kind, category, gender, declension, weight, regular, locative and flags")
	f.String("category", "", "only words of this category")
	f.Int("declension", 0, "only words of this declension")
	f.String("kind", "", "only words of this paradigm")
	f.String("keyword", "", "only words whose enunciate contains this text")
	f.StringSlice("tag", nil, "only words with any of these tags")
	f.String("order-by", "", `ordering, e.g. "weight desc, enunciated"`)
	f.Int32("page", 1, "page number")
	f.Int32("page-size", 50, "words per page, 0 for all of them")
}

func listQueryFromFlags(cmd *cobra.Command) (*repository.ListWordQuery, string, error) {
	f := cmd.Flags()
	query := &repository.ListWordQuery{}

	if raw, _ := f.GetString("category"); raw != "" {
		category, err := entity.ParseCategory(raw)
		if err != nil {
			return nil, "", err
		}
		query.Category = category
	}
	declension, _ := f.GetInt("declension")
	query.Declension = entity.Declension(declension)
	if declension != 0 && !query.Declension.Valid() {
		return nil, "", fmt.Errorf("%w: %d", entity.ErrUnknownDeclension, declension)
	}
	kind, _ := f.GetString("kind")
	query.Kind = entity.Kind(kind)
	query.Keyword, _ = f.GetString("keyword")
	query.Tags, _ = f.GetStringSlice("tag")
	query.OrderBy, _ = f.GetString("order-by")
	query.PageNo, _ = f.GetInt32("page")
	query.PageSize, _ = f.GetInt32("page-size")
	if query.PageNo < 0 || query.PageSize < 0 {
		return nil, "", fmt.Errorf("page and page size cannot be negative")
	}

	filter, _ := f.GetString("filter")
	return query, filter, nil
}

func printWords(out io.Writer, words []*entity.Word, total int64) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ENUNCIATE\tCATEGORY\tKIND\tWEIGHT\tFLAGS\tTRANSLATION")
	for _, w := range words {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\n",
			w.Enunciated, w.Category, lo.Ternary(w.Kind == "", "-", string(w.Kind)), w.Weight,
			strings.Join(w.Flags.Names(), ","), w.TranslationFor(entity.LanguageEnglish))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(out, "%d of %d words\n", len(words), total)
	return err
}
