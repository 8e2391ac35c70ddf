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
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mssola/mihi/internal/entity"
)

var flagsCmd = &cobra.Command{
	Use:   "flags",
	Short: "List the flags a word can carry",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if kinds, _ := cmd.Flags().GetBool("kinds"); kinds {
			return printKinds(cmd.OutOrStdout())
		}
		return printFlags(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(flagsCmd)
	flagsCmd.Flags().Bool("kinds", false, "list the paradigms available per category and declension instead")
}

func printFlags(out io.Writer) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, info := range entity.KnownFlags() {
		fmt.Fprintf(tw, "%s\t%s\n", info.Name, info.Description)
	}
	return tw.Flush()
}

func printKinds(out io.Writer) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, category := range []entity.Category{entity.CategoryNoun, entity.CategoryAdjective} {
		for d := entity.DeclensionFirst; d <= entity.DeclensionOther; d++ {
			for _, kind := range entity.KindsFor(category, d) {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", category, d, kind, kind.Describe())
			}
		}
	}
	return tw.Flush()
}
