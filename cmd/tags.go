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
	"strings"

	"github.com/spf13/cobra"

	"github.com/mssola/mihi/internal/app"
	"github.com/mssola/mihi/internal/entity"
)

// tagsCmd groups the commands that manage tags.
var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "Manage the tags words can be grouped with",
}

var tagsCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a tag",
	Long: `Create a tag. Names are stored in lowercase and cannot contain commas, so
"Lesson 1" and "lesson 1" are the same tag.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withContainer(func(c *app.Container) error {
			tag, err := c.Tags.Create(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created '%s'.\n", tag.Name)
			return nil
		})
	},
}

var tagsLsCmd = &cobra.Command{
	Use:     "ls [filter]",
	Aliases: []string{"list"},
	Short:   "List tags, optionally only those containing the filter",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		word, _ := cmd.Flags().GetString("word")

		return withContainer(func(c *app.Container) error {
			var (
				tags []entity.Tag
				err  error
			)
			if word != "" {
				tags, err = c.Tags.For(cmd.Context(), word)
			} else {
				tags, err = c.Tags.List(cmd.Context(), strings.Join(args, ""))
			}
			if err != nil {
				return err
			}
			for _, t := range tags {
				fmt.Fprintln(cmd.OutOrStdout(), t.Name)
			}
			return nil
		})
	},
}

var tagsRmCmd = &cobra.Command{
	Use:     "rm <name>",
	Aliases: []string{"delete"},
	Short:   "Remove a tag, detaching it from every word",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withContainer(func(c *app.Container) error {
			if err := c.Tags.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed '%s'.\n", args[0])
			return nil
		})
	},
}

var wordsTagCmd = &cobra.Command{
	Use:     "tag <enunciate> <tag>...",
	Short:   "Attach tags to a word",
	Example: `  mihi words tag "rosa, rosae" lesson-1 flowers`,
	Args:    cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withContainer(func(c *app.Container) error {
			return c.Tags.Attach(cmd.Context(), args[0], args[1:]...)
		})
	},
}

var wordsUntagCmd = &cobra.Command{
	Use:   "untag <enunciate> <tag>...",
	Short: "Detach tags from a word",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withContainer(func(c *app.Container) error {
			return c.Tags.Detach(cmd.Context(), args[0], args[1:]...)
		})
	},
}

func init() {
	rootCmd.AddCommand(tagsCmd)
	tagsCmd.AddCommand(tagsCreateCmd, tagsLsCmd, tagsRmCmd)
	wordsCmd.AddCommand(wordsTagCmd, wordsUntagCmd)

	tagsLsCmd.Flags().String("word", "", "list the tags of this word instead")
}
