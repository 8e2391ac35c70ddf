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

	"github.com/spf13/cobra"

	"github.com/mssola/mihi/internal/app"
	"github.com/mssola/mihi/internal/infrastructure/database"
)

var nukeCmd = &cobra.Command{
	Use:   "nuke",
	Short: "Drop every table, words included",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			return errors.New("refusing to drop the database without --yes")
		}

		return withContainer(func(c *app.Container) error {
			if err := database.Nuke(cmd.Context(), c.Driver); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Database dropped. Run 'mihi init' to start over.")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(nukeCmd)
	nukeCmd.Flags().Bool("yes", false, "confirm that all the data can be dropped")
}
