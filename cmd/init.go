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

	"github.com/spf13/cobra"

	"github.com/mssola/mihi/internal/app"
	"github.com/mssola/mihi/internal/infrastructure/database"
)

// initCmd creates the schema and loads the forms catalog.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the database and load the forms catalog",
	Long: `Create the tables that are missing and replace the forms catalog with the
paradigms shipped with mihi. Running it again on an initialized database keeps
every word and refreshes the catalog. Use --schema-only to skip the catalog.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		schemaOnly, _ := cmd.Flags().GetBool("schema-only")

		return withContainer(func(c *app.Container) error {
			ctx := cmd.Context()
			if err := database.Migrate(ctx, c.Driver); err != nil {
				return fmt.Errorf("run migrations: %w", err)
			}
			c.Logger.WithField("driver", c.Config.Database.Driver).Info("database schema is up to date")
			if schemaOnly {
				return nil
			}

			n, err := database.Seed(ctx, c.Forms)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Loaded %d forms into the catalog.\n", n)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("schema-only", false, "only run the migrations, do not load the forms catalog")
}
