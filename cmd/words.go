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

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mssola/mihi/internal/app"
	"github.com/mssola/mihi/internal/entity"
)

// wordsCmd groups the commands that manage the dictionary.
var wordsCmd = &cobra.Command{
	Use:     "words",
	Aliases: []string{"w"},
	Short:   "Manage the words of the dictionary",
}

var wordsCreateCmd = &cobra.Command{
	Use:   "create <enunciate>",
	Short: "Add a word to the dictionary",
	Long: `Add a word given its enunciate, e.g. "rosa, rosae". For nouns the particle,
declension, gender and kind are guessed from the enunciate when possible, and
the flags always take precedence over the guess.`,
	Example: `  mihi words create "rosa, rosae" --translation en=rose --tag lesson-1
  mihi words create "liber, librī" --category noun --declension 2 --kind er/ir --gender masculine --particle liber --flag contracted_root`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		word, err := wordFromFlags(args[0], cmd.Flags())
		if err != nil {
			return err
		}

		return withContainer(func(c *app.Container) error {
			created, err := c.Words.Create(cmd.Context(), &word)
			if err != nil {
				return err
			}
			if tags, _ := cmd.Flags().GetStringSlice("tag"); len(tags) > 0 {
				if err := c.Tags.Attach(cmd.Context(), created.Enunciated, tags...); err != nil {
					return fmt.Errorf("tag '%s': %w", created.Enunciated, err)
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created '%s' (%s).\n", created.Enunciated, describeWord(created))
			return nil
		})
	},
}

var wordsRmCmd = &cobra.Command{
	Use:     "rm <enunciate>...",
	Aliases: []string{"delete"},
	Short:   "Remove words from the dictionary",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withContainer(func(c *app.Container) error {
			for _, enunciated := range args {
				if err := c.Words.Delete(cmd.Context(), enunciated); err != nil {
					return fmt.Errorf("remove '%s': %w", enunciated, err)
				}
			}
			return nil
		})
	},
}

var wordsPokeCmd = &cobra.Command{
	Use:   "poke <enunciate>",
	Short: "Raise the weight of a word so it shows up more often",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withContainer(func(c *app.Container) error {
			return c.Words.Poke(cmd.Context(), args[0])
		})
	},
}

var wordsRelateCmd = &cobra.Command{
	Use:   "relate <source> <destination>",
	Short: "Relate two words, e.g. an adjective with its comparative",
	Example: `  mihi words relate "bonus, bona, bonum" "melior, melius" --kind comparative
  mihi words relate "bonus, bona, bonum" "bene" --kind adverb`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, _ := cmd.Flags().GetString("kind")
		kind, err := entity.ParseRelationKind(raw)
		if err != nil {
			return err
		}

		return withContainer(func(c *app.Container) error {
			return c.Words.Relate(cmd.Context(), args[0], args[1], kind)
		})
	},
}

func init() {
	rootCmd.AddCommand(wordsCmd)
	wordsCmd.AddCommand(wordsCreateCmd, wordsRmCmd, wordsPokeCmd, wordsRelateCmd)

	addWordFlags(wordsCreateCmd.Flags())
	wordsCreateCmd.Flags().StringSlice("tag", nil, "existing tags to attach to the word")

	wordsRelateCmd.Flags().String("kind", "", "comparative, superlative, adverb, alternative or gendered")
	_ = wordsRelateCmd.MarkFlagRequired("kind")
}

func addWordFlags(f *pflag.FlagSet) {
	f.String("particle", "", "bare stem the endings are appended to")
	f.String("category", "", "noun, adjective, verb, adverb, preposition, conjunction, interjection or determiner")
	f.Int("declension", 0, "declension from 1 to 5, or 6 for any other")
	f.Int("conjugation", 0, "conjugation of verbs")
	f.String("kind", "", "paradigm of the word (see 'mihi flags --kinds')")
	f.String("gender", "", "masculine, feminine, common, neuter or none")
	f.Bool("irregular", false, "the word does not follow its paradigm")
	f.Bool("locative", false, "the word has a locative case")
	f.String("suffix", "", "suffix appended to every form")
	f.StringToString("translation", nil, "translations as language=text, e.g. en=rose")
	f.StringSlice("flag", nil, "flags to turn on (see 'mihi flags')")
	f.Int("weight", 5, "how often the word should come up")
}

// wordFromFlags guesses a word from its enunciate and then applies every
// flag that was set explicitly.
func wordFromFlags(enunciated string, f *pflag.FlagSet) (entity.Word, error) {
	w := entity.GuessFromEnunciate(enunciated)

	if f.Changed("particle") {
		w.Particle, _ = f.GetString("particle")
	}
	if f.Changed("category") {
		raw, _ := f.GetString("category")
		category, err := entity.ParseCategory(raw)
		if err != nil {
			return w, err
		}
		w.Category = category
	}
	if f.Changed("declension") {
		n, _ := f.GetInt("declension")
		w.Declension = entity.Declension(n)
		if n != 0 && !w.Declension.Valid() {
			return w, fmt.Errorf("%w: %d", entity.ErrUnknownDeclension, n)
		}
	}
	if f.Changed("conjugation") {
		w.Conjugation, _ = f.GetInt("conjugation")
	}
	if f.Changed("kind") {
		raw, _ := f.GetString("kind")
		w.Kind = entity.Kind(strings.TrimSpace(raw))
	}
	if f.Changed("gender") {
		raw, _ := f.GetString("gender")
		gender, err := entity.ParseGender(raw)
		if err != nil {
			return w, err
		}
		w.Gender = gender
	}
	if irregular, _ := f.GetBool("irregular"); irregular {
		w.Regular = false
	}
	w.Locative, _ = f.GetBool("locative")
	w.Suffix, _ = f.GetString("suffix")
	w.Weight, _ = f.GetInt("weight")

	translations, _ := f.GetStringToString("translation")
	for code, text := range translations {
		lang := entity.ParseLanguage(code)
		if lang == entity.LanguageUnspecified {
			return w, fmt.Errorf("%w: unsupported translation language %q", entity.ErrInvalidWord, code)
		}
		if w.Translation == nil {
			w.Translation = map[entity.Language]string{}
		}
		w.Translation[lang] = text
	}

	names, _ := f.GetStringSlice("flag")
	for _, name := range names {
		if err := w.Flags.Set(strings.TrimSpace(name), true); err != nil {
			return w, err
		}
	}
	return w, nil
}

// describeWord returns a short grammatical summary such as
// "noun, 1st declension, feminine".
func describeWord(w *entity.Word) string {
	parts := []string{w.Category.String()}
	if w.Declension != entity.DeclensionNone {
		parts = append(parts, w.Declension.String())
	}
	if w.Category == entity.CategoryNoun {
		parts = append(parts, w.Gender.String())
	}
	if w.Kind != "" {
		parts = append(parts, "kind "+string(w.Kind))
	}
	if !w.Regular {
		parts = append(parts, "irregular")
	}
	return strings.Join(lo.Compact(parts), ", ")
}
