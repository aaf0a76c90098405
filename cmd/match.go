package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sells-group/transition-cli/internal/namematch"
)

var matchCmd = &cobra.Command{
	Use:   "match <employer> <reference>",
	Short: "Score two company names against each other",
	Long:  "Canonicalizes both names and prints the token sequences, the similarity signals and the match verdict.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		canon, err := newCanonicalizer()
		if err != nil {
			return err
		}

		employer, reference := args[0], args[1]
		matcher := namematch.NewMatcher(canon, nil)
		scores := matcher.Score(employer, reference)

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "employer:\t%s\n", employer)
		fmt.Fprintf(w, "tokens:\t[%s]\n", strings.Join(canon.Canonicalize(employer), " "))
		fmt.Fprintf(w, "reference:\t%s\n", reference)
		fmt.Fprintf(w, "tokens:\t[%s]\n", strings.Join(canon.Canonicalize(reference), " "))
		fmt.Fprintf(w, "jaccard:\t%.3f\n", scores.Jaccard)
		fmt.Fprintf(w, "subsidiary:\t%.3f\n", scores.Subsidiary)
		fmt.Fprintf(w, "pascal:\t%.3f\n", scores.Pascal)
		fmt.Fprintf(w, "threshold:\t%.3f\n", scores.Threshold)
		fmt.Fprintf(w, "matched:\t%v\n", scores.Matched)
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(matchCmd)
}
