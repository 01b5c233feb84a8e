package cmd

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kamusis/devguide/internal/search"
)

type queryFunc func(s *search.Searcher, ctx context.Context, query string) ([]search.Result, error)

// newQueryCommand builds a "<name> <query>" command that runs fn and
// displays its results. what names the action in error messages.
func newQueryCommand(name, short, what string, fn queryFunc) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <query>",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			query := strings.Join(args, " ")
			results, err := fn(s.searcher, cmd.Context(), query)
			if err != nil {
				s.report(what, err)
				return nil
			}
			s.out.Results(results, query)
			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(
		newQueryCommand("search", "用語集・ドキュメント・コードをまとめて検索", "検索", (*search.Searcher).All),
		newQueryCommand("term", "用語集のみを検索", "用語集の検索", (*search.Searcher).Terms),
		newQueryCommand("doc", "ドキュメントのみを検索", "ドキュメントの検索", (*search.Searcher).Docs),
		newQueryCommand("code", "ソースコードのみを検索", "コードの検索", (*search.Searcher).Code),
	)
}
