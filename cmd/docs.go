package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "利用可能なドキュメント一覧を表示",
	Args:  cobra.NoArgs,
	RunE:  runDocs,
}

func init() {
	rootCmd.AddCommand(docsCmd)
}

func runDocs(cmd *cobra.Command, _ []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	docs, err := s.searcher.ListDocs()
	if err != nil {
		s.report("ドキュメントの取得", err)
		return nil
	}

	items := make([]string, 0, len(docs))
	for _, d := range docs {
		if d.Title != "" {
			items = append(items, fmt.Sprintf("%s — %s", d.Path, d.Title))
		} else {
			items = append(items, d.Path)
		}
	}
	s.out.List("📄 ドキュメント一覧", items)
	return nil
}
