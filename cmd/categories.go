package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kamusis/devguide/internal/glossary"
	"github.com/kamusis/devguide/internal/search"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "用語集のカテゴリ一覧を表示",
	Args:  cobra.NoArgs,
	RunE:  runCategories,
}

var categoryCmd = &cobra.Command{
	Use:   "category <name>",
	Short: "指定したカテゴリの用語を表示",
	Args:  cobra.ExactArgs(1),
	RunE:  runCategory,
}

func init() {
	rootCmd.AddCommand(categoriesCmd, categoryCmd)
}

func runCategories(cmd *cobra.Command, _ []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	g, err := glossary.Load(s.cfg.GlossaryPath())
	if err != nil {
		s.report("カテゴリの取得", err)
		return nil
	}
	s.out.List("📁 用語カテゴリ一覧", glossary.Categories(g))
	return nil
}

func runCategory(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	name := args[0]
	g, err := glossary.Load(s.cfg.GlossaryPath())
	if err != nil {
		s.report("カテゴリのフィルタ", err)
		return nil
	}

	terms := glossary.FilterByCategory(g, name)
	if len(terms) == 0 {
		s.out.Error(fmt.Sprintf("カテゴリ「%s」が見つかりません", name))
		return nil
	}

	results := make([]search.Result, 0, len(terms))
	for _, t := range terms {
		results = append(results, search.Result{
			Kind:    search.KindTerm,
			Title:   t.Term,
			Content: glossary.FormatSummary(t),
		})
	}
	s.out.Results(results, name)
	return nil
}
