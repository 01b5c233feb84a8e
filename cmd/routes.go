package cmd

import (
	"github.com/spf13/cobra"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "Expressルート定義の一覧を表示",
	Args:  cobra.NoArgs,
	RunE:  runRoutes,
}

var prismaCmd = &cobra.Command{
	Use:   "prisma",
	Short: "Prismaスキーマのモデル一覧を表示",
	Args:  cobra.NoArgs,
	RunE:  runPrisma,
}

func init() {
	rootCmd.AddCommand(routesCmd, prismaCmd)
}

func runRoutes(cmd *cobra.Command, _ []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	results, err := s.searcher.Routes(cmd.Context())
	if err != nil {
		s.report("ルートの検索", err)
		return nil
	}
	if len(results) == 0 {
		s.out.Error("Expressルートが見つかりませんでした")
		return nil
	}
	s.out.Results(results, "Express Routes")
	return nil
}

func runPrisma(cmd *cobra.Command, _ []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	results, err := s.searcher.Models()
	if err != nil {
		s.report("Prismaモデルの取得", err)
		return nil
	}
	if len(results) == 0 {
		s.out.Error("Prismaスキーマが見つかりませんでした")
		return nil
	}
	s.out.Results(results, "Prisma Models")
	return nil
}
