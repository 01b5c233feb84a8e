package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kamusis/devguide/internal/web"
)

var flagServeAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "用語集Webページを起動",
	Long: `Serve the glossary web page and the current glossary file at /glossary.json.
The glossary is re-read on every request, so edits show up on reload.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagServeAddr, "addr", "", "Listen address (default from config, :3000)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	addr := s.cfg.Addr
	if flagServeAddr != "" {
		addr = flagServeAddr
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w := cmd.OutOrStdout()
	printInfo(w, "", fmt.Sprintf("glossary: %s", s.cfg.GlossaryPath()))
	printOK(w, "", fmt.Sprintf("listening on %s (Ctrl+C to stop)", addr))

	srv := web.NewServer(addr, s.cfg.GlossaryPath(), s.log)
	if err := srv.Run(ctx); err != nil {
		s.report("Webサーバーの実行", err)
	}
	return nil
}
