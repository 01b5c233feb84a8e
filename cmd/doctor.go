package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/kamusis/devguide/internal/config"
	"github.com/kamusis/devguide/internal/glossary"
	"github.com/kamusis/devguide/internal/search"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the glossary, docs and source paths are usable",
	Long: `Check DevGuide's configuration and data sources.
Run this command when a search returns nothing you expected.`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()
	allOK := true
	failD := func(format string, args ...any) {
		printErr(w, "", fmt.Sprintf(format, args...))
		allOK = false
	}

	printSection(w, "devguide doctor")
	fmt.Fprintln(w)

	// ── Check 1: config ───────────────────────────────────────────────────────
	fmt.Fprintln(w, "[ config ]")
	cfg, err := config.Load(flagRoot)
	if err != nil {
		failD("%v", err)
		fmt.Fprintln(w)
		return errors.New("doctor found problems")
	}
	if cfgPath, err := config.ConfigPath(cfg.Root); err != nil {
		failD("%v", err)
	} else if _, err := os.Stat(cfgPath); err == nil {
		printOK(w, "", fmt.Sprintf("loaded %s", cfgPath))
	} else {
		printSkip(w, "", fmt.Sprintf("no %s, using defaults", config.FileName))
	}
	fmt.Fprintln(w)

	// ── Check 2: glossary ─────────────────────────────────────────────────────
	fmt.Fprintln(w, "[ glossary ]")
	if g, err := glossary.Load(cfg.GlossaryPath()); err != nil {
		failD("%v", err)
	} else {
		printOK(w, "", fmt.Sprintf("%d term(s) in %d categor(ies): %s",
			len(g.Terms), len(glossary.Categories(g)), cfg.GlossaryPath()))
	}
	fmt.Fprintln(w)

	// ── Check 3/4: docs and src directories ───────────────────────────────────
	if !checkDir(w, "docs", cfg.DocsPath(), search.DefaultDocPattern) {
		allOK = false
	}
	if !checkDir(w, "src", cfg.SrcPath(), cfg.CodePattern) {
		allOK = false
	}

	// ── Check 5: schema file ──────────────────────────────────────────────────
	fmt.Fprintln(w, "[ schema ]")
	if b, err := os.ReadFile(cfg.SchemaPath()); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			printSkip(w, "", fmt.Sprintf("not found: %s (prisma command unavailable)", cfg.SchemaPath()))
		} else {
			failD("cannot read %s: %v", cfg.SchemaPath(), err)
		}
	} else if models := search.ExtractModels(string(b)); len(models) == 0 {
		printWarn(w, "", fmt.Sprintf("no model blocks in %s", cfg.SchemaPath()))
	} else {
		printOK(w, "", fmt.Sprintf("%d model(s) in %s", len(models), cfg.SchemaPath()))
	}
	fmt.Fprintln(w)

	if !allOK {
		return errors.New("doctor found problems")
	}
	printOK(w, "", "all checks passed")
	return nil
}

// checkDir reports how many files under dir match pattern. A missing
// directory is only a warning since searches treat it as empty.
func checkDir(w io.Writer, name, dir, pattern string) bool {
	fmt.Fprintf(w, "[ %s ]\n", name)
	defer fmt.Fprintln(w)

	files, err := search.ListFiles(dir, pattern)
	if err != nil {
		printErr(w, "", err.Error())
		return false
	}
	if _, statErr := os.Stat(dir); statErr != nil {
		printWarn(w, "", fmt.Sprintf("directory not found: %s (searches return nothing)", dir))
		return true
	}
	printOK(w, "", fmt.Sprintf("%d file(s) matching %s in %s", len(files), pattern, dir))
	return true
}
