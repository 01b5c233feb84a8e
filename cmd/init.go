package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kamusis/devguide/internal/config"
	"github.com/kamusis/devguide/internal/glossary"
)

var flagInitForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default .devguide.yaml and a starter glossary",
	Long: `Create .devguide.yaml in the project root with the default paths, and
docs/glossary.json with one example term if no glossary exists yet.
Existing files are left alone unless --force is given for the config.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&flagInitForce, "force", false, "Overwrite an existing .devguide.yaml")
	rootCmd.AddCommand(initCmd)
}

// starterGlossary is written when the project has no glossary yet.
var starterGlossary = glossary.Glossary{Terms: []glossary.Term{{
	Term:         "API",
	Reading:      "エーピーアイ",
	Category:     "Web",
	Description:  "ソフトウェア同士がやり取りするための窓口",
	Example:      "fetch('/api/users') でユーザー一覧を取得する",
	RelatedTerms: []string{"REST", "HTTP"},
}}}

func runInit(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()
	root, err := filepath.Abs(flagRoot)
	if err != nil {
		return fmt.Errorf("cannot resolve root %s: %w", flagRoot, err)
	}
	printSection(w, "devguide init")

	cfgPath, err := config.ConfigPath(root)
	if err != nil {
		return err
	}
	cfg := config.DefaultConfig(root)
	if _, err := os.Stat(cfgPath); err == nil && !flagInitForce {
		printSkip(w, "", fmt.Sprintf("%s already exists (use --force to overwrite)", cfgPath))
		if cfg, err = config.Load(root); err != nil {
			return fmt.Errorf("cannot load config: %w", err)
		}
	} else {
		if err := config.Save(cfg); err != nil {
			return err
		}
		printOK(w, "", fmt.Sprintf("wrote %s", cfgPath))
	}

	gPath := cfg.GlossaryPath()
	if _, err := os.Stat(gPath); err == nil {
		printSkip(w, "", fmt.Sprintf("%s already exists", gPath))
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(gPath), 0o755); err != nil {
		return fmt.Errorf("cannot create %s: %w", filepath.Dir(gPath), err)
	}
	data, err := json.MarshalIndent(starterGlossary, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot marshal glossary: %w", err)
	}
	if err := os.WriteFile(gPath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("cannot write glossary %s: %w", gPath, err)
	}
	printOK(w, "", fmt.Sprintf("wrote %s", gPath))
	return nil
}
