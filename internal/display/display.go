// Package display renders search results, lists and messages for the
// terminal. It holds no state beyond the writers it prints to.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/kamusis/devguide/internal/search"
)

var (
	headerColor  = color.New(color.FgGreen, color.Bold)
	hintColor    = color.New(color.FgHiBlack)
	warnColor    = color.New(color.FgYellow)
	titleColor   = color.New(color.FgCyan, color.Bold)
	itemColor    = color.New(color.FgWhite)
	errorLabel   = color.New(color.FgRed, color.Bold)
	errorColor   = color.New(color.FgRed)
	defaultColor = color.New(color.FgWhite, color.Bold)

	kindColors = map[search.Kind]*color.Color{
		search.KindTerm: color.New(color.FgBlue, color.Bold),
		search.KindDoc:  color.New(color.FgGreen, color.Bold),
		search.KindCode: color.New(color.FgMagenta, color.Bold),
	}
	kindIcons = map[search.Kind]string{
		search.KindTerm: "📚",
		search.KindDoc:  "📄",
		search.KindCode: "💻",
	}
)

const separatorWidth = 60

// Printer writes formatted output. Error messages go to Err.
type Printer struct {
	Out io.Writer
	Err io.Writer
}

// New returns a Printer writing to out and err.
func New(out, err io.Writer) *Printer {
	return &Printer{Out: out, Err: err}
}

// Icon returns the marker shown in front of a result title.
func Icon(k search.Kind) string {
	if icon, ok := kindIcons[k]; ok {
		return icon
	}
	return "🔍"
}

func kindColor(k search.Kind) *color.Color {
	if c, ok := kindColors[k]; ok {
		return c
	}
	return defaultColor
}

// Results prints every result with its icon, location and content, or a
// hint block when there are none.
func (p *Printer) Results(results []search.Result, query string) {
	if len(results) == 0 {
		p.NoResults(query)
		return
	}

	fmt.Fprintln(p.Out, headerColor.Sprintf("\n✨ %d件の結果が見つかりました\n", len(results)))
	for i, r := range results {
		fmt.Fprintln(p.Out, kindColor(r.Kind).Sprintf("%s %s", Icon(r.Kind), r.Title))
		if r.Location != "" {
			fmt.Fprintln(p.Out, hintColor.Sprintf("   📍 %s", r.Location))
		}
		fmt.Fprintln(p.Out, r.Content)
		if i < len(results)-1 {
			fmt.Fprintln(p.Out, hintColor.Sprint("\n"+strings.Repeat("─", separatorWidth)+"\n"))
		}
	}
	fmt.Fprintln(p.Out)
}

// NoResults prints the "nothing found" hint block for query.
func (p *Printer) NoResults(query string) {
	fmt.Fprintln(p.Out, warnColor.Sprintf("\n🔍 「%s」に関する情報が見つかりませんでした。\n", query))
	fmt.Fprintln(p.Out, hintColor.Sprint("ヒント:"))
	fmt.Fprintln(p.Out, hintColor.Sprint("  - 別のキーワードで試してみてください"))
	fmt.Fprintln(p.Out, hintColor.Sprint("  - カテゴリ一覧を確認: devguide categories"))
	fmt.Fprintln(p.Out, hintColor.Sprint("  - ドキュメント一覧: devguide docs\n"))
}

var usage = []struct{ cmd, desc string }{
	{"devguide search <キーワード>", "すべてを検索"},
	{"devguide term <キーワード>", "用語集を検索"},
	{"devguide doc <キーワード>", "ドキュメントを検索"},
	{"devguide code <キーワード>", "コードを検索"},
	{"devguide categories", "カテゴリ一覧"},
	{"devguide category <名前>", "カテゴリの用語を表示"},
	{"devguide docs", "ドキュメント一覧"},
	{"devguide routes", "Expressルート一覧"},
	{"devguide prisma", "Prismaモデル一覧"},
	{"devguide serve", "用語集Webページを起動"},
}

// Welcome prints the banner shown when devguide runs without arguments.
func (p *Printer) Welcome() {
	fmt.Fprintln(p.Out, titleColor.Sprint("\n🎓 DevGuide - 開発初心者向け用語検索ツール\n"))
	fmt.Fprintln(p.Out, hintColor.Sprint("使い方:"))
	width := 0
	for _, u := range usage {
		width = max(width, displayWidth(u.cmd))
	}
	for _, u := range usage {
		pad := strings.Repeat(" ", width-displayWidth(u.cmd)+2)
		fmt.Fprintln(p.Out, itemColor.Sprint("  "+u.cmd+pad)+hintColor.Sprint("- "+u.desc))
	}
	fmt.Fprintln(p.Out)
}

// Error prints a user-facing error message.
func (p *Printer) Error(msg string) {
	fmt.Fprintln(p.Err, errorLabel.Sprint("\n❌ エラー: ")+errorColor.Sprint(msg)+"\n")
}

// List prints a numbered list under title, with a total line.
func (p *Printer) List(title string, items []string) {
	fmt.Fprintln(p.Out, titleColor.Sprintf("\n%s\n", title))
	if len(items) == 0 {
		fmt.Fprintln(p.Out, warnColor.Sprint("（項目がありません）\n"))
		return
	}
	for i, item := range items {
		fmt.Fprintln(p.Out, itemColor.Sprintf("  %d. %s", i+1, item))
	}
	fmt.Fprintln(p.Out, hintColor.Sprintf("\n合計: %d件\n", len(items)))
}
