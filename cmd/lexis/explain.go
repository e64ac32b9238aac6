package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/japaniel/lexis/pkg/explain"
	"github.com/japaniel/lexis/pkg/lexicon"
)

var (
	sure      = color.New(color.FgGreen)
	uncertain = color.New(color.FgYellow)
	unknown   = color.New(color.FgRed)
)

func (a *app) explain(ctx context.Context, args []string) error {
	fs := a.subcommand("explain", "[text...]")
	urlFlag := fs.String("url", "", "Web page to fetch and explain")
	fileFlag := fs.String("file", "", "Text or HTML file to explain")
	langFlag := fs.String("lang", "primary", "Gloss language: primary or secondary")
	segFlag := fs.String("segmenter", a.cfg.Explain.Segmenter, "Tokenizer: latin or kagome")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	lang, err := lexicon.ParseLanguage(*langFlag)
	if err != nil {
		return err
	}

	text, err := a.explainInput(ctx, *urlFlag, *fileFlag, fs.Args())
	if err != nil {
		return err
	}

	ex, err := a.ws.NewExplainer(*segFlag, a.cfg.Explain.CacheSize)
	if err != nil {
		return err
	}
	for _, s := range explain.SplitSentences(text) {
		if err := ctx.Err(); err != nil {
			return err
		}
		parts := ex.Explain(s)
		if len(parts) == 0 {
			continue
		}
		fmt.Fprintln(a.stdout, dim.Sprint(s))
		for i := range parts {
			a.printPart(&parts[i], lang)
		}
		fmt.Fprintln(a.stdout)
	}
	return nil
}

func (a *app) explainInput(ctx context.Context, pageURL, file string, args []string) (string, error) {
	switch {
	case pageURL != "":
		fmt.Fprintf(a.stdout, "Fetching %s...\n", pageURL)
		doc, err := explain.Fetch(ctx, pageURL)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(a.stdout, "Title: %s\n\n", doc.Title)
		return doc.Text, nil
	case file != "":
		f, err := os.Open(file)
		if err != nil {
			return "", err
		}
		defer f.Close()
		switch strings.ToLower(filepath.Ext(file)) {
		case ".html", ".htm":
			doc, err := explain.ExtractHTML(f, nil)
			if err != nil {
				return "", err
			}
			return doc.Text, nil
		}
		b, err := io.ReadAll(f)
		return string(b), err
	case len(args) > 0:
		return strings.Join(args, " "), nil
	}
	b, err := io.ReadAll(a.stdin)
	return string(b), err
}

// printPart prints one token: green when the match is exact, yellow when it is
// fuzzy or ambiguous, red when nothing matched.
func (a *app) printPart(p *explain.Part, lang lexicon.Language) {
	switch {
	case !p.Matched():
		unknown.Fprintf(a.stdout, "  %s  ?\n", p.Token.Surface)
	case p.Ambiguous():
		var alts []string
		for _, m := range p.Matches[1:] {
			alts = append(alts, glossOf(m, lang))
		}
		uncertain.Fprintf(a.stdout, "  %s  %s", p.Token.Surface, p.Gloss(lang))
		dim.Fprintf(a.stdout, "  (or %s)\n", strings.Join(alts, ", "))
	case !p.Sure:
		uncertain.Fprintf(a.stdout, "  %s  ~%s\n", p.Token.Surface, p.Gloss(lang))
	default:
		sure.Fprintf(a.stdout, "  %s  %s\n", p.Token.Surface, p.Gloss(lang))
	}
}

func glossOf(m lexicon.Match, lang lexicon.Language) string {
	if text, ok := m.Item.Text(lang); ok {
		return text
	}
	return m.Text
}
