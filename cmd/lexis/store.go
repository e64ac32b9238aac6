package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/japaniel/lexis/pkg/dictionary"
	"github.com/japaniel/lexis/pkg/lexicon"
)

var (
	dim  = color.New(color.Faint)
	bold = color.New(color.Bold)
)

func (a *app) store(sentences bool) *lexicon.Lexicon {
	if sentences {
		return a.ws.Sentences
	}
	return a.ws.Words
}

func describeItem(it lexicon.Item) string {
	s := fmt.Sprintf("#%d %s [%s]", it.UID, lexicon.Describe(it.Category), lexicon.Tag(it.Category))
	if it.Primary != "" || it.Secondary != "" {
		s += " " + it.Primary + " / " + it.Secondary
	}
	return s
}

func (a *app) search(args []string) error {
	fs := a.subcommand("search", "[text]")
	langFlag := fs.String("lang", "source", "Language to search: source, primary or secondary")
	kindFlag := fs.String("kind", "", "Comma-separated kinds to search (default all)")
	nFlag := fs.Int("n", a.cfg.Search.Results, "Maximum number of results")
	sentenceFlag := fs.Bool("sentence", false, "Search sentences instead of words")
	exactFlag := fs.Bool("exact-length", false, "Only match candidates of the same length")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	lang, err := lexicon.ParseLanguage(*langFlag)
	if err != nil {
		return err
	}
	mask, err := lexicon.ParseMask(*kindFlag)
	if err != nil {
		return err
	}

	// Without text, browse in store order.
	matches := a.store(*sentenceFlag).Find(lexicon.Query{
		Text:        strings.Join(fs.Args(), " "),
		Language:    lang,
		Mask:        mask,
		ExactLength: *exactFlag,
	}, *nFlag)
	if len(matches) == 0 {
		fmt.Fprintln(a.stdout, "No matches.")
		return nil
	}
	for _, m := range matches {
		fmt.Fprintf(a.stdout, "%2d  %s  %s\n", m.Distance, bold.Sprint(m.Text), dim.Sprint(describeItem(m.Item)))
	}
	return nil
}

func (a *app) add(args []string) error {
	fs := a.subcommand("add", "[forms...]")
	sentenceFlag := fs.Bool("sentence", false, "Add to the sentences instead of the words")
	tagFlag := fs.String("tag", "", "Category variant, e.g. noun, verb, adjective.descriptive, pronoun.personal")
	primaryFlag := fs.String("primary", "", "Primary translation")
	secondaryFlag := fs.String("secondary", "", "Secondary translation")
	jsonFlag := fs.String("json", "", "Category fields as JSON, instead of positional forms")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	tag := *tagFlag
	if tag == "" {
		if !*sentenceFlag {
			fs.Usage()
			return errUsage
		}
		tag = lexicon.Tag(lexicon.Other{})
	}

	var (
		c   lexicon.Category
		err error
	)
	if *jsonFlag != "" {
		c, err = lexicon.DecodeCategory(tag, []byte(*jsonFlag))
	} else {
		c, err = categoryFromForms(tag, fs.Args())
	}
	if err != nil {
		return err
	}

	it, err := a.store(*sentenceFlag).Add(lexicon.NewItem(*primaryFlag, *secondaryFlag, c))
	if err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "Added %s\n", describeItem(it))
	return nil
}

// categoryFromForms builds the common variants from positional forms. Variants
// with richer tables (verb conjugations, personal pronouns) need -json for more
// than their base form.
func categoryFromForms(tag string, forms []string) (lexicon.Category, error) {
	if len(forms) == 0 {
		return nil, fmt.Errorf("%s: no forms given", tag)
	}
	form := func(i int) string {
		if i < len(forms) {
			return forms[i]
		}
		return ""
	}
	var fields map[string]string
	switch tag {
	case lexicon.Tag(lexicon.Noun{}):
		plural := form(1)
		if plural == "" {
			plural = lexicon.Plural(forms[0])
		}
		return lexicon.Noun{Singular: forms[0], Plural: plural}, nil
	case lexicon.Tag(lexicon.Verb{}):
		return lexicon.Verb{Name: forms[0]}, nil
	case lexicon.Tag(lexicon.Number{}):
		return lexicon.NewNumber(forms[0]), nil
	case lexicon.Tag(lexicon.PersonalPronoun{}):
		return lexicon.PersonalPronoun{Subject: forms[0]}, nil
	case lexicon.Tag(lexicon.Article{}):
		fields = map[string]string{"masculine": form(0), "feminine": form(1), "plural": form(2), "elided": form(3)}
	default:
		fields = map[string]string{"text": forms[0]}
	}

	raw, err := json.Marshal(fields)
	if err != nil {
		return nil, err
	}
	c, err := lexicon.DecodeCategory(tag, raw)
	if err != nil {
		return nil, err
	}
	if len(c.Forms()) > 0 {
		return c, nil
	}

	// Gendered variants
	raw, err = json.Marshal(map[string]string{
		"masculine":        form(0),
		"feminine":         form(1),
		"plural_masculine": form(2),
		"plural_feminine":  form(3),
		"plural":           form(2),
	})
	if err != nil {
		return nil, err
	}
	return lexicon.DecodeCategory(tag, raw)
}

func (a *app) remove(args []string) error {
	fs := a.subcommand("remove", "<uid>")
	sentenceFlag := fs.Bool("sentence", false, "Remove from the sentences instead of the words")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return errUsage
	}
	uid, err := strconv.ParseUint(fs.Arg(0), 10, 32)
	if err != nil {
		return fmt.Errorf("invalid uid %q: %w", fs.Arg(0), err)
	}
	if err := a.store(*sentenceFlag).Remove(uint32(uid)); err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "Removed #%d\n", uid)
	return nil
}

func (a *app) importFile(args []string) error {
	fs := a.subcommand("import", "<file>")
	sentenceFlag := fs.Bool("sentence", false, "Import into the sentences instead of the words")
	jmdictFlag := fs.Bool("jmdict", false, "The file is a jmdict-simplified dictionary")
	targetFlag := fs.String("target", "secondary", "Translation slot for dictionary glosses: primary or secondary")
	glossFlag := fs.String("gloss-lang", "eng", "Dictionary gloss language")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return errUsage
	}
	path := fs.Arg(0)
	target, err := lexicon.ParseLanguage(*targetFlag)
	if err != nil {
		return err
	}
	importer := dictionary.NewImporter(a.store(*sentenceFlag), target, a.logger)
	importer.GlossLang = *glossFlag

	var count int
	if *jmdictFlag {
		fmt.Fprintf(a.stdout, "Loading dictionary from %s...\n", path)
		entries, err := dictionary.LoadJMdictSimplified(path)
		if err != nil {
			return fmt.Errorf("failed to load dictionary: %w", err)
		}
		fmt.Fprintf(a.stdout, "Loaded %d entries. Importing...\n", len(entries))
		count, err = importer.ImportJMdict(entries)
		if err != nil {
			return err
		}
	} else {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		items, err := dictionary.ReadExport(f)
		if err != nil {
			return err
		}
		count, err = importer.ImportItems(items)
		if err != nil {
			return err
		}
	}
	fmt.Fprintf(a.stdout, "Imported %d new items.\n", count)
	return nil
}

func (a *app) export(args []string) error {
	fs := a.subcommand("export", "")
	sentenceFlag := fs.Bool("sentence", false, "Export the sentences instead of the words")
	outFlag := fs.String("o", "", "Output file (default stdout)")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	var w io.Writer = a.stdout
	if *outFlag != "" {
		f, err := os.Create(*outFlag)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	return dictionary.Export(w, a.store(*sentenceFlag))
}

func (a *app) renumber(args []string) error {
	fs := a.subcommand("renumber", "")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if err := a.ws.Renumber(); err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "Renumbered %d words and %d sentences.\n", a.ws.Words.Len(), a.ws.Sentences.Len())
	return nil
}
