package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/japaniel/lexis/pkg/config"
	"github.com/japaniel/lexis/pkg/workspace"

	_ "github.com/mattn/go-sqlite3"
)

const usage = `usage: lexis [global flags] <command> [flags] [args]

commands:
  search     fuzzy search the words or sentences
  explain    gloss a text, file or web page word by word
  practice   quiz yourself on a group
  example    generate example sentences
  groups     list and edit practice groups
  add        add a word or sentence
  remove     remove a word or sentence
  import     import a jmdict-simplified dictionary or an export file
  export     export words or sentences as JSON
  renumber   compact uids and update every group

global flags:
`

// errUsage is returned for bad invocations; the message has already been printed.
var errUsage = errors.New("invalid usage")

// app carries what every command needs.
type app struct {
	cfg    *config.Config
	ws     *workspace.Workspace
	logger *slog.Logger
	rng    *rand.Rand
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func main() {
	// Setup context for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	if errors.Is(err, errUsage) {
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("lexis: %v", err)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("lexis", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configFlag := fs.String("config", "", "Path to YAML config (default $LEXIS_CONFIG or ./lexis.yaml)")
	wordsFlag := fs.String("words", "", "Path to the words snapshot")
	sentencesFlag := fs.String("sentences", "", "Path to the sentences snapshot")
	groupsFlag := fs.String("groups", "", "Path to the practice groups snapshot")
	seedFlag := fs.Int64("seed", 0, "Random seed (0 seeds from the clock)")
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return errUsage
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	// Flags override config
	if *wordsFlag != "" {
		cfg.Storage.Words = *wordsFlag
	}
	if *sentencesFlag != "" {
		cfg.Storage.Sentences = *sentencesFlag
	}
	if *groupsFlag != "" {
		cfg.Storage.Groups = *groupsFlag
	}

	logger := config.NewLogger(cfg.Log, stderr)
	slog.SetDefault(logger)

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	a := &app{
		cfg: cfg,
		ws: workspace.Open(workspace.Paths{
			Words:     cfg.Storage.Words,
			Sentences: cfg.Storage.Sentences,
			Groups:    cfg.Storage.Groups,
		}, logger),
		logger: logger,
		rng:    rand.New(rand.NewSource(seed)),
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}

	cmd, rest := fs.Arg(0), fs.Args()[1:]
	switch cmd {
	case "search":
		return a.search(rest)
	case "explain":
		return a.explain(ctx, rest)
	case "practice":
		return a.practice(ctx, rest)
	case "example":
		return a.example(rest)
	case "groups":
		return a.groups(rest)
	case "add":
		return a.add(rest)
	case "remove":
		return a.remove(rest)
	case "import":
		return a.importFile(rest)
	case "export":
		return a.export(rest)
	case "renumber":
		return a.renumber(rest)
	}
	fmt.Fprintf(stderr, "unknown command %q\n", cmd)
	fs.Usage()
	return errUsage
}

// subcommand builds a flag set for cmd that reports errors to stderr.
func (a *app) subcommand(cmd, argsUsage string) *flag.FlagSet {
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	fs.Usage = func() {
		fmt.Fprintf(a.stderr, "usage: lexis %s [flags] %s\n", cmd, argsUsage)
		fs.PrintDefaults()
	}
	return fs
}
