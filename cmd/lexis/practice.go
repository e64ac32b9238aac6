package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/japaniel/lexis/pkg/lexicon"
	"github.com/japaniel/lexis/pkg/practice"
	"github.com/japaniel/lexis/pkg/sentence"
)

var (
	correct = color.New(color.FgGreen, color.Bold)
	wrong   = color.New(color.FgRed, color.Bold)
	hint    = color.New(color.FgYellow)
)

// quitCommand ends a practice run at any prompt.
const quitCommand = ":q"

func (a *app) languages() practice.Languages {
	return practice.Languages{
		Source:    a.cfg.Languages.Source,
		Primary:   a.cfg.Languages.Primary,
		Secondary: a.cfg.Languages.Secondary,
	}
}

// findGroup resolves a group by name, or by index when the argument is a number.
func (a *app) findGroup(arg string) (int, error) {
	if i, ok := a.ws.Groups.Find(arg); ok {
		return i, nil
	}
	if i, err := strconv.Atoi(arg); err == nil {
		if _, err := a.ws.Groups.Group(i); err != nil {
			return 0, err
		}
		return i, nil
	}
	return 0, fmt.Errorf("group %q: %w", arg, lexicon.ErrNotFound)
}

func (a *app) practice(ctx context.Context, args []string) error {
	fs := a.subcommand("practice", "<group>")
	repeatFlag := fs.Float64("repeat", a.cfg.Practice.RepeatProbability, "Chance to repeat a missed question early")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return errUsage
	}
	gi, err := a.findGroup(fs.Arg(0))
	if err != nil {
		return err
	}
	session, err := a.ws.NewSession(gi,
		practice.WithRand(a.rng),
		practice.WithRepeatProbability(*repeatFlag),
		practice.WithLanguages(a.languages()),
	)
	if err != nil {
		return err
	}

	in := bufio.NewScanner(a.stdin)
	readLine := func() (string, bool) {
		if ctx.Err() != nil || !in.Scan() {
			return "", false
		}
		line := strings.TrimSpace(in.Text())
		return line, line != quitCommand
	}

	fmt.Fprintf(a.stdout, "Practising %s. Type %s to stop.\n", bold.Sprint(session.Group().Name), quitCommand)
	state, err := session.Start()
	for err == nil {
		switch s := state.(type) {
		case practice.AwaitingAnswer:
			done, total := session.Progress()
			fmt.Fprintf(a.stdout, "[%d/%d] %s\n> ", done, total, s.Question.Prompt)
			answer, ok := readLine()
			if !ok {
				return a.stopPractice(session)
			}
			state, err = session.Submit(answer)
			if _, isMistake := state.(practice.ShowingMistake); err == nil && !isMistake {
				correct.Fprintln(a.stdout, "Correct!")
			}
		case practice.ShowingMistake:
			wrong.Fprintf(a.stdout, "Wrong. The answer is %q.\n", s.Correct)
			hint.Fprintln(a.stdout, s.Feedback())
			state, err = session.Acknowledge()
		case practice.AwaitingContinue:
			correct.Fprintf(a.stdout, "Group %s complete!\n", session.Group().Name)
			fmt.Fprint(a.stdout, "Continue practising? [y/N] ")
			line, ok := readLine()
			if !ok || !strings.EqualFold(line, "y") {
				return nil
			}
			state, err = session.Continue()
		default:
			return fmt.Errorf("unexpected session state %T", state)
		}
	}
	if errors.Is(err, practice.ErrNoQuestions) {
		fmt.Fprintln(a.stdout, "No question in this group can be asked; add translations or items.")
		return nil
	}
	return err
}

func (a *app) stopPractice(s *practice.Session) error {
	done, total := s.Progress()
	fmt.Fprintf(a.stdout, "\nStopped with %d of %d answered.\n", done, total)
	return nil
}

func (a *app) example(args []string) error {
	fs := a.subcommand("example", "")
	nFlag := fs.Int("n", 1, "Number of sentences")
	verbFlag := fs.Uint("verb", 0, "Use the verb with this uid")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	var verb *lexicon.Item
	if *verbFlag != 0 {
		it, ok := a.ws.Words.Item(uint32(*verbFlag))
		if !ok {
			return fmt.Errorf("verb #%d: %w", *verbFlag, lexicon.ErrNotFound)
		}
		verb = &it
	}
	for i := 0; i < *nFlag; i++ {
		words, err := sentence.Generate(a.ws.Words, nil, verb, a.rng)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.stdout, sentence.String(words))
	}
	return nil
}

func (a *app) groups(args []string) error {
	fs := a.subcommand("groups", "[list | create <name> | rename <group> <name> | delete <group> | show <group> | add <group> word|sentence <uid> | drop <group> <position>]")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if fs.NArg() == 0 || fs.Arg(0) == "list" {
		for i, g := range a.ws.Groups.Groups() {
			fmt.Fprintf(a.stdout, "%2d  %s  %s\n", i, bold.Sprint(g.Name), dim.Sprintf("(%d questions)", len(g.Questions)))
		}
		return nil
	}

	rest := fs.Args()[1:]
	need := func(n int) error {
		if len(rest) != n {
			fs.Usage()
			return errUsage
		}
		return nil
	}
	switch fs.Arg(0) {
	case "create":
		if err := need(1); err != nil {
			return err
		}
		i, err := a.ws.Groups.Add(rest[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(a.stdout, "Created group %d %s\n", i, rest[0])
	case "rename":
		if err := need(2); err != nil {
			return err
		}
		gi, err := a.findGroup(rest[0])
		if err != nil {
			return err
		}
		return a.ws.Groups.Rename(gi, rest[1])
	case "delete":
		if err := need(1); err != nil {
			return err
		}
		gi, err := a.findGroup(rest[0])
		if err != nil {
			return err
		}
		return a.ws.Groups.Delete(gi)
	case "show":
		if err := need(1); err != nil {
			return err
		}
		gi, err := a.findGroup(rest[0])
		if err != nil {
			return err
		}
		entries, err := a.ws.Groups.Describe(gi, a.ws.Words, a.ws.Sentences)
		if err != nil {
			return err
		}
		for j, e := range entries {
			if e.Deleted {
				unknown.Fprintf(a.stdout, "%2d  %s  (deleted)\n", j, e.Template)
				continue
			}
			fmt.Fprintf(a.stdout, "%2d  %s  %s\n", j, e.Template.Source, describeItem(e.Item))
		}
	case "add":
		if err := need(3); err != nil {
			return err
		}
		gi, err := a.findGroup(rest[0])
		if err != nil {
			return err
		}
		src, err := practice.ParseSource(rest[1])
		if err != nil {
			return err
		}
		uid, err := strconv.ParseUint(rest[2], 10, 32)
		if err != nil {
			return fmt.Errorf("invalid uid %q: %w", rest[2], err)
		}
		t := practice.Template{Source: src, UID: uint32(uid)}
		if _, err := a.ws.Resolve(t); err != nil {
			return err
		}
		return a.ws.Groups.AddQuestion(gi, t)
	case "drop":
		if err := need(2); err != nil {
			return err
		}
		gi, err := a.findGroup(rest[0])
		if err != nil {
			return err
		}
		j, err := strconv.Atoi(rest[1])
		if err != nil {
			return fmt.Errorf("invalid position %q: %w", rest[1], err)
		}
		return a.ws.Groups.RemoveQuestion(gi, j)
	default:
		fs.Usage()
		return errUsage
	}
	return nil
}
