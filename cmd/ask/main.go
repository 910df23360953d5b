package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/adrianliechti/go-cli"
	"github.com/charmbracelet/glamour"

	"github.com/adrianliechti/wingman-research/pkg/client"
	"github.com/adrianliechti/wingman-research/pkg/config"
	"github.com/adrianliechti/wingman-research/pkg/logger"
	"github.com/adrianliechti/wingman-research/pkg/personality"
	"github.com/adrianliechti/wingman-research/pkg/session"
)

func main() {
	file := flag.String("file", "", "document to upload (pdf or docx)")
	mood := flag.String("personality", "", "helpful, formal or casual")
	name := flag.String("name", "", "name of the agent")
	width := flag.Int("width", 100, "word wrap width")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [question ...]\n\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}

	flag.Parse()

	cfg, err := config.Default()

	if err != nil {
		fail(err)
	}

	if *mood != "" {
		p, err := personality.Parse(*mood)

		if err != nil {
			fail(err)
		}

		cfg.Personality = p
	}

	if *name != "" {
		cfg.AgentName = *name
	}

	if *file == "" && flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	cleanup, err := logger.Setup(cfg, os.Stderr)

	if err != nil {
		fail(err)
	}

	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(*width),
	)

	if err != nil {
		fail(err)
	}

	r := &runner{
		session:  session.New(client.New(cfg), cfg.Personality),
		renderer: renderer,
	}

	if err := r.run(ctx, cfg.AgentName, *file, flag.Args()); err != nil {
		cleanup()
		fail(err)
	}
}

func fail(err error) {
	var apiErr *client.Error

	if errors.As(err, &apiErr) && apiErr.Message != "" {
		cli.Error(fmt.Sprintf("%s failed: %s", apiErr.Op, apiErr.Status))
		cli.Error(apiErr.Message)
	} else {
		cli.Error(err.Error())
	}

	os.Exit(1)
}

type runner struct {
	session  *session.Session
	renderer *glamour.TermRenderer
}

// run creates the agent, uploads the document and asks every question in
// order, stopping at the first failure
func (r *runner) run(ctx context.Context, name, file string, questions []string) error {
	agent, err := r.session.CreateAgent(ctx, name)

	if err != nil {
		return err
	}

	snap := r.session.Snapshot()

	cli.Info(fmt.Sprintf("🤖 %s (%s)", agent.Name, snap.Personality))
	cli.Info()

	if file != "" {
		if _, err := r.session.SelectFile(file); err != nil {
			return err
		}

		cli.Info(snap.Personality.UploadPrompt())
		cli.Info("📄 " + filepath.Base(file))
		cli.Info()

		if err := r.session.Upload(ctx); err != nil {
			return err
		}

		if err := r.print("## Summary\n\n" + r.session.Snapshot().Summary); err != nil {
			return err
		}
	}

	for _, q := range questions {
		reply, err := r.session.Send(ctx, q)

		if err != nil {
			return err
		}

		if err := r.print(fmt.Sprintf("**%s:** %s\n\n**%s:** %s", session.SpeakerUser, q, session.SpeakerAssistant, reply)); err != nil {
			return err
		}
	}

	return nil
}

func (r *runner) print(markdown string) error {
	out, err := r.renderer.Render(markdown)

	if err != nil {
		return err
	}

	fmt.Print(out)

	return nil
}
