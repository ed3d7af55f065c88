// Package main is an interactive tour of the valuekit library: dialogs,
// observable values, and descriptor watching wired through a container.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/valuekit/container"
	"github.com/dshills/valuekit/dialog"
	"github.com/dshills/valuekit/logging"
	"github.com/dshills/valuekit/metadata"
	"github.com/dshills/valuekit/observe"
	"github.com/dshills/valuekit/value"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

type options struct {
	LogLevel string
	Project  string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	c := container.New()
	defer c.Close()

	if err := container.Provide(c, func() *logging.Logger {
		return logging.New(logging.Config{
			Level:  logging.ParseLevel(opts.LogLevel),
			Output: os.Stderr,
			Prefix: "valuekit-demo",
		})
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	log := container.MustResolve[*logging.Logger](c)

	// Watch a project descriptor if one was given. Resolving it here hands
	// its lifetime to the container; Close stops the watch.
	if opts.Project != "" {
		w, err := metadata.NewWatcher(opts.Project, metadata.WithLogger(log))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to watch %s: %v\n", opts.Project, err)
			return 1
		}
		w.OnReload(func(ch observe.Change[metadata.Descriptor]) {
			log.Info("descriptor reloaded: %s %s", ch.New.Name, ch.New.Version)
		})
		if err := container.ProvideValue(c, w); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		d := container.MustResolve[*metadata.Watcher](c).Current()
		log.Info("watching %s (%s %s)", opts.Project, d.Name, d.Version)
	}

	screen, err := dialog.NewScreen(dialog.WithLogger(log))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to init screen: %v\n", err)
		return 1
	}
	defer screen.Fini()

	// Finalizing the screen unblocks any dialog waiting for input; the tour
	// then returns ErrScreenClosed and we exit through the normal path.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		screen.Fini()
	}()

	if err := tour(screen, log); err != nil {
		if errors.Is(err, dialog.ErrCanceled) || errors.Is(err, dialog.ErrScreenClosed) {
			return 0
		}
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// tour runs the dialog sequence. Any Esc aborts the whole tour.
func tour(screen *dialog.Screen, log *logging.Logger) error {
	creds, err := dialog.Login(screen, "Sign In")
	if err != nil {
		return err
	}
	log.Info("signed in as %s", creds.User)

	name, err := dialog.Prompt(screen, "Profile", "Display name:")
	if err != nil {
		return err
	}
	display := name.Trim()
	if display.IsBlank() {
		display = creds.User
	}

	// Count accepted answers through an observed wrapper.
	score := value.NewInt(0)
	score.OnChange(func(ch observe.Change[int]) {
		log.Debug("score %d -> %d", ch.Old, ch.New)
	})

	for _, q := range []string{
		"Do you use terminal dialogs?",
		"Should no-op sets stay silent?",
		"Is " + display.Get() + " your real name?",
	} {
		ans, err := dialog.Confirm(screen, "Survey", q)
		if err != nil {
			return err
		}
		if ans.IsTrue() {
			if err := score.Add(1); err != nil {
				return err
			}
		}
	}

	verdict := value.NewStr("mixed feelings")
	switch {
	case score.IsAtLeast(3):
		verdict = value.NewStr("a believer")
	case score.IsZero():
		verdict = value.NewStr("a skeptic")
	}

	msg := fmt.Sprintf("Thanks, %s.\n\nYou answered yes %d of 3 times: %s.",
		display, score.Get(), verdict)
	return dialog.MessageBox(screen, "Results", msg)
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.StringVar(&opts.Project, "project", "", "Project descriptor file to watch (.toml or .json)")
	flag.StringVar(&opts.Project, "p", "", "Project descriptor file to watch (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "valuekit-demo - interactive tour of the valuekit library\n\n")
		fmt.Fprintf(os.Stderr, "Usage: valuekit-demo [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("valuekit-demo %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		os.Exit(0)
	}

	switch opts.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.LogLevel)
		os.Exit(1)
	}

	return opts
}
