package cli

import (
	"fmt"
	"io"

	"github.com/aretw0/relay/internal/config"
	"github.com/aretw0/relay/internal/presentation/tui"
	"github.com/aretw0/relay/pkg/domain"
	"github.com/aretw0/relay/pkg/observability"
	"github.com/aretw0/relay/pkg/people"
	"github.com/prometheus/client_golang/prometheus"
)

// DemoOptions contains the configuration for the demo command.
type DemoOptions struct {
	ConfigPath string
	Debug      bool
	Metrics    bool
	Mode       string
	Trace      bool
	Quiet      bool
}

// RunDemo drives the people feature end to end on a fresh store: load the list,
// present the detail of the first person, edit and persist it, then reload.
func RunDemo(opts DemoOptions, out io.Writer) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}
	if opts.Metrics {
		cfg.Metrics = true
	}

	mode := domain.ModePresent
	if opts.Mode != "" {
		if mode, err = domain.ParseDeliveryMode(opts.Mode); err != nil {
			return fmt.Errorf("error parsing --mode: %w", err)
		}
	}

	logger, err := createLogger(opts.Debug, cfg.LogLevel)
	if err != nil {
		return err
	}

	trace := observability.NewTrace()
	hooks := []domain.LifecycleHooks{trace.Hooks(), observability.DebugHooks(logger)}
	var metrics *observability.Metrics
	if cfg.Metrics {
		metrics = observability.NewMetrics(prometheus.NewRegistry())
		hooks = append(hooks, metrics.Hooks())
	}

	store, err := NewStore(cfg, logger, observability.Combine(hooks...))
	if err != nil {
		return err
	}

	p := profileFor(out)
	if !opts.Quiet {
		tui.PrintBanner(out, p)
	}

	repo := seedRepository(cfg.People)
	people.Register(store, repo, people.WithLogger(logger))

	var failures []error
	store.SubscribeError(domain.ActionPeopleError, "demo", func(err error) { failures = append(failures, err) })
	store.SubscribeError(domain.ErrorAction(domain.ActionPresent), "demo", func(err error) { failures = append(failures, err) })

	model := people.NewModel(store)
	people.RegisterDetail(store, func(person domain.Person) {
		printSystemMessage(out, "Detail of %s (%s)", person.Name, mode)
		person.Name += " (edited)"
		people.Persist(store, person)
	})

	model.Load(func() { printPeople(out, "Loaded", model.Items()) })
	if model.Len() == 0 {
		printSystemMessage(out, "No people to present.")
	} else {
		people.Select(store, store, model.Get(0), mode)
		model.Load(func() { printPeople(out, "Reloaded", model.Items()) })
	}

	for _, err := range failures {
		printSystemMessage(out, "Error: %v", err)
	}

	if opts.Trace {
		fmt.Fprintln(out)
		tui.PrintTrace(out, p, trace.Events())
	}
	if metrics != nil {
		fmt.Fprintln(out)
		if err := metrics.WriteText(out); err != nil {
			return err
		}
	}
	return nil
}

func seedRepository(names []string) *people.Repository {
	if len(names) == 0 {
		return people.NewRepository(people.Seed()...)
	}
	repo := people.NewRepository()
	for _, name := range names {
		repo.Create(name)
	}
	return repo
}

func printPeople(w io.Writer, title string, list []domain.Person) {
	printSystemMessage(w, "%s %d people", title, len(list))
	for i, person := range list {
		fmt.Fprintf(w, "  %d. %s\n", i+1, person.Name)
	}
}
