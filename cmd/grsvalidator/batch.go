package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Amr-9/GrsValidator/internal/config"
	"github.com/Amr-9/GrsValidator/internal/metrics"
	"github.com/Amr-9/GrsValidator/pkg/batch"
)

// source is a named input of the batch command.
type source struct {
	name string
	r    io.Reader
}

// feedAddresses sends one address per line of every source to in, then
// closes it. Blank lines and lines starting with # are skipped; surrounding
// whitespace is kept so it can be reported.
func feedAddresses(ctx context.Context, sources []source, in chan<- string) error {
	defer close(in)
	for _, src := range sources {
		scanner := bufio.NewScanner(src.r)
		for scanner.Scan() {
			line := strings.TrimRight(scanner.Text(), "\r")
			trimmed := strings.TrimSpace(line)
			if trimmed == "" || strings.HasPrefix(trimmed, "#") {
				continue
			}
			select {
			case in <- line:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("reading %s: %w", src.name, err)
		}
	}
	return nil
}

// inOrder hands results to emit in input order. Results that complete ahead
// of an earlier index wait in pending.
func inOrder(results <-chan batch.Result, emit func(batch.Result)) {
	pending := make(map[int]batch.Result)
	next := 0
	for res := range results {
		pending[res.Index] = res
		for {
			r, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			emit(r)
			next++
		}
	}
}

func openSources(stdin io.Reader, paths []string) ([]source, func(), error) {
	if len(paths) == 0 {
		return []source{{"stdin", stdin}}, func() {}, nil
	}

	var files []*os.File
	closeAll := func() {
		for _, f := range files {
			f.Close()
		}
	}
	sources := make([]source, 0, len(paths))
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			closeAll()
			return nil, nil, err
		}
		files = append(files, f)
		sources = append(sources, source{path, f})
	}
	return sources, closeAll, nil
}

func CmdBatch() *cobra.Command {
	var (
		invalidOnly bool
		metricsFile string
	)
	cmd := &cobra.Command{
		Use:   "batch [FILE...]",
		Short: "Validate addresses read from files or stdin, one per line.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := unwrapConfig(cmd.Context())
			network, err := cfg.ParsedNetwork()
			if err != nil {
				return err
			}

			sources, closeSources, err := openSources(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			defer closeSources()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			opts := []batch.Option{
				batch.WithWorkers(cfg.Workers),
				batch.WithNetwork(network),
			}
			var m *metrics.Metrics
			if metricsFile != "" {
				m = metrics.NewMetrics(metrics.Namespace)
				opts = append(opts, batch.WithObserver(m.Observer(metrics.SourceBatch)))
			}
			checker := batch.NewChecker(opts...)
			logrus.WithFields(logrus.Fields{
				"sources": len(sources),
				"workers": checker.Workers(),
			}).Info("validating")

			in := make(chan string)
			readErr := make(chan error, 1)
			go func() { readErr <- feedAddresses(ctx, sources, in) }()

			out := cmd.OutOrStdout()
			var (
				results []batch.Result
				emit    func(batch.Result)
			)
			if cfg.Output == config.OutputText {
				console := newConsole(out)
				emit = console.PrintResult
				defer func() { console.PrintStats(checker.Stats()) }()
			} else {
				emit = func(res batch.Result) { results = append(results, res) }
			}

			inOrder(checker.Start(ctx, in), func(res batch.Result) {
				if invalidOnly && res.Valid {
					return
				}
				emit(res)
			})

			err = <-readErr
			stats := checker.Stats()
			if ctx.Err() != nil {
				return fmt.Errorf("batch interrupted after %d addresses: %w", stats.Checked, ctx.Err())
			}
			if err != nil {
				return err
			}

			m.ObserveBatch(time.Duration(stats.ElapsedSecs * float64(time.Second)))
			if err := m.WriteTextfile(metricsFile); err != nil {
				return fmt.Errorf("writing metrics: %w", err)
			}

			if cfg.Output != config.OutputText {
				report := struct {
					Results []batch.Result `json:"results" yaml:"results"`
					Stats   batch.Stats    `json:"stats" yaml:"stats"`
				}{results, stats}
				if err := printData(out, cfg.Output, report); err != nil {
					return err
				}
			}

			if stats.Invalid > 0 {
				return errInvalidAddresses
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&invalidOnly, "invalid-only", false, "Only print invalid addresses")
	cmd.Flags().StringVar(&metricsFile, "metrics-file", "",
		"Write validation counters to this file in the prometheus text format")
	return cmd
}
