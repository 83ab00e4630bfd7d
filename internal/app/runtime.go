package app

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/transform"

	"hanmoa/internal/hangul"
	"hanmoa/internal/layout"
	"hanmoa/internal/stream"
)

type Runtime struct {
	settings Settings
	layout   *layout.Layout
	log      *slog.Logger
}

func NewRuntime(settings Settings, log *slog.Logger) (*Runtime, error) {
	rt := &Runtime{settings: settings, log: log}
	if err := rt.prepareLayout(); err != nil {
		return nil, err
	}
	return rt, nil
}

func (rt *Runtime) prepareLayout() error {
	loaded, err := layout.Load(rt.settings.Layout)
	if err != nil {
		return fmt.Errorf("load layout: %w", err)
	}
	if rt.settings.KeypairPath != "" {
		pairs, err := layout.LoadCustomPairs(rt.settings.KeypairPath)
		if err != nil {
			return err
		}
		if err := layout.ApplyCustomPairs(loaded, pairs); err != nil {
			return fmt.Errorf("apply %s: %w", rt.settings.KeypairPath, err)
		}
		rt.log.Debug("applied custom key pairs", "path", rt.settings.KeypairPath, "count", len(pairs))
	}
	rt.layout = loaded
	return nil
}

// Run processes stdin when inputs is empty, otherwise every named file.
// Files are processed concurrently; output is written in argument order and
// only once every file succeeded.
func (rt *Runtime) Run(ctx context.Context, inputs []string, stdin io.Reader, stdout io.Writer) error {
	if len(inputs) == 0 {
		rt.log.Debug("reading standard input", "layout", rt.layout.Name())
		return rt.process(stdout, stdin)
	}

	workers := lo.Ternary(rt.settings.Workers > 0, rt.settings.Workers, runtime.GOMAXPROCS(0))
	results := lo.Times(len(inputs), func(int) *bytes.Buffer { return new(bytes.Buffer) })

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, path := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := rt.processFile(results[i], path); err != nil {
				rt.log.Error("processing failed", "input", path, "error", err)
				return fmt.Errorf("%s: %w", path, err)
			}
			rt.log.Debug("processed input", "input", path, "bytes", results[i].Len())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	total := lo.SumBy(results, func(b *bytes.Buffer) int { return b.Len() })
	for _, result := range results {
		if _, err := result.WriteTo(stdout); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}
	rt.log.Debug("done", "inputs", len(inputs), "bytes", total)
	return nil
}

func (rt *Runtime) processFile(w io.Writer, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return rt.process(w, file)
}

func (rt *Runtime) process(w io.Writer, r io.Reader) error {
	if rt.settings.Classify {
		return writeClassification(w, transform.NewReader(r, rt.prepareChain()))
	}
	_, err := io.Copy(w, transform.NewReader(r, rt.chain()))
	return err
}

// prepareChain covers the stages that run ahead of composition.
func (rt *Runtime) prepareChain() transform.Transformer {
	stages := []transform.Transformer{stream.NewTransformer(layout.NewTranslator(rt.layout))}
	if rt.settings.MergeClusters {
		stages = append(stages, stream.NewTransformer(hangul.NewClusterMerger()))
	}
	return transform.Chain(stages...)
}

func (rt *Runtime) chain() transform.Transformer {
	if rt.settings.Decompose {
		return stream.NewTransformer(hangul.Decomposer{})
	}
	return transform.Chain(rt.prepareChain(), stream.NewTransformer(hangul.NewComposer()))
}
