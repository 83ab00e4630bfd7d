package app

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hanmoa/internal/cli"
	"hanmoa/internal/config"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestRuntime(t *testing.T, mutate func(*Settings)) *Runtime {
	t.Helper()
	settings := Settings{Config: config.Default()}
	if mutate != nil {
		mutate(&settings)
	}
	rt, err := NewRuntime(settings, quietLogger())
	require.NoError(t, err)
	return rt
}

func writeInput(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestRunStdin(t *testing.T) {
	rt := newTestRuntime(t, nil)

	var out bytes.Buffer
	err := rt.Run(context.Background(), nil, strings.NewReader("ㅇㅏㄴㄴㅕㅇㅎㅏㅅㅔㅇㅛ\nㅎㅏㄴㄱㅡㄹ ABC123.\n"), &out)
	require.NoError(t, err)
	assert.Equal(t, "안녕하세요\n한글 ABC123.\n", out.String())
}

func TestRunDubeolsikWithClusters(t *testing.T) {
	rt := newTestRuntime(t, func(s *Settings) {
		s.Layout = "dubeolsik"
		s.MergeClusters = true
	})

	var out bytes.Buffer
	err := rt.Run(context.Background(), nil, strings.NewReader("rkqtdmf aorlek"), &out)
	require.NoError(t, err)
	assert.Equal(t, "값을 매기다", out.String())
}

func TestRunFilesKeepsArgumentOrder(t *testing.T) {
	dir := t.TempDir()
	inputs := []string{
		writeInput(t, dir, "a.txt", "ㄱㅏ\n"),
		writeInput(t, dir, "b.txt", "ㄴㅏ\n"),
		writeInput(t, dir, "c.txt", "ㄷㅏ\n"),
	}
	rt := newTestRuntime(t, func(s *Settings) { s.Workers = 2 })

	var out bytes.Buffer
	require.NoError(t, rt.Run(context.Background(), inputs, nil, &out))
	assert.Equal(t, "가\n나\n다\n", out.String())
}

func TestRunMissingFileWritesNothing(t *testing.T) {
	dir := t.TempDir()
	inputs := []string{
		writeInput(t, dir, "a.txt", "ㄱㅏ"),
		filepath.Join(dir, "missing.txt"),
	}
	rt := newTestRuntime(t, nil)

	var out bytes.Buffer
	err := rt.Run(context.Background(), inputs, nil, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.txt")
	assert.Empty(t, out.String())
}

func TestRunDecompose(t *testing.T) {
	rt := newTestRuntime(t, func(s *Settings) { s.Decompose = true })

	var out bytes.Buffer
	require.NoError(t, rt.Run(context.Background(), nil, strings.NewReader("값을 ok"), &out))
	assert.Equal(t, "ㄱㅏㅄㅇㅡㄹ ok", out.String())
}

func TestRunClassify(t *testing.T) {
	rt := newTestRuntime(t, func(s *Settings) { s.Classify = true })

	var out bytes.Buffer
	require.NoError(t, rt.Run(context.Background(), nil, strings.NewReader("ㄱㅏ1\n"), &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "'ㄱ'\tU+3131\tinitial-or-final\tconsonant\ttrue", lines[0])
	assert.Equal(t, "'ㅏ'\tU+314F\tmedial\tvowel\ttrue", lines[1])
	assert.Equal(t, "'1'\tU+0031\tdigit\tunknown\tfalse", lines[2])
}

func TestRunCanceledContext(t *testing.T) {
	dir := t.TempDir()
	inputs := []string{writeInput(t, dir, "a.txt", "ㄱㅏ")}
	rt := newTestRuntime(t, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := rt.Run(ctx, inputs, nil, &out)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

func TestNewRuntimeRejectsUnknownLayout(t *testing.T) {
	settings := Settings{Config: config.Default()}
	settings.Layout = "qwertz"
	_, err := NewRuntime(settings, quietLogger())
	assert.ErrorContains(t, err, "unknown layout")
}

func TestNewRuntimeAppliesKeypairs(t *testing.T) {
	dir := t.TempDir()
	pairs := writeInput(t, dir, "pairs.json", `[{"key": "x", "kind": "jamo", "normal": "ㅎ"}]`)
	rt := newTestRuntime(t, func(s *Settings) {
		s.Layout = "dubeolsik"
		s.KeypairPath = pairs
	})

	var out bytes.Buffer
	require.NoError(t, rt.Run(context.Background(), nil, strings.NewReader("xks"), &out))
	assert.Equal(t, "한", out.String())
}

func TestResolveSettings(t *testing.T) {
	cfg := config.Default()
	cfg.Layout = "dubeolsik"
	cfg.Workers = 2

	settings, err := ResolveSettings(cfg, cli.Options{
		LogLevel:      "debug",
		MergeClusters: true,
		Classify:      true,
	})
	require.NoError(t, err)
	assert.Equal(t, "dubeolsik", settings.Layout)
	assert.Equal(t, 2, settings.Workers)
	assert.Equal(t, "debug", settings.LogLevel)
	assert.True(t, settings.MergeClusters)
	assert.True(t, settings.Classify)

	settings, err = ResolveSettings(cfg, cli.Options{LayoutName: "none", Workers: 8})
	require.NoError(t, err)
	assert.Equal(t, "none", settings.Layout)
	assert.Equal(t, 8, settings.Workers)

	_, err = ResolveSettings(cfg, cli.Options{LogFormat: "xml"})
	assert.ErrorContains(t, err, "invalid log format")
}
