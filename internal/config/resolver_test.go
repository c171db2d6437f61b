package config

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	appErrors "shotcopy/internal/errors"
	"shotcopy/internal/presentation"
	"shotcopy/internal/prompt"
)

func newResolver(t *testing.T, input string) (*Resolver, *bytes.Buffer, afero.Fs) {
	t.Helper()
	mem := afero.NewMemMapFs()
	require.NoError(t, mem.MkdirAll("/mmc/instances/Alpha", 0o755))
	require.NoError(t, mem.MkdirAll("/bare", 0o755))

	var out bytes.Buffer
	return &Resolver{
		FS:       mem,
		Prompter: prompt.New(strings.NewReader(input), &out),
		Printer:  presentation.NewPrinter(&out, false),
		Program:  "shotcopy",
	}, &out, mem
}

func TestResolveFromArgumentsWithoutPrompting(t *testing.T) {
	r, out, mem := newResolver(t, "")

	cfg, err := r.Resolve([]string{"/mmc", "/out"}, Options{})
	require.NoError(t, err)
	require.Equal(t, "/mmc", cfg.SourceRoot)
	require.Equal(t, "/out", cfg.DestinationRoot)
	require.NotContains(t, out.String(), "Please enter")
	require.Contains(t, out.String(), "Created output folder: /out")

	isDir, err := afero.DirExists(mem, "/out")
	require.NoError(t, err)
	require.True(t, isDir)
}

func TestResolveRepromptsInvalidSource(t *testing.T) {
	r, out, _ := newResolver(t, "/bare\n/mmc\n")

	cfg, err := r.Resolve([]string{"/missing", "/out"}, Options{})
	require.NoError(t, err)
	require.Equal(t, "/mmc", cfg.SourceRoot)

	output := out.String()
	require.Contains(t, output, "Error: The MultiMC folder provided does not exist")
	require.Contains(t, output, "Error: The MultiMC folder does not contain an 'instances' folder")
	require.Equal(t, 2, strings.Count(output, sourceLabel))
}

func TestResolveEmptyArgumentReprompts(t *testing.T) {
	r, out, _ := newResolver(t, "/out\n")

	cfg, err := r.Resolve([]string{"/mmc", ""}, Options{})
	require.NoError(t, err)
	require.Equal(t, "/out", cfg.DestinationRoot)
	require.Contains(t, out.String(), "Error: No value given for the output folder")
}

func TestResolveInteractive(t *testing.T) {
	r, out, _ := newResolver(t, "\n/mmc\n/out\n")

	cfg, err := r.Resolve(nil, Options{})
	require.NoError(t, err)
	require.Equal(t, "/mmc", cfg.SourceRoot)
	require.Equal(t, "/out", cfg.DestinationRoot)

	output := out.String()
	require.Contains(t, output, "Typical command prompt Usage: shotcopy <MultiMC folder path> <output folder path>")
	require.Equal(t, 2, strings.Count(output, sourceLabel))
	require.Equal(t, 1, strings.Count(output, destinationLabel))
}

func TestResolveNonInteractiveFailsFast(t *testing.T) {
	r, _, _ := newResolver(t, "/mmc\n")

	_, err := r.Resolve([]string{"/bare", "/out"}, Options{NonInteractive: true})
	require.True(t, appErrors.Is(err, appErrors.MissingInstancesDirectory))

	_, err = r.Resolve([]string{"/mmc"}, Options{NonInteractive: true})
	require.True(t, appErrors.Is(err, appErrors.InvalidConfig))
}

func TestResolveInputClosed(t *testing.T) {
	r, _, _ := newResolver(t, "/still/missing\n")

	_, err := r.Resolve([]string{"/missing", "/out"}, Options{})
	require.True(t, appErrors.Is(err, appErrors.InputClosed))
}

func TestResolveDestinationCreateFailureReprompts(t *testing.T) {
	r, out, mem := newResolver(t, "/out\n")
	r.FS = &failingMkdirFs{Fs: mem, fail: "/locked/out"}

	cfg, err := r.Resolve([]string{"/mmc", "/locked/out"}, Options{})
	require.NoError(t, err)
	require.Equal(t, "/out", cfg.DestinationRoot)
	require.Contains(t, out.String(), "Error: Failed to create output folder: mkdir /locked/out: permission denied")
}

func TestConfirm(t *testing.T) {
	r, out, _ := newResolver(t, "sure\nNO\n")
	cfg := Config{SourceRoot: "/mmc", DestinationRoot: "/out"}

	ok, err := r.Confirm(cfg)
	require.NoError(t, err)
	require.False(t, ok)
	require.True(t, strings.HasPrefix(out.String(), "\nCopy screenshots from"))
	require.Contains(t, out.String(), "Copy screenshots from /mmc to /out (yes/no): ")
	require.Contains(t, out.String(), "Please enter 'yes' or 'no'.")
	require.Contains(t, out.String(), "Operation cancelled!")
}

func TestConfirmSkippedWithYes(t *testing.T) {
	r, out, _ := newResolver(t, "")

	ok, err := r.Confirm(Config{Options: Options{Yes: true}})
	require.NoError(t, err)
	require.True(t, ok)
	require.Empty(t, out.String())
}

func TestConfirmInputClosed(t *testing.T) {
	r, _, _ := newResolver(t, "")

	_, err := r.Confirm(Config{})
	require.True(t, appErrors.Is(err, appErrors.InputClosed))
}
