package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	appErrors "shotcopy/internal/errors"
)

func TestValidateSource(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, mem.MkdirAll("/valid/instances/Alpha", 0o755))
	require.NoError(t, mem.MkdirAll("/bare", 0o755))
	require.NoError(t, mem.MkdirAll("/empty/instances", 0o755))
	require.NoError(t, afero.WriteFile(mem, "/filed/instances", []byte("x"), 0o644))

	cases := []struct {
		path string
		kind appErrors.Kind
	}{
		{"", appErrors.EmptySourcePath},
		{"/missing", appErrors.SourceNotFound},
		{"/bare", appErrors.MissingInstancesDirectory},
		{"/filed", appErrors.MissingInstancesDirectory},
		{"/empty", appErrors.NoInstancesPresent},
	}
	for _, tc := range cases {
		err := ValidateSource(mem, tc.path)
		require.Error(t, err, tc.path)
		require.Equal(t, tc.kind, appErrors.KindOf(err), tc.path)
	}

	require.NoError(t, ValidateSource(mem, "/valid"))
}

func TestValidateSourceCountsAnyEntry(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "/mmc/instances/instgroups.json", []byte("{}"), 0o644))

	require.NoError(t, ValidateSource(mem, "/mmc"))
}

func TestEnsureDestination(t *testing.T) {
	mem := afero.NewMemMapFs()

	_, err := EnsureDestination(mem, "")
	require.True(t, appErrors.Is(err, appErrors.EmptyDestinationPath))

	created, err := EnsureDestination(mem, "/out/shots/all")
	require.NoError(t, err)
	require.True(t, created)
	isDir, err := afero.DirExists(mem, "/out/shots/all")
	require.NoError(t, err)
	require.True(t, isDir)

	created, err = EnsureDestination(mem, "/out/shots/all")
	require.NoError(t, err)
	require.False(t, created)
}

func TestEnsureDestinationAcceptsExistingFile(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "/out", []byte("x"), 0o644))

	created, err := EnsureDestination(mem, "/out")
	require.NoError(t, err)
	require.False(t, created)
}

func TestEnsureDestinationCreateFailure(t *testing.T) {
	ro := afero.NewReadOnlyFs(afero.NewMemMapFs())

	_, err := EnsureDestination(ro, "/out")
	require.True(t, appErrors.Is(err, appErrors.DestinationCreateFailed))
}
