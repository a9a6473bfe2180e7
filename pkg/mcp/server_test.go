package mcp

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServerRegistersTools(t *testing.T) {
	t.Parallel()

	srv := NewServer(ServerDeps{})

	assert.Equal(t, []string{ToolNameHotspot, ToolNameSummary}, srv.ListToolNames())
}

func TestValidateStatsInput(t *testing.T) {
	t.Parallel()

	repoDir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(repoDir, ".git"), 0o750))

	plainDir := t.TempDir()

	filePath := filepath.Join(t.TempDir(), "somefile")
	require.NoError(t, os.WriteFile(filePath, []byte("x"), 0o600))

	tests := []struct {
		name     string
		repoPath string
		wantErr  error
	}{
		{name: "valid repository", repoPath: repoDir, wantErr: nil},
		{name: "empty path", repoPath: "", wantErr: ErrEmptyRepoPath},
		{name: "relative path", repoPath: "some/repo", wantErr: ErrRepoPathNotAbsolute},
		{name: "missing path", repoPath: filepath.Join(repoDir, "absent"), wantErr: ErrRepoNotFound},
		{name: "path is a file", repoPath: filePath, wantErr: ErrRepoNotFound},
		{name: "no .git directory", repoPath: plainDir, wantErr: ErrNotGitRepo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := validateStatsInput(StatsInput{RepoPath: tt.repoPath})

			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestBuildFilter(t *testing.T) {
	t.Parallel()

	filter, err := buildFilter(StatsInput{Grep: "fix", Before: "2024-02-01", After: "2023-01-15"})
	require.NoError(t, err)

	assert.Equal(t, "fix", filter.Pattern)
	require.NotNil(t, filter.Before)
	require.NotNil(t, filter.After)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), *filter.Before)
	assert.Equal(t, time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC), *filter.After)
}

func TestBuildFilterRejectsBadDates(t *testing.T) {
	t.Parallel()

	_, err := buildFilter(StatsInput{Before: "02/01/2024"})
	assert.Error(t, err)

	_, err = buildFilter(StatsInput{After: "last week"})
	assert.Error(t, err)
}

func TestErrorResultSetsIsError(t *testing.T) {
	t.Parallel()

	result, output, err := errorResult(ErrEmptyRepoPath)

	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Nil(t, output.Data)
}

func TestJSONResultCarriesValue(t *testing.T) {
	t.Parallel()

	value := map[string]int{"n": 3}

	result, output, err := jsonResult(value)

	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Equal(t, value, output.Data)
}
