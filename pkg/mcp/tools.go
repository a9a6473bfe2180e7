package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Sumatoshi-tech/repostat/pkg/gitlib"
	"github.com/Sumatoshi-tech/repostat/pkg/history"
	"github.com/Sumatoshi-tech/repostat/pkg/render"
)

// Tool name constants.
const (
	ToolNameSummary = "repostat_summary"
	ToolNameHotspot = "repostat_hotspot"
)

// Tool descriptions shown to MCP clients.
const (
	summaryToolDescription = "Compute whole-history statistics for a Git repository: " +
		"number of commits, distinct authors, distinct entry paths and distinct changed entries."
	hotspotToolDescription = "Rank the entries of a Git repository by how many distinct " +
		"content revisions each path has seen across the selected history."
)

// Sentinel errors for tool input validation.
var (
	// ErrEmptyRepoPath indicates the repo_path parameter is empty.
	ErrEmptyRepoPath = errors.New("repo_path parameter is required and must not be empty")
	// ErrRepoPathNotAbsolute indicates the repo_path is not an absolute path.
	ErrRepoPathNotAbsolute = errors.New("repo_path must be an absolute path")
	// ErrRepoNotFound indicates the repository path does not exist.
	ErrRepoNotFound = errors.New("repository path does not exist")
	// ErrNotGitRepo indicates the path is not a git repository.
	ErrNotGitRepo = errors.New("path is not a git repository")
)

// Input types (auto-generate JSON schemas via struct tags).

// StatsInput is the shared input schema for the summary and hotspot tools.
type StatsInput struct {
	After    string   `json:"after,omitempty"   jsonschema:"only count commits authored strictly after this date (YYYY-MM-DD, UTC)"`
	Before   string   `json:"before,omitempty"  jsonschema:"only count commits authored strictly before this date (YYYY-MM-DD, UTC)"`
	Commits  []string `json:"commits,omitempty" jsonschema:"revision specifiers selecting the history (e.g. HEAD v1.0..v2.0 ^feature); default HEAD"`
	Grep     string   `json:"grep,omitempty"    jsonschema:"only count commits whose message contains this literal text"`
	RepoPath string   `json:"repo_path"         jsonschema:"absolute path to a Git repository"`
}

// Output type (used as structured output for generic AddTool).

// ToolOutput is a generic wrapper for tool results.
type ToolOutput struct {
	Data any `json:"data"`
}

// Result helpers.

// errorResult builds a CallToolResult with isError set.
func errorResult(err error) (*mcpsdk.CallToolResult, ToolOutput, error) {
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{
			&mcpsdk.TextContent{Text: err.Error()},
		},
		IsError: true,
	}, ToolOutput{}, nil
}

// jsonResult builds a CallToolResult with JSON-encoded content.
func jsonResult(value any) (*mcpsdk.CallToolResult, ToolOutput, error) {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return errorResult(fmt.Errorf("encode result: %w", err))
	}

	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{
			&mcpsdk.TextContent{Text: string(data)},
		},
	}, ToolOutput{Data: value}, nil
}

// handleSummary processes repostat_summary tool calls.
func handleSummary(
	ctx context.Context,
	_ *mcpsdk.CallToolRequest,
	input StatsInput,
) (*mcpsdk.CallToolResult, ToolOutput, error) {
	opts, repository, err := prepareRun(input)
	if err != nil {
		return errorResult(err)
	}
	defer repository.Free()

	stats, err := history.RunSummary(ctx, repository, opts)
	if err != nil {
		return errorResult(err)
	}

	return jsonResult(render.SummaryRecords(stats))
}

// handleHotspot processes repostat_hotspot tool calls.
func handleHotspot(
	ctx context.Context,
	_ *mcpsdk.CallToolRequest,
	input StatsInput,
) (*mcpsdk.CallToolResult, ToolOutput, error) {
	opts, repository, err := prepareRun(input)
	if err != nil {
		return errorResult(err)
	}
	defer repository.Free()

	records, err := history.RunHotspot(ctx, repository, opts)
	if err != nil {
		return errorResult(err)
	}

	return jsonResult(render.HotspotRecords(records))
}

// prepareRun validates the input, opens the repository and builds traversal
// options. The caller owns the returned repository.
func prepareRun(input StatsInput) (history.Options, *gitlib.Repository, error) {
	err := validateStatsInput(input)
	if err != nil {
		return history.Options{}, nil, err
	}

	filter, err := buildFilter(input)
	if err != nil {
		return history.Options{}, nil, err
	}

	repository, err := gitlib.LoadRepository(input.RepoPath)
	if err != nil {
		return history.Options{}, nil, fmt.Errorf("load repository: %w", err)
	}

	opts := history.Options{
		Specs:  input.Commits,
		Filter: filter,
	}

	return opts, repository, nil
}

// buildFilter converts the textual filter parameters into a commit filter.
func buildFilter(input StatsInput) (history.Filter, error) {
	filter := history.Filter{Pattern: input.Grep}

	if input.Before != "" {
		bound, err := history.ParseDateBound(input.Before)
		if err != nil {
			return history.Filter{}, err
		}

		filter.Before = &bound
	}

	if input.After != "" {
		bound, err := history.ParseDateBound(input.After)
		if err != nil {
			return history.Filter{}, err
		}

		filter.After = &bound
	}

	return filter, nil
}

// validateStatsInput validates the shared tool input parameters.
func validateStatsInput(input StatsInput) error {
	if input.RepoPath == "" {
		return ErrEmptyRepoPath
	}

	if !filepath.IsAbs(input.RepoPath) {
		return ErrRepoPathNotAbsolute
	}

	info, err := os.Stat(input.RepoPath)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrRepoNotFound, input.RepoPath)
	}

	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrRepoNotFound, input.RepoPath)
	}

	gitDir := filepath.Join(input.RepoPath, ".git")

	_, err = os.Stat(gitDir)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrNotGitRepo, input.RepoPath)
	}

	return nil
}
