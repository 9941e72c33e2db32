package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/rmapi/internal/constants"
	"github.com/fivetwenty-io/rmapi/pkg/repository"
	"github.com/fivetwenty-io/rmapi/pkg/rmapi"
	"github.com/fivetwenty-io/rmapi/pkg/rmclient"
)

// Output formats.
const (
	OutputFormatJSON  = "json"
	OutputFormatYAML  = "yaml"
	OutputFormatTable = "table"
)

// Viper keys shared by flags, environment and the config file.
const (
	keyAPI       = "api"
	keyOutput    = "output"
	keyTimeout   = "timeout"
	keyRetryMax  = "retry_max"
	keyUserAgent = "user_agent"
	keyVerbose   = "verbose"
)

// Session bundles what a command needs to talk to the API.
type Session struct {
	Repository *repository.Default
	Metrics    *rmapi.MetricsCollector
}

// NewSession builds a repository from the current viper settings. Every
// request is recorded in the session's metrics collector.
func NewSession() (*Session, error) {
	collector := rmapi.NewMetricsCollector()

	config := &rmapi.Config{
		APIEndpoint:  viper.GetString(keyAPI),
		HTTPTimeout:  viper.GetDuration(keyTimeout),
		RetryMax:     viper.GetInt(keyRetryMax),
		UserAgent:    viper.GetString(keyUserAgent),
		Interceptors: rmapi.NewInterceptorChain().WithMetrics(collector),
	}

	if viper.GetBool(keyVerbose) {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		config.Logger = rmapi.NewSlogLogger(slog.New(handler))
		config.Debug = true
	}

	repo, err := rmclient.NewRepository(config)
	if err != nil {
		return nil, fmt.Errorf("creating repository: %w", err)
	}

	return &Session{Repository: repo, Metrics: collector}, nil
}

// outputFormat returns the configured output format.
func outputFormat() string {
	format := strings.ToLower(viper.GetString(keyOutput))
	if format == "" {
		return OutputFormatTable
	}

	return format
}

func writeJSON(w io.Writer, value interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", strings.Repeat(" ", constants.JSONIndentSize))

	err := encoder.Encode(value)
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}

func writeYAML(w io.Writer, value interface{}) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(constants.JSONIndentSize)

	err := encoder.Encode(value)
	if err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return encoder.Close()
}

// renderCharacters writes characters in the configured format.
func renderCharacters(w io.Writer, characters []rmapi.Character) error {
	switch outputFormat() {
	case OutputFormatJSON:
		return writeJSON(w, characters)
	case OutputFormatYAML:
		return writeYAML(w, characters)
	default:
		return renderCharactersTable(w, characters)
	}
}

func renderCharactersTable(w io.Writer, characters []rmapi.Character) error {
	if len(characters) == 0 {
		_, _ = io.WriteString(w, "No characters found\n")

		return nil
	}

	nameWidth := nameColumnWidth()

	table := tablewriter.NewWriter(w)
	table.Header("ID", "Name", "Status", "Species", "Gender", "Origin", "Location")

	for _, character := range characters {
		err := table.Append(
			strconv.Itoa(character.ID),
			truncate(character.Name, nameWidth),
			character.Status.DisplayName(),
			character.Species,
			character.Gender.DisplayName(),
			truncate(character.Origin.Name, nameWidth),
			truncate(character.Location.Name, nameWidth),
		)
		if err != nil {
			return fmt.Errorf("failed to append table row: %w", err)
		}
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// nameColumnWidth sizes the free-text columns to the terminal.
func nameColumnWidth() int {
	width := constants.DefaultTableWidth

	fd := int(os.Stdout.Fd()) //nolint:gosec // file descriptors fit in int
	if term.IsTerminal(fd) {
		if cols, _, err := term.GetSize(fd); err == nil && cols > 0 {
			width = cols
		}
	}

	// ID, status, species and gender take roughly half the row.
	column := width / 2 / 3

	return max(column, constants.MinNameColumnWidth)
}

func truncate(value string, width int) string {
	runes := []rune(value)
	if len(runes) <= width {
		return value
	}

	return string(runes[:width-1]) + "…"
}

// paginationSummary describes where the cursor stands.
func paginationSummary(cursor repository.Cursor, cached int) string {
	if !cursor.Loaded() {
		return fmt.Sprintf("%d characters cached, no page loaded", cached)
	}

	return fmt.Sprintf("%d characters cached, page %d of %d", cached, cursor.CurrentPage, *cursor.TotalPages)
}

// writeStats prints the request metrics recorded during the session.
func writeStats(w io.Writer, collector *rmapi.MetricsCollector) error {
	snapshot := collector.Snapshot()

	table := tablewriter.NewWriter(w)
	table.Header("Endpoint", "Requests", "Errors", "Avg Latency")

	for _, endpoint := range slices.Sorted(maps.Keys(snapshot)) {
		metrics := snapshot[endpoint]

		err := table.Append(
			endpoint,
			strconv.FormatInt(metrics.TotalRequests, 10),
			strconv.FormatInt(metrics.TotalErrors, 10),
			metrics.AverageLatency.String(),
		)
		if err != nil {
			return fmt.Errorf("failed to append table row: %w", err)
		}
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	_, _ = fmt.Fprintf(w, "Network requests: %d\n", collector.TotalRequests())

	return nil
}
