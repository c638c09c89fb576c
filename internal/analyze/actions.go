package analyze

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dtnitsch/llm-citability/internal/common"
	"github.com/dtnitsch/llm-citability/internal/config"
	"github.com/dtnitsch/llm-citability/models"
	"github.com/dtnitsch/llm-citability/pkg/analyzer"
	"github.com/dtnitsch/llm-citability/pkg/db"
	"github.com/dtnitsch/llm-citability/pkg/fetcher"
	"github.com/dtnitsch/llm-citability/pkg/language"
	"github.com/urfave/cli/v2"
)

// Input holds the source flags of one analyze invocation.
type Input struct {
	Text     string
	File     string
	HTMLFile string
	URL      string
}

// Resolve returns the single source that was given.
func (in Input) Resolve() (models.InputKind, string, error) {
	var kinds []models.InputKind
	var values []string
	if in.Text != "" {
		kinds, values = append(kinds, models.InputRawText), append(values, in.Text)
	}
	if in.File != "" {
		kinds, values = append(kinds, models.InputRawText), append(values, in.File)
	}
	if in.HTMLFile != "" {
		kinds, values = append(kinds, models.InputHTML), append(values, in.HTMLFile)
	}
	if in.URL != "" {
		kinds, values = append(kinds, models.InputURL), append(values, in.URL)
	}

	switch len(kinds) {
	case 0:
		return 0, "", errors.New("no input provided: use one of --text, --file, --html-file or --url")
	case 1:
		return kinds[0], values[0], nil
	default:
		return 0, "", errors.New("only one of --text, --file, --html-file or --url may be given")
	}
}

func AnalyzeAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(c.App.ErrWriter, &slog.HandlerOptions{Level: logLevel}))

	format := strings.ToLower(c.String("format"))
	if format != FormatJSON && format != FormatYAML {
		return cli.Exit(fmt.Sprintf("unsupported format %q: use json or yaml", format), 1)
	}

	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	if c.IsSet("timeout") {
		cfg.Fetch.Timeout = c.Duration("timeout")
	}
	if c.IsSet("db") {
		cfg.Database.Path = c.String("db")
	}

	input := Input{
		Text:     c.String("text"),
		File:     c.String("file"),
		HTMLFile: c.String("html-file"),
		URL:      c.String("url"),
	}
	kind, value, err := input.Resolve()
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	var content models.Content
	switch {
	case kind == models.InputURL:
		rawURL, err := common.SanitizeAndValidateURL(value)
		if err != nil {
			return cli.Exit(fmt.Sprintf("invalid --url: %v", err), 1)
		}
		content, err = fetchURL(c.Context, cfg, rawURL, !c.Bool("no-db"), logger)
		if err != nil {
			return cli.Exit(err.Error(), 2)
		}
	case input.Text != "":
		content = models.Content{Text: value}
	default:
		data, err := readSource(value, c.App.Reader)
		if err != nil {
			return cli.Exit(err.Error(), 2)
		}
		if kind == models.InputHTML {
			content = models.Content{HTML: string(data)}
		} else {
			content = models.Content{Text: string(data)}
		}
	}

	logger.Info("Analyzing content", "input", kind.String(), "url", content.URL)
	analysis := analyzer.Analyze(content, cfg.Thresholds)
	report := BuildReport(kind, content, analysis, language.NewDetector(), c.Int("top-terms"))
	logger.Info("Analysis complete",
		"word_count", report.Metrics.WordCount,
		"recommendations", len(report.Recommendations),
		"language", report.Language.ISOCode,
	)

	if err := WriteReport(c.App.Writer, report, format); err != nil {
		return cli.Exit(err.Error(), 2)
	}
	return nil
}

// readSource reads a file, or r when path is "-".
func readSource(path string, r io.Reader) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}
	return data, nil
}

// fetchURL retrieves rawURL and, when record is set, logs the attempt to
// the fetch log. A fetch log that cannot be opened only costs a warning.
func fetchURL(ctx context.Context, cfg *config.Config, rawURL string, record bool, logger *slog.Logger) (models.Content, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, cfg.Fetch.Timeout)
	defer cancel()

	f := fetcher.NewFetcher(cfg.Fetch, logger)
	logger.Info("Fetching URL", "url", rawURL, "timeout", cfg.Fetch.Timeout.String())
	content, fetchErr := f.Fetch(ctx, rawURL)

	if record {
		recordFetch(cfg.Database.Path, rawURL, fetchErr, logger)
	}

	if fetchErr != nil {
		logger.Error("Failed to fetch URL", "url", rawURL, "error", fetchErr)
		return models.Content{}, fetchErr
	}
	return content, nil
}

func recordFetch(dbPath, rawURL string, fetchErr error, logger *slog.Logger) {
	database, err := db.Open(dbPath)
	if err != nil {
		logger.Warn("Failed to open fetch log", "error", err)
		return
	}
	defer database.Close()

	statusCode, errorType := 200, ""
	var fe *fetcher.FetchError
	if errors.As(fetchErr, &fe) {
		statusCode, errorType = fe.StatusCode, fe.Kind
	} else if fetchErr != nil {
		statusCode, errorType = 0, fetcher.KindRequest
	}

	if err := database.RecordFetch(rawURL, statusCode, errorType, fetchErr == nil); err != nil {
		logger.Warn("Failed to record fetch", "url", rawURL, "error", err)
	}
}
