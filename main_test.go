package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

const testHTML = `<html><head><title>Test Page</title></head><body>
<article>
<h1>Measuring Readability</h1>
<p>Readable content uses short sentences. According to Smith (2021), short
sentences improve comprehension by 30% in controlled studies.</p>
<h2>Checklist</h2>
<ul><li>Use headings for every section</li><li>Cite at least 3 sources</li></ul>
<p>See https://example.org/study for the full dataset and method notes.</p>
</article>
</body></html>`

type runResult struct {
	stdout string
	err    error
}

// runApp executes the CLI with args and captures stdout.
func runApp(t *testing.T, stdin string, args ...string) runResult {
	t.Helper()
	t.Setenv("CITABILITY_DB", "")
	t.Setenv("CITABILITY_USER_AGENT", "")

	var stdout, stderr bytes.Buffer
	app := newApp()
	app.Writer = &stdout
	app.ErrWriter = &stderr
	app.Reader = strings.NewReader(stdin)
	app.ExitErrHandler = func(*cli.Context, error) {}

	err := app.Run(append([]string{"citability"}, args...))
	return runResult{stdout: stdout.String(), err: err}
}

func exitCode(err error) int {
	var exitErr cli.ExitCoder
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	if err != nil {
		return -1
	}
	return 0
}

type reportJSON struct {
	Input   string `json:"input"`
	URL     string `json:"url"`
	Title   string `json:"title"`
	Metrics struct {
		WordCount     int `json:"word_count"`
		SentenceCount int `json:"sentence_count"`
	} `json:"metrics"`
	Structure struct {
		HeadingCount int    `json:"heading_count"`
		Source       string `json:"source"`
	} `json:"structure"`
	TopTerms []struct {
		Term  string `json:"term"`
		Count int    `json:"count"`
	} `json:"top_terms"`
	Recommendations []struct {
		Rule string `json:"rule"`
	} `json:"recommendations"`
}

func decodeReport(t *testing.T, out string) reportJSON {
	t.Helper()
	var r reportJSON
	if err := json.Unmarshal([]byte(out), &r); err != nil {
		t.Fatalf("failed to decode report: %v\n%s", err, out)
	}
	return r
}

func hasRule(r reportJSON, rule string) bool {
	for _, rec := range r.Recommendations {
		if rec.Rule == rule {
			return true
		}
	}
	return false
}

func missingConfig(t *testing.T) string {
	return filepath.Join(t.TempDir(), "none.yaml")
}

func TestAnalyze_Text(t *testing.T) {
	res := runApp(t, "", "analyze", "--quiet", "--config", missingConfig(t), "--text", "Hello world. This is a test.")
	if res.err != nil {
		t.Fatalf("analyze error = %v", res.err)
	}

	r := decodeReport(t, res.stdout)
	if r.Input != "text" {
		t.Errorf("input = %q, want text", r.Input)
	}
	if r.Metrics.WordCount != 6 || r.Metrics.SentenceCount != 2 {
		t.Errorf("metrics = %+v, want 6 words and 2 sentences", r.Metrics)
	}
	if !hasRule(r, "short_content") {
		t.Errorf("recommendations = %+v, want short_content", r.Recommendations)
	}
}

func TestAnalyze_EmptyText(t *testing.T) {
	res := runApp(t, "   \n", "analyze", "--quiet", "--config", missingConfig(t), "--file", "-")
	if res.err != nil {
		t.Fatalf("analyze error = %v", res.err)
	}

	r := decodeReport(t, res.stdout)
	if r.Metrics.WordCount != 0 {
		t.Errorf("word_count = %d, want 0", r.Metrics.WordCount)
	}
	if len(r.Recommendations) != 1 || r.Recommendations[0].Rule != "no_content" {
		t.Errorf("recommendations = %+v, want only no_content", r.Recommendations)
	}
	if r.TopTerms == nil {
		t.Error("top_terms = null, want empty list")
	}
}

func TestAnalyze_HTMLFromStdin(t *testing.T) {
	res := runApp(t, testHTML, "analyze", "--quiet", "--config", missingConfig(t), "--html-file", "-")
	if res.err != nil {
		t.Fatalf("analyze error = %v", res.err)
	}

	r := decodeReport(t, res.stdout)
	if r.Input != "html" {
		t.Errorf("input = %q, want html", r.Input)
	}
	if r.Structure.Source != "html" || r.Structure.HeadingCount != 2 {
		t.Errorf("structure = %+v, want 2 headings from html", r.Structure)
	}
	if r.Metrics.WordCount == 0 {
		t.Error("word_count = 0, want text extracted from HTML")
	}
}

func TestAnalyze_YAMLFormat(t *testing.T) {
	res := runApp(t, "", "analyze", "--quiet", "--config", missingConfig(t), "--format", "yaml", "--text", "One two three.")
	if res.err != nil {
		t.Fatalf("analyze error = %v", res.err)
	}

	var r map[string]interface{}
	if err := yaml.Unmarshal([]byte(res.stdout), &r); err != nil {
		t.Fatalf("output is not YAML: %v", err)
	}
	if r["input"] != "text" {
		t.Errorf("input = %v, want text", r["input"])
	}
	if _, ok := r["metrics"]; !ok {
		t.Error("metrics missing from YAML output")
	}
}

func TestAnalyze_URLAndHistory(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(testHTML))
	}))
	defer server.Close()

	dbPath := filepath.Join(t.TempDir(), "fetch.db")
	cfgPath := missingConfig(t)

	res := runApp(t, "", "analyze", "--quiet", "--config", cfgPath, "--db", dbPath, "--url", server.URL+"/page")
	if res.err != nil {
		t.Fatalf("analyze error = %v", res.err)
	}
	r := decodeReport(t, res.stdout)
	if r.Input != "url" || r.URL != server.URL+"/page" {
		t.Errorf("input/url = %q %q, want url %s/page", r.Input, r.URL, server.URL)
	}
	if r.Title == "" {
		t.Error("title is empty, want page title")
	}

	res = runApp(t, "", "analyze", "--quiet", "--config", cfgPath, "--db", dbPath, "--url", server.URL+"/missing")
	if code := exitCode(res.err); code != 2 {
		t.Fatalf("exit code = %d (%v), want 2", code, res.err)
	}
	if !strings.Contains(res.err.Error(), "unable to retrieve content") {
		t.Errorf("error = %q, want retrieval failure message", res.err)
	}

	res = runApp(t, "", "history", "--config", cfgPath, "--db", dbPath, "--format", "json")
	if res.err != nil {
		t.Fatalf("history error = %v", res.err)
	}
	var records []struct {
		URL        string `json:"url"`
		StatusCode int    `json:"status_code"`
		ErrorType  string `json:"error_type"`
		Success    bool   `json:"success"`
	}
	if err := json.Unmarshal([]byte(res.stdout), &records); err != nil {
		t.Fatalf("failed to decode history: %v\n%s", err, res.stdout)
	}
	if len(records) != 2 {
		t.Fatalf("history has %d records, want 2", len(records))
	}
	if records[0].Success || records[0].StatusCode != 404 || records[0].ErrorType != "http_status" {
		t.Errorf("newest record = %+v, want failed 404", records[0])
	}
	if !records[1].Success || records[1].StatusCode != 200 {
		t.Errorf("oldest record = %+v, want successful 200", records[1])
	}
}

func TestAnalyze_NoDBSkipsFetchLog(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("Plain text body. It has two sentences."))
	}))
	defer server.Close()

	dbPath := filepath.Join(t.TempDir(), "fetch.db")
	cfgPath := missingConfig(t)

	res := runApp(t, "", "analyze", "--quiet", "--no-db", "--config", cfgPath, "--db", dbPath, "--url", server.URL)
	if res.err != nil {
		t.Fatalf("analyze error = %v", res.err)
	}

	res = runApp(t, "", "history", "--config", cfgPath, "--db", dbPath)
	if res.err != nil {
		t.Fatalf("history error = %v", res.err)
	}
	if !strings.Contains(res.stdout, "No fetches recorded") {
		t.Errorf("history output = %q, want no fetches", res.stdout)
	}
}

func TestAnalyze_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no input", args: []string{"analyze"}},
		{name: "two inputs", args: []string{"analyze", "--text", "a", "--url", "https://example.com"}},
		{name: "bad format", args: []string{"analyze", "--text", "a", "--format", "xml"}},
		{name: "invalid url", args: []string{"analyze", "--url", "not a url"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append(tt.args, "--quiet", "--config", missingConfig(t))
			res := runApp(t, "", args...)
			if code := exitCode(res.err); code != 1 {
				t.Errorf("exit code = %d (%v), want 1", code, res.err)
			}
		})
	}
}

func TestAnalyze_MissingFile(t *testing.T) {
	res := runApp(t, "", "analyze", "--quiet", "--config", missingConfig(t), "--file", filepath.Join(t.TempDir(), "absent.txt"))
	if code := exitCode(res.err); code != 2 {
		t.Errorf("exit code = %d (%v), want 2", code, res.err)
	}
}
