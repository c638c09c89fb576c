package history

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dtnitsch/llm-citability/internal/config"
	dbpkg "github.com/dtnitsch/llm-citability/pkg/db"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

const DefaultLimit = 20

// HistoryAction lists recent URL fetches from the fetch log.
func HistoryAction(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	if c.IsSet("db") {
		cfg.Database.Path = c.String("db")
	}

	database, err := dbpkg.Open(cfg.Database.Path)
	if err != nil {
		return cli.Exit(fmt.Sprintf("failed to open database: %v", err), 2)
	}
	defer database.Close()

	limit := c.Int("limit")
	if limit <= 0 {
		limit = DefaultLimit
	}
	records, err := database.RecentAccesses(limit)
	if err != nil {
		return cli.Exit(fmt.Sprintf("failed to list fetches: %v", err), 2)
	}

	w := c.App.Writer
	switch strings.ToLower(c.String("format")) {
	case "json":
		if records == nil {
			records = []dbpkg.AccessRecord{}
		}
		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return cli.Exit(fmt.Sprintf("failed to marshal history: %v", err), 2)
		}
		fmt.Fprintln(w, string(data))
		return nil
	case "yaml":
		data, err := yaml.Marshal(records)
		if err != nil {
			return cli.Exit(fmt.Sprintf("failed to marshal history: %v", err), 2)
		}
		fmt.Fprint(w, string(data))
		return nil
	}

	if len(records) == 0 {
		fmt.Fprintln(w, "No fetches recorded")
		return nil
	}

	fmt.Fprintf(w, "%-6s %-20s %-6s %-8s %-15s %s\n",
		"ID", "Accessed", "Status", "Success", "Error", "URL")
	fmt.Fprintln(w, strings.Repeat("-", 100))

	for _, r := range records {
		fmt.Fprintf(w, "%-6d %-20s %-6d %-8t %-15s %s\n",
			r.AccessID,
			r.AccessedAt.Format("2006-01-02 15:04:05"),
			r.StatusCode,
			r.Success,
			r.ErrorType,
			r.URL,
		)
	}

	fmt.Fprintf(w, "\nTotal: %d fetches\n", len(records))
	return nil
}
