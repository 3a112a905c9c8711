// File path: cmd/icdcoder/main.go
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/medassist-ai/icdcoder/internal/api"
	"github.com/medassist-ai/icdcoder/internal/common"
	"github.com/medassist-ai/icdcoder/internal/config"
	"github.com/medassist-ai/icdcoder/internal/ingest"
	"github.com/medassist-ai/icdcoder/internal/llm"
	"github.com/medassist-ai/icdcoder/internal/pipeline"
	"github.com/medassist-ai/icdcoder/internal/schema"
)

func main() {
	logger := common.Logger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := godotenv.Load(); err != nil {
		logger.Warn("icdcoder: .env file not loaded", "error", err)
	} else {
		logger.Info("icdcoder: environment loaded from .env")
	}

	serve := flag.Bool("serve", false, "run the HTTP API instead of a single coding pass")
	addr := flag.String("addr", ":8082", "listen address for serve mode")
	chartID := flag.String("chart", "", "chart id to fetch from the retrieval backend")
	inputPath := flag.String("input", "", "path to a file containing the clinical summary")
	summaryText := flag.String("summary", "", "clinical summary text passed inline")
	seedCodes := flag.String("seeds", "", "comma-separated ICD-10 codes to pre-seed as candidates")
	outputPath := flag.String("output", "", "write the record to this file instead of stdout")
	format := flag.String("format", "record", "output shape: record or chart")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("icdcoder: configuration invalid", "error", err)
		fmt.Fprintln(os.Stderr, "configuration error:", err)
		os.Exit(1)
	}

	providers, err := llm.NewProviders(cfg)
	if err != nil {
		logger.Error("icdcoder: provider construction failed", "error", err)
		fmt.Fprintln(os.Stderr, "provider error:", err)
		os.Exit(1)
	}
	pipe := pipeline.New(providers, cfg)

	rag, err := ingest.NewFromEnv(ctx)
	if err != nil {
		logger.Error("icdcoder: retrieval backend config invalid", "error", err)
		fmt.Fprintln(os.Stderr, "retrieval backend error:", err)
		os.Exit(1)
	}

	if *serve {
		server, err := api.NewServer(pipe, rag)
		if err != nil {
			logger.Error("icdcoder: server construction failed", "error", err)
			fmt.Fprintln(os.Stderr, "server error:", err)
			os.Exit(1)
		}
		logger.Info("icdcoder: server listening", "addr", *addr, "health", "/healthz")
		fmt.Printf("Serving on %s\n", *addr)
		if err := http.ListenAndServe(*addr, server); err != nil {
			logger.Error("icdcoder: server stopped", "error", err)
			fmt.Fprintln(os.Stderr, "server stopped:", err)
			os.Exit(1)
		}
		return
	}

	summary, err := resolveSummary(ctx, rag, *chartID, *inputPath, *summaryText, *seedCodes)
	if err != nil {
		logger.Error("icdcoder: summary resolution failed", "error", err)
		fmt.Fprintln(os.Stderr, "input error:", err)
		os.Exit(1)
	}

	record := pipe.Run(ctx, summary)
	payload, err := renderRecord(record, *format)
	if err != nil {
		logger.Error("icdcoder: record rendering failed", "error", err)
		fmt.Fprintln(os.Stderr, "output error:", err)
		os.Exit(1)
	}

	if strings.TrimSpace(*outputPath) != "" {
		if err := os.WriteFile(*outputPath, payload, 0o644); err != nil {
			logger.Error("icdcoder: record write failed", "path", *outputPath, "error", err)
			fmt.Fprintln(os.Stderr, "output error:", err)
			os.Exit(1)
		}
		logger.Info("icdcoder: record written", "path", *outputPath)
		return
	}
	fmt.Println(string(payload))
}

// resolveSummary picks the input source from whichever flag was supplied:
// a chart id served by the retrieval backend, a local file, or inline text.
func resolveSummary(ctx context.Context, rag *ingest.Client, chartID, inputPath, summaryText, seedCodes string) (ingest.Summary, error) {
	chartID = strings.TrimSpace(chartID)
	inputPath = strings.TrimSpace(inputPath)
	summaryText = strings.TrimSpace(summaryText)

	supplied := 0
	for _, value := range []string{chartID, inputPath, summaryText} {
		if value != "" {
			supplied++
		}
	}
	if supplied != 1 {
		return ingest.Summary{}, fmt.Errorf("exactly one of -chart, -input, or -summary is required")
	}

	switch {
	case chartID != "":
		if !rag.Available() {
			return ingest.Summary{}, fmt.Errorf("retrieval backend not configured or unreachable; set RAG_ENDPOINT")
		}
		return rag.Fetch(ctx, chartID)
	case inputPath != "":
		return ingest.FileSource{}.Fetch(ctx, inputPath)
	default:
		source := ingest.InlineSource{Summary: ingest.Summary{
			ID:        "adhoc",
			Text:      summaryText,
			SeedCodes: splitSeeds(seedCodes),
		}}
		return source.Fetch(ctx, "adhoc")
	}
}

func renderRecord(record schema.Record, format string) ([]byte, error) {
	if strings.EqualFold(strings.TrimSpace(format), "chart") {
		return json.MarshalIndent(schema.ToChart(record), "", "  ")
	}
	return record.Marshal()
}

func splitSeeds(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}
