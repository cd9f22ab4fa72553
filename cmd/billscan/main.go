// billscan runs the bill-extraction pipeline over a single PDF or text file
// and prints the ExtractionResult as JSON. It is the operational stand-in for
// the CRM upload endpoint: it only suggests field values, it never writes
// records anywhere.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/MetodiPro/nexus-crm-sub000/internal/extraction"
	"github.com/MetodiPro/nexus-crm-sub000/internal/models"
	"github.com/MetodiPro/nexus-crm-sub000/internal/pdf"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config (optional)")
	flag.Parse()

	config, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "billscan: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(config.Log.Level),
	}))
	slog.SetDefault(logger)

	if flag.NArg() != 1 {
		logger.Error("usage", "cmd", "billscan [-config config.yaml] <bill.pdf|bill.txt>")
		os.Exit(2)
	}
	path := flag.Arg(0)
	scanID := uuid.New()

	text, err := readBillText(path, config.PDF.MaxPages)
	if err != nil {
		logger.Error("read bill", "scan_id", scanID, "path", path, "error", err)
		os.Exit(1)
	}

	svc := extraction.NewService(config.Extraction.PreviewChars)

	start := time.Now()
	result := svc.Extract(text)
	dur := time.Since(start)

	logger.Info("extraction done",
		"scan_id", scanID,
		"path", path,
		"provider", result.Provider,
		"confidence", result.Confidence,
		"fields", len(result.Data),
		"duration_ms", dur.Milliseconds(),
	)

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		logger.Error("encode result", "scan_id", scanID, "error", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}

// readBillText hands .pdf files to the PDF reader and treats anything else as
// already-decoded plain text.
func readBillText(path string, maxPages int) (string, error) {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return pdf.NewReader(maxPages).ExtractFile(path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read text file: %w", err)
	}
	return string(data), nil
}

func loadConfig(path string) (*models.Config, error) {
	config := &models.Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables if present
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		config.Log.Level = level
	}
	if chars := os.Getenv("PREVIEW_CHARS"); chars != "" {
		if n, err := strconv.Atoi(chars); err == nil {
			config.Extraction.PreviewChars = n
		}
	}
	if pages := os.Getenv("PDF_MAX_PAGES"); pages != "" {
		if n, err := strconv.Atoi(pages); err == nil {
			config.PDF.MaxPages = n
		}
	}

	return config, nil
}

func logLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
