// Command audit runs the ingestion pipeline over a directory of scanned
// documents and writes the export package, without starting the HTTP server.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Skunitoo/AI-Bookkeeping-Assistant/internal/config"
	"github.com/Skunitoo/AI-Bookkeeping-Assistant/internal/domain"
	"github.com/Skunitoo/AI-Bookkeeping-Assistant/internal/export"
	"github.com/Skunitoo/AI-Bookkeeping-Assistant/internal/ledger"
	"github.com/Skunitoo/AI-Bookkeeping-Assistant/internal/parser/gemini"
	"github.com/Skunitoo/AI-Bookkeeping-Assistant/internal/service"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "audit",
		Short: "Batch bookkeeping audit over scanned financial documents",
	}

	rootCmd.AddCommand(runCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCmd() *cobra.Command {
	var (
		dir    string
		out    string
		lang   string
		locale string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Ingest every supported document in a directory and write the export package",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if locale == "" {
				locale = cfg.Export.Locale
			}

			inputs, err := collectInputs(dir)
			if err != nil {
				return err
			}
			if len(inputs) == 0 {
				return fmt.Errorf("no supported documents (pdf, jpg, png) in %s", dir)
			}

			store := ledger.NewStore()
			classifier := ledger.NewClassifier(store, cfg.Ingest.MatchVendor)
			model := gemini.NewClient(&cfg.Parser)
			svc := service.NewIngestService(classifier, model, &cfg.Ingest)

			outcomes := svc.ProcessBatch(cmd.Context(), parseLanguage(lang, cfg), inputs)
			for _, o := range outcomes {
				line := fmt.Sprintf("%-40s %s", o.FileName, o.Status)
				if o.Notice != "" {
					line += "  (" + o.Notice + ")"
				}
				if o.Error != "" {
					line += "  (" + o.Error + ")"
				}
				fmt.Println(line)
			}

			data, err := export.NewAssembler(locale).Bundle(store.Records(), store)
			if err != nil {
				return fmt.Errorf("assemble package: %w", err)
			}
			if err := os.WriteFile(out, data, 0644); err != nil {
				return fmt.Errorf("write package: %w", err)
			}
			fmt.Printf("wrote %s (%d records)\n", out, store.Len())
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "directory of documents to ingest")
	cmd.Flags().StringVar(&out, "out", export.PackageName, "output package path")
	cmd.Flags().StringVar(&lang, "lang", "", "interface language (PL or EN)")
	cmd.Flags().StringVar(&locale, "locale", "", "decimal separator locale (pl or en)")
	return cmd
}

// collectInputs reads supported files from dir in name order, matching the
// upload-order guarantee of the HTTP path.
func collectInputs(dir string) ([]service.IngestInput, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	var inputs []service.IngestInput
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(entry.Name()), "."))
		ft, ok := domain.AllowedExtensions[ext]
		if !ok {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", entry.Name(), err)
		}
		inputs = append(inputs, service.IngestInput{
			FileName:    entry.Name(),
			ContentType: domain.AllowedFileTypes[ft],
			Data:        data,
		})
	}
	return inputs, nil
}

func parseLanguage(raw string, cfg *config.Config) domain.Language {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "PL":
		return domain.LangPL
	case "EN":
		return domain.LangEN
	default:
		return domain.Language(cfg.Export.Language)
	}
}
