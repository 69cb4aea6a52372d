package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/de-tools/report-forge/pkg/adapters"
	"github.com/de-tools/report-forge/pkg/models/api"
	"github.com/de-tools/report-forge/pkg/services/config"
	"github.com/de-tools/report-forge/pkg/services/report"
	"github.com/de-tools/report-forge/pkg/store/sharepoint"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	cfgPath    string
	inputPath  string
	outputPath string
	upload     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "report-forge",
		Short: "Render table reports and tenant dashboards",
	}
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.yaml", "Path to the report config file")
	rootCmd.PersistentFlags().StringVarP(&inputPath, "input", "i", "", "Path to the JSON input data")
	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "Where to move the generated document")
	rootCmd.PersistentFlags().BoolVar(&upload, "upload", false, "Upload the generated document to the document store")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "table",
			Short: "Render a paginated table document from a dataset",
			RunE:  runTable,
		},
		&cobra.Command{
			Use:   "dashboard",
			Short: "Render a composite dashboard document",
			RunE:  runDashboard,
		},
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setup(cmd *cobra.Command) (*config.Config, *zerolog.Logger, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())
	cmd.SetContext(ctx)

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, &logger, nil
}

func runTable(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	var ds api.Dataset
	if err := readInput(&ds); err != nil {
		return err
	}

	scheme, err := cfg.Scheme.Domain()
	if err != nil {
		return fmt.Errorf("failed to resolve color scheme: %w", err)
	}

	ctrl := report.NewController()
	path, err := ctrl.GenerateTableReport(ctx, adapters.MapApiDatasetToDomain(ds), scheme, cfg.Chrome.Domain())
	if err != nil {
		return err
	}

	return deliver(cmd, cfg, logger, path)
}

func runDashboard(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	var req api.DashboardRequest
	if err := readInput(&req); err != nil {
		return err
	}
	if req.Tenant == "" {
		req.Tenant = cfg.Tenant
	}

	in, err := adapters.MapApiDashboardRequestToDomain(req)
	if err != nil {
		return err
	}

	ctrl := report.NewController()
	path, err := ctrl.GenerateDashboard(ctx, in)
	if err != nil {
		return err
	}

	return deliver(cmd, cfg, logger, path)
}

func readInput(v any) error {
	if inputPath == "" {
		return fmt.Errorf("missing required --input flag")
	}
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read input %q: %w", inputPath, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse input %q: %w", inputPath, err)
	}
	return nil
}

// deliver hands the generated document over: move it to --output, upload it
// to the document store, or just print where it landed.
func deliver(cmd *cobra.Command, cfg *config.Config, logger *zerolog.Logger, path string) error {
	ctx := cmd.Context()

	if upload {
		client, err := sharepoint.NewClient(ctx, sharepoint.Config{
			ClientID:     cfg.Store.ClientID,
			ClientSecret: cfg.Store.ClientSecret,
			TenantID:     cfg.Store.TenantID,
			Tenant:       cfg.Store.Tenant,
			SiteName:     cfg.Store.SiteName,
		})
		if err != nil {
			return err
		}
		name := filepath.Base(path)
		if err := client.UploadFile(ctx, cfg.Store.Library, cfg.Store.Subfolder, name, path); err != nil {
			return err
		}
		logger.Info().Str("name", name).Msg("document uploaded")
	}

	if outputPath != "" {
		if err := moveFile(path, outputPath); err != nil {
			return fmt.Errorf("failed to move document to %q: %w", outputPath, err)
		}
		path = outputPath
	}

	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

func moveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	// Rename can fail across filesystems; fall back to a copy.
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return err
	}
	return os.Remove(src)
}
