package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/de-tools/report-forge/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
tenant: acme
scheme:
  header_background: "#4472C4"
  header_text: "#FFFFFF"
  odd_row: "#D9E1F2"
  even_row: "#FFFFFF"
chrome:
  header1: "Weekly Transfer Report"
  header2: "Updated July 18, 2023"
  footer: "Internal use only"
  logo_path: "/opt/report-forge/logo.png"
store:
  tenant_id: tid
  tenant: acme
  site_name: reporting
  library: documents
  subfolder: Executive Reporting
`

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "acme", cfg.Tenant)
	assert.Equal(t, "Weekly Transfer Report", cfg.Chrome.Header1)
	assert.Equal(t, "Executive Reporting", cfg.Store.Subfolder)

	scheme, err := cfg.Scheme.Domain()
	require.NoError(t, err)
	assert.Equal(t, domain.MustHexColor("#4472C4"), scheme.HeaderBackground)
	assert.Equal(t, domain.MustHexColor("#D9E1F2"), scheme.OddRow)
}

func TestSchemeConfig_InvalidColor(t *testing.T) {
	s := SchemeConfig{
		HeaderBackground: "#4472C4",
		HeaderText:       "white",
		OddRow:           "#D9E1F2",
		EvenRow:          "#FFFFFF",
	}

	_, err := s.Domain()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "header_text")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
