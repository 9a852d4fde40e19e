package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCommand_MissingCatalog(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "build")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "either --catalog or --from-db must be provided")
}

func TestBuildCommand_CatalogNotFound(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "build", "--catalog", "testdata/absent.json")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "catalog")
}

func TestBuildCommand_WritesPages(t *testing.T) {
	binaryPath := getBinaryPath(t)
	outDir := filepath.Join(t.TempDir(), "site")

	cmd := exec.Command(binaryPath, "build",
		"--catalog", "testdata/catalog.json",
		"--out", outDir)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, string(output))

	assert.Contains(t, string(output), "INDEXING DIRECTIVES")

	// The job page exists and got an auto-link to the tool page.
	jobPage := filepath.Join(outDir, "jobs", "senior-ml-engineer-search-berlin", "index.html")
	content, err := os.ReadFile(jobPage)
	require.NoError(t, err)
	assert.Contains(t, string(content), `<a href="/tools/langchain/">LangChain</a>`)
}

func TestBuildCommand_SitemapSkipsNoindexPages(t *testing.T) {
	binaryPath := getBinaryPath(t)
	outDir := filepath.Join(t.TempDir(), "site")

	configPath := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(configPath,
		[]byte(`{"catalog": "testdata/catalog.json", "base_url": "https://aijobshub.example"}`), 0o644))

	cmd := exec.Command(binaryPath, "build", "--config", configPath, "--out", outDir)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, string(output))

	sitemap, err := os.ReadFile(filepath.Join(outDir, "sitemap.xml"))
	require.NoError(t, err)

	// Indexable job pages are listed; the thin company page is not.
	assert.Contains(t, string(sitemap), "https://aijobshub.example/jobs/senior-ml-engineer-search-berlin/")
	assert.NotContains(t, string(sitemap), "/companies/acme-ai/")
}

func TestBuildCommand_VerboseAuditPrintsPageViolations(t *testing.T) {
	binaryPath := getBinaryPath(t)

	// Testdata pages sit well under the production word-count floor, so the
	// audit flags every one of them.
	cmd := exec.Command(binaryPath, "build",
		"--catalog", "testdata/catalog.json",
		"--audit", "--verbose")
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, string(output))

	out := string(output)
	assert.Contains(t, out, "PAGE QUALITY VIOLATIONS")
	assert.Contains(t, out, "thin_content")
}

func TestBuildCommand_ConfigFile(t *testing.T) {
	binaryPath := getBinaryPath(t)

	configPath := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(configPath,
		[]byte(`{"catalog": "testdata/catalog.json", "num_related": 3}`), 0o644))

	cmd := exec.Command(binaryPath, "build", "--config", configPath)
	output, err := cmd.CombinedOutput()

	assert.NoError(t, err, string(output))
}
