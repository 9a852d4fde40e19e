package main

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuditCommand_RequiresCatalog(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "audit")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "catalog")
}

func TestAuditCommand_CleanCatalog(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "audit", "--catalog", "testdata/catalog.json", "--min-words", "50")
	output, err := cmd.CombinedOutput()

	assert.NoError(t, err, string(output))
	assert.Contains(t, string(output), "NO VIOLATIONS")
}

func TestAuditCommand_StrictFailsOnWarnings(t *testing.T) {
	binaryPath := getBinaryPath(t)

	// A high word floor turns every page into a thin-content warning.
	cmd := exec.Command(binaryPath, "audit",
		"--catalog", "testdata/catalog.json",
		"--min-words", "5000",
		"--strict")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "strict mode")
}
