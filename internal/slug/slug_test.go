package slug

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate_Basic(t *testing.T) {
	assert.Equal(t, "prompt-engineer", Generate("Prompt Engineer"))
	assert.Equal(t, "ml-engineer", Generate("ML Engineer"))
	assert.Equal(t, "weights-biases", Generate("Weights & Biases"))
}

func TestGenerate_Unicode(t *testing.T) {
	assert.Equal(t, "zurich", Generate("Zürich"))
	assert.Equal(t, "sao-paulo", Generate("São Paulo"))
}

func TestGenerate_CollapsesSeparators(t *testing.T) {
	assert.Equal(t, "new-york-ny", Generate("New York,  NY"))
	assert.Equal(t, "a-b", Generate("a___b"))
	assert.Equal(t, "edge", Generate("--edge--"))
}

func TestGenerate_Empty(t *testing.T) {
	assert.Equal(t, "", Generate(""))
	assert.Equal(t, "", Generate("!!!"))
}

func TestGenerate_Truncates(t *testing.T) {
	long := strings.Repeat("word-", 40)
	got := Generate(long)
	assert.LessOrEqual(t, len(got), 80)
	assert.False(t, strings.HasSuffix(got, "-"))
}
