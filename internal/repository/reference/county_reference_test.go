package reference_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/collisions-monitor/internal/repository/reference"
)

func TestLoader_Embedded(t *testing.T) {
	ref, err := reference.NewLoader("", zap.NewNop()).Load()
	require.NoError(t, err)

	assert.Equal(t, 58, ref.Len())

	la, ok := ref.Lookup("19")
	require.True(t, ok)
	assert.Equal(t, "Los Angeles", la.Name)
	assert.Equal(t, int64(10014009), la.Population)

	counties := ref.Counties()
	assert.Equal(t, "01", counties[0].Code)
	assert.Equal(t, "58", counties[len(counties)-1].Code)
}

func TestLoader_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "counties.yaml")
	content := "- code: \"01\"\n  name: Alpha\n  population: 100\n- code: \"02\"\n  name: Beta\n  population: 250\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	ref, err := reference.NewLoader(path, zap.NewNop()).Load()
	require.NoError(t, err)

	assert.Equal(t, 2, ref.Len())
	assert.Equal(t, int64(350), ref.TotalPopulation())
	assert.Equal(t, int64(250), ref.Population("02"))
}

func TestLoader_MissingFile(t *testing.T) {
	_, err := reference.NewLoader(filepath.Join(t.TempDir(), "nope.yaml"), zap.NewNop()).Load()
	assert.Error(t, err)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty list", "[]"},
		{"empty code", "- {code: \"\", name: X, population: 1}"},
		{"reserved code", "- {code: all, name: X, population: 1}"},
		{"duplicate", "- {code: \"01\", name: X, population: 1}\n- {code: \"01\", name: Y, population: 2}"},
		{"negative population", "- {code: \"01\", name: X, population: -5}"},
		{"not yaml list", "code: 01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := reference.Parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}
