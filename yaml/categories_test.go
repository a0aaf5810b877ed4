package yaml_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/idscrape"
	"github.com/fwojciec/idscrape/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "categories.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestCategoryLoader_LoadCategories(t *testing.T) {
	t.Parallel()

	t.Run("flattens categories preserving order", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "temperature:\n  - t1\n  - t2\npressure:\n  - p1\n")

		table, err := yaml.NewCategoryLoader().LoadCategories(path)

		require.NoError(t, err)
		assert.Equal(t, []string{"t1", "t2", "p1"}, table.IDs())
		for id, want := range map[string]string{"t1": "temperature", "t2": "temperature", "p1": "pressure"} {
			got, ok := table.Category(id)
			assert.True(t, ok, id)
			assert.Equal(t, want, got, id)
		}
	})

	t.Run("accepts flow style and numeric ids", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "{zone: [101, z2], alarm: [a1]}")

		table, err := yaml.NewCategoryLoader().LoadCategories(path)

		require.NoError(t, err)
		assert.Equal(t, []string{"101", "z2", "a1"}, table.IDs())
		assert.Equal(t, []string{"zone", "alarm"}, table.Categories())
	})

	t.Run("empty category list is allowed", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "spare: []\npressure: [p1]\n")

		table, err := yaml.NewCategoryLoader().LoadCategories(path)

		require.NoError(t, err)
		assert.Equal(t, []string{"p1"}, table.IDs())
	})

	t.Run("resolves aliases", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "a: &shared [x, y]\nb: *shared\n")

		table, err := yaml.NewCategoryLoader().LoadCategories(path)

		require.NoError(t, err)
		assert.Equal(t, []string{"x", "y"}, table.IDs())
		c, _ := table.Category("x")
		assert.Equal(t, "b", c)
	})

	t.Run("missing file is a config error", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.NewCategoryLoader().LoadCategories(filepath.Join(t.TempDir(), "absent.yaml"))

		require.Error(t, err)
		assert.Equal(t, idscrape.ECONFIG, idscrape.ErrorCode(err))
		assert.Contains(t, idscrape.ErrorMessage(err), "not found")
	})

	t.Run("directory is a config error", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.NewCategoryLoader().LoadCategories(t.TempDir())

		require.Error(t, err)
		assert.Equal(t, idscrape.ECONFIG, idscrape.ErrorCode(err))
	})
}

func TestParseCategories_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
	}{
		{name: "empty document", data: ""},
		{name: "malformed yaml", data: "a: [b\n"},
		{name: "top level list", data: "- t1\n- t2\n"},
		{name: "top level scalar", data: "hello"},
		{name: "category is scalar", data: "temperature: t1\n"},
		{name: "category is null", data: "temperature:\n"},
		{name: "category is mapping", data: "temperature:\n  t1: x\n"},
		{name: "nested list id", data: "temperature:\n  - [t1]\n"},
		{name: "repeated category", data: "temperature: [t1]\npressure: [p1]\ntemperature: [t2]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := yaml.ParseCategories([]byte(tt.data))

			require.Error(t, err)
			assert.Equal(t, idscrape.ECONFIG, idscrape.ErrorCode(err))
		})
	}
}

func TestParseCategories_RepeatedCategoryReportsLine(t *testing.T) {
	t.Parallel()

	_, err := yaml.ParseCategories([]byte("temperature: [t1]\npressure: [p1]\ntemperature: [t2]\n"))

	require.Error(t, err)
	assert.Equal(t, "line 3: category \"temperature\" already defined", idscrape.ErrorMessage(err))
}
