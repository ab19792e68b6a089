package migration

import (
	"io/fs"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var numericColumn = regexp.MustCompile(`(?i)numeric\(\s*(\d+)\s*,\s*(\d+)\s*\)`)

func TestMigrations_MoneyColumnsStoreCents(t *testing.T) {
	files, err := fs.Glob(migrationsFS, "migrations/*.up.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	found := 0
	for _, name := range files {
		body, err := fs.ReadFile(migrationsFS, name)
		require.NoError(t, err)

		for _, match := range numericColumn.FindAllStringSubmatch(string(body), -1) {
			found++
			assert.Equal(t, "12", match[1], "%s: %s", name, strings.TrimSpace(match[0]))
			assert.Equal(t, "2", match[2], "%s: %s", name, strings.TrimSpace(match[0]))
		}
	}
	assert.NotZero(t, found)
}
