package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempEnvFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDotEnvFileProduce(t *testing.T) {
	t.Parallel()

	path := writeTempEnvFile(t, "DB_NAME=users\n#comment\nDB_PASSWORD=secret\nBASE_URL=localhost:5432\nCLIENT_ID=2\n")
	src := NewDotEnvFile(path)

	entries, err := src.Produce()
	require.NoError(t, err)

	assert.Equal(t, RawEntry{"users"}, entries["DB_NAME"])
	assert.Equal(t, RawEntry{"secret"}, entries["DB_PASSWORD"])
	assert.Equal(t, RawEntry{"localhost:5432"}, entries["BASE_URL"])
	assert.Equal(t, RawEntry{"2"}, entries["CLIENT_ID"])
	assert.Len(t, entries, 4, "comment and blank lines contribute nothing")
}

func TestDotEnvFileNormalizesKeys(t *testing.T) {
	t.Parallel()

	path := writeTempEnvFile(t, "db_name=users\n")

	entries, err := NewDotEnvFile(path).Produce()
	require.NoError(t, err)
	assert.Equal(t, RawEntry{"users"}, entries["DB_NAME"])
}

func TestDotEnvFileIgnoresBlankLines(t *testing.T) {
	t.Parallel()

	path := writeTempEnvFile(t, "\n\nDB_NAME=users\n\n# trailing comment\n")

	entries, err := NewDotEnvFile(path).Produce()
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestDotEnvFileMissingIsUnavailable(t *testing.T) {
	t.Parallel()

	src := NewDotEnvFile(filepath.Join(t.TempDir(), "no-such-file.env"))

	_, err := src.Produce()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSourceUnavailable)
}

func TestDotEnvFileName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "dotenv:/etc/app.env", NewDotEnvFile("/etc/app.env").Name())
}
