package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLogFile(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "app.log")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))
	return path
}

func TestGetLogs_NewestFirstWithLevelFilter(t *testing.T) {
	path := writeLogFile(t,
		`{"level":"INFO","timestamp":"2026-01-01T00:00:00Z","message":"first","module":"Series"}`,
		`not json`,
		`{"level":"ERROR","timestamp":"2026-01-01T00:00:01Z","message":"second","module":"Product"}`,
		`{"level":"INFO","timestamp":"2026-01-01T00:00:02Z","message":"third","module":"Series"}`,
	)
	l := &ZapLogger{filePath: path}

	all, err := l.GetLogs("", 10, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "third", all[0].Message)
	assert.Equal(t, "first", all[2].Message)

	infos, err := l.GetLogs("INFO", 10, 0)
	require.NoError(t, err)
	assert.Len(t, infos, 2)

	page, err := l.GetLogs("", 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "second", page[0].Message)

	empty, err := l.GetLogs("", 10, 50)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestGetLogById(t *testing.T) {
	path := writeLogFile(t, `{"level":"INFO","timestamp":"t","message":"only"}`)
	l := &ZapLogger{filePath: path}

	logs, err := l.GetLogs("", 10, 0)
	require.NoError(t, err)
	require.Len(t, logs, 1)

	entry, err := l.GetLogById(logs[0].Id)
	require.NoError(t, err)
	assert.Equal(t, "only", entry.Message)

	_, err = l.GetLogById("missing")
	assert.ErrorIs(t, err, ErrLogNotFound)
}

func TestGetLogs_MissingFile(t *testing.T) {
	l := &ZapLogger{filePath: filepath.Join(t.TempDir(), "absent.log")}
	logs, err := l.GetLogs("", 10, 0)
	require.NoError(t, err)
	assert.Empty(t, logs)
}
