package reader_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/UnendingLoop/minigrep/internal/reader"
	"github.com/stretchr/testify/require"
)

func TestReadFile(t *testing.T) {
	cases := []struct {
		name     string
		content  []byte
		isDir    bool
		isReal   bool // false только для кейса "файл не найден"
		wantErr  string
		wantNoFS bool
	}{
		{
			name:    "Positive - plain text",
			content: []byte("line1\nline2\nline3\nline4"),
			isReal:  true,
		},
		{
			name:    "Positive - empty file",
			content: []byte{},
			isReal:  true,
		},
		{
			name:    "Positive - utf8 text",
			content: []byte("привет\nmir\n"),
			isReal:  true,
		},
		{
			name:    "Negative - file is a directory",
			isDir:   true,
			isReal:  true,
			wantErr: "is a directory",
		},
		{
			name:     "Negative - file not found",
			isReal:   false,
			wantErr:  "no such file",
			wantNoFS: true,
		},
		{
			name:    "Negative - invalid utf8",
			content: []byte{'o', 'k', '\n', 0xff, 0xfe, 0xfd},
			isReal:  true,
			wantErr: "valid UTF-8",
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			fileName := filepath.Join(t.TempDir(), "test_unreal_file_12345.txt")
			if tt.isReal {
				fileName = createTempFile(t, tt.content, tt.isDir)
			}

			res, err := reader.ReadFile(fileName)

			switch tt.wantErr {
			case "":
				require.NoError(t, err)
				require.Equal(t, string(tt.content), res)
			default:
				require.ErrorContains(t, err, tt.wantErr)
				require.True(t, errors.Is(err, model.ErrFileRead), "error %v is not a file read error", err)
				require.Equal(t, model.KindFileRead, model.KindOf(err))
				require.Empty(t, res)
				require.Equal(t, 1, strings.Count(err.Error(), fileName), "path should appear once in %q", err.Error())
				if tt.wantNoFS {
					require.True(t, errors.Is(err, fs.ErrNotExist), "cause should be kept in the chain")
				}
			}
		})
	}
}

// вспомогательная функция для создания временного файла
func createTempFile(t *testing.T, content []byte, isDir bool) string {
	t.Helper()
	switch isDir {
	case true:
		return t.TempDir()
	default:
		f, err := os.CreateTemp(t.TempDir(), "minigrep_test_*.txt")
		if err != nil {
			t.Fatalf("failed to create temp-file: %v", err)
		}
		if _, err := f.Write(content); err != nil {
			t.Fatalf("failed to write provided content to temp-file: %v", err)
		}
		f.Close()
		return f.Name()
	}
}
