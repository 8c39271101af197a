// Package reader loads the whole source file into memory as text
package reader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/UnendingLoop/minigrep/internal/model"
)

var (
	errIsDirectory = errors.New("is a directory")
	errInvalidUTF8 = errors.New("stream did not contain valid UTF-8")
)

// ReadFile returns the file contents. Every failure is a model.Error of kind KindFileRead.
func ReadFile(fileName string) (string, error) {
	// проверяем открывается ли файл
	info, err := os.Stat(fileName)
	if err != nil {
		return "", model.NewFileReadError(fileName, err)
	}
	// проверяем не папка ли это
	if info.IsDir() {
		return "", model.NewFileReadError(fileName, errIsDirectory)
	}

	file, err := os.Open(fileName)
	if err != nil {
		return "", model.NewFileReadError(fileName, err)
	}
	defer file.Close()

	return readAll(fileName, file)
}

func readAll(fileName string, r io.Reader) (string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return "", model.NewFileReadError(fileName, fmt.Errorf("read: %w", err))
	}
	if !utf8.Valid(raw) {
		return "", model.NewFileReadError(fileName, errInvalidUTF8)
	}
	return string(raw), nil
}
