package site

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/lqr-hy/docs/internal/config"
)

var (
	ErrUnknownHeadTag = errors.New("unknown head element")
	ErrEncode         = errors.New("encode site config")
)

// Encode serializes doc as indented JSON or YAML. Output always ends with a newline.
func Encode(doc any, format config.OutputFormat) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case config.FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrEncode, err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrEncode, err)
		}
	case config.FormatJSON, "":
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrEncode, err)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported format %q", ErrEncode, format)
	}
	return buf.Bytes(), nil
}

// Write encodes doc and stores it at path. It reports false without touching the file when
// the existing content is identical.
func Write(path string, doc any, format config.OutputFormat) (bool, error) {
	data, err := Encode(doc, format)
	if err != nil {
		return false, err
	}
	return WriteFile(path, data)
}

// WriteFile atomically replaces path with data (temp file + rename), skipping unchanged content.
func WriteFile(path string, data []byte) (bool, error) {
	existing, err := os.ReadFile(path)
	switch {
	case err == nil && bytes.Equal(existing, data):
		return false, nil
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return false, fmt.Errorf("read %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return false, fmt.Errorf("create output directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return false, fmt.Errorf("create temporary file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return false, fmt.Errorf("write temporary file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return false, fmt.Errorf("close temporary file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		return false, fmt.Errorf("chmod temporary file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return false, fmt.Errorf("replace %s: %w", path, err)
	}
	return true, nil
}
