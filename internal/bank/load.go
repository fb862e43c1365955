// Package bank reads question banks from YAML or JSON files.
package bank

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jask/quizgame/internal/quiz"
)

// CurrentVersion is the only bank file version understood.
const CurrentVersion = 1

// File is the on-disk shape of a bank.
type File struct {
	Version   int             `json:"version" yaml:"version"`
	Questions []quiz.Question `json:"questions" yaml:"questions"`
}

// LoadFile reads, parses and validates a bank. The format follows the file
// extension: .json is JSON, anything else YAML.
func LoadFile(path string) ([]quiz.Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question bank: %w", err)
	}
	f, err := parse(data, path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := validate(f); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f.Questions, nil
}

func parse(data []byte, path string) (File, error) {
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		return parseJSON(data)
	}
	return parseYAML(data)
}

func parseJSON(data []byte) (File, error) {
	var f File
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&f); err != nil {
		return File{}, fmt.Errorf("parse json: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return File{}, fmt.Errorf("parse json: multiple documents are not supported")
		}
		return File{}, fmt.Errorf("parse json: %w", err)
	}
	return f, nil
}

func parseYAML(data []byte) (File, error) {
	var f File
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&f); err != nil {
		return File{}, fmt.Errorf("parse yaml: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return File{}, fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return File{}, fmt.Errorf("parse yaml: %w", err)
	}
	return f, nil
}

func validate(f File) error {
	if f.Version != CurrentVersion {
		return fmt.Errorf("unsupported version %d", f.Version)
	}
	if len(f.Questions) == 0 {
		return fmt.Errorf("no questions")
	}
	seen := make(map[string]int, len(f.Questions))
	for i, q := range f.Questions {
		if err := q.Validate(); err != nil {
			return fmt.Errorf("question %d: %w", i+1, err)
		}
		if prev, ok := seen[q.Text]; ok {
			return fmt.Errorf("question %d: duplicate of question %d", i+1, prev)
		}
		seen[q.Text] = i + 1
	}
	return nil
}

// Write encodes questions as a YAML bank.
func Write(w io.Writer, questions []quiz.Question) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(File{Version: CurrentVersion, Questions: questions}); err != nil {
		return fmt.Errorf("encode question bank: %w", err)
	}
	return enc.Close()
}

// Export writes questions to path, as JSON for a .json extension and YAML
// otherwise, so LoadFile reads the result back.
func Export(path string, questions []quiz.Question) (err error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir export dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create question bank: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close question bank: %w", cerr)
		}
	}()
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		enc := json.NewEncoder(f)
		enc.SetIndent("", "  ")
		if err := enc.Encode(File{Version: CurrentVersion, Questions: questions}); err != nil {
			return fmt.Errorf("encode question bank: %w", err)
		}
		return nil
	}
	return Write(f, questions)
}
