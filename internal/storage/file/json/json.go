package json

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var (
	NotFoundErr     = errors.New("not found")
	CouldNotLoadErr = errors.New("could not load")
)

// Save stores the value as indented json into dir/fileName,
// creating the directory if needed.
func Save(dir string, fileName string, value interface{}) error {
	info, err := os.Stat(dir)
	if err != nil {
		err := os.MkdirAll(dir, os.ModePerm)
		if err != nil {
			return fmt.Errorf("could not make dir: %s: %w", dir, err)
		}
	} else if !info.IsDir() {
		return fmt.Errorf("path given is not a directory: %s", dir)
	}

	b, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("could not marshal '%s': %w", fileName, err)
	}

	p := filepath.Join(dir, fileName)
	err = os.WriteFile(p, b, 0644)
	if err != nil {
		return fmt.Errorf("could not write file '%s': %w", p, err)
	}
	return nil
}

// Load decodes the json file dir/fileName into the value.
func Load(dir string, fileName string, value interface{}) error {
	p := filepath.Join(dir, fileName)

	data, err := os.ReadFile(p)
	if err != nil {
		return fmt.Errorf("could not read file '%s' %s: %w", p, err.Error(), NotFoundErr)
	}

	err = json.Unmarshal(data, value)
	if err != nil {
		return fmt.Errorf("could not unmarshal '%s' %s: %w", p, err.Error(), CouldNotLoadErr)
	}
	return nil
}
