package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// ErrNoData means the backing file has not been created yet, i.e. nothing
// was uploaded. Callers report it as "not found", not as a server fault.
var ErrNoData = errors.New("data file not found")

// writeFileAtomic writes JSON to a temp file next to the target and renames
// it into place, so readers never observe a partial file. Writers must hold
// the store mutex around the whole read-modify-replace cycle.
func writeFileAtomic(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func readFileJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNoData
		}
		return err
	}
	return json.Unmarshal(data, v)
}
