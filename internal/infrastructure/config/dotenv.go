package config

import (
	"bufio"
	"errors"
	"io/fs"
	"os"
	"strings"
)

// readDotEnv parses KEY=VALUE lines. The value is everything after the first
// '='; lines without one are skipped. A missing file yields an empty map.
func readDotEnv(path string) (map[string]string, error) {
	values := map[string]string{}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return values, nil
		}
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		values[key] = value
	}
	return values, scanner.Err()
}
