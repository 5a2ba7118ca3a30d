package configuration

import (
	"os"
	"strings"
)

// LoadEnvFromFile seeds the process environment from dotenv-style files such
// as config.env. Missing files are skipped, and keys already present in the
// environment win, so deployed settings are never clobbered by a checked-in
// default.
func LoadEnvFromFile(paths ...string) {
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		for _, raw := range strings.Split(string(data), "\n") {
			setEnvLine(raw)
		}
	}
}

// setEnvLine parses one KEY=VALUE line, tolerating comments, blank lines and
// single- or double-quoted values.
func setEnvLine(raw string) {
	line := strings.TrimSpace(raw)
	if line == "" || strings.HasPrefix(line, "#") {
		return
	}
	key, val, ok := strings.Cut(line, "=")
	if !ok {
		return
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return
	}
	if _, exists := os.LookupEnv(key); exists {
		return
	}
	val = strings.Trim(strings.TrimSpace(val), `"'`)
	_ = os.Setenv(key, val)
}
