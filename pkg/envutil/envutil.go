// Package envutil resolves configuration values from the process
// environment, optionally seeded from a dotenv file.
package envutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/harmonyeval/harmony-verifier/pkg/fileutil"
	"github.com/harmonyeval/harmony-verifier/pkg/logger"
)

var log = logger.New("envutil:dotenv")

// LoadDotEnv reads a dotenv file into the process environment. Variables
// already present in the environment are not overridden, matching dotenv
// semantics. A missing file is not an error so env-only runs work.
func LoadDotEnv(path string) error {
	if !fileutil.FileExists(path) {
		log.Printf("dotenv file not found, using process environment only: %s", path)
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	log.Printf("loaded dotenv file: %s", path)
	return nil
}

// ResolveDotEnvPath returns the path of the dotenv file named by file.
// When the variable named by rootVar is set, the file is resolved
// relative to that directory; otherwise it is resolved against the
// working directory as usual.
func ResolveDotEnvPath(file, rootVar string) string {
	if rootVar == "" {
		return file
	}
	root, ok := LookupNonEmpty(rootVar)
	if !ok {
		return file
	}
	if !fileutil.DirExists(root) {
		log.Printf("%s names a missing directory: %s", rootVar, root)
	}
	resolved := filepath.Join(root, file)
	log.Printf("resolving dotenv file against %s: %s", rootVar, resolved)
	return resolved
}

// LookupNonEmpty returns the named variable's value. Empty and
// whitespace-only values count as absent.
func LookupNonEmpty(name string) (string, bool) {
	value, ok := os.LookupEnv(name)
	if !ok {
		return "", false
	}
	if strings.TrimSpace(value) == "" {
		return "", false
	}
	return value, true
}

// RequireAll resolves every named variable and reports the ones that are
// missing. The returned map only holds the variables that resolved.
func RequireAll(names ...string) (map[string]string, []string) {
	values := make(map[string]string, len(names))
	var missing []string
	for _, name := range names {
		value, ok := LookupNonEmpty(name)
		if !ok {
			missing = append(missing, name)
			continue
		}
		values[name] = value
	}
	return values, missing
}
