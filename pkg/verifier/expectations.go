package verifier

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/harmonyeval/harmony-verifier/pkg/logger"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

var expectationsLog = logger.New("verifier:expectations")

//go:embed data/expectations.schema.json
var expectationsSchemaJSON []byte

// expectationsSchema validates override documents before they replace
// the hardcoded lists.
var expectationsSchema *jsonschema.Schema

func init() {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(expectationsSchemaJSON))
	if err != nil {
		panic("failed to load expectations schema: " + err.Error())
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("expectations.schema.json", doc); err != nil {
		panic("failed to load expectations schema: " + err.Error())
	}
	schema, err := compiler.Compile("expectations.schema.json")
	if err != nil {
		panic("failed to compile expectations schema: " + err.Error())
	}
	expectationsSchema = schema
}

// LoadExpectations applies the optional YAML override files named in the
// config, replacing the hardcoded expected branch and timeline entry
// lists. A malformed or schema-rejected file is a configuration error;
// callers treat it as fatal before any network activity. Empty file
// names keep the hardcoded lists.
func LoadExpectations(cfg *Config) error {
	if cfg.ExpectedBranchesFile != "" {
		list, err := loadExpectationList(cfg.ExpectedBranchesFile)
		if err != nil {
			return fmt.Errorf("expected branches override %s: %w", cfg.ExpectedBranchesFile, err)
		}
		spec := cfg.Artifact(ArtifactCommitLedger)
		if spec == nil || spec.CommitLedger == nil {
			return fmt.Errorf("no commit ledger artifact to apply %s to", cfg.ExpectedBranchesFile)
		}
		spec.CommitLedger.ExpectedBranches = list
		expectationsLog.Printf("Expected branches replaced from %s (%d entries)", cfg.ExpectedBranchesFile, len(list))
	}

	if cfg.ExpectedEntriesFile != "" {
		list, err := loadExpectationList(cfg.ExpectedEntriesFile)
		if err != nil {
			return fmt.Errorf("expected entries override %s: %w", cfg.ExpectedEntriesFile, err)
		}
		spec := cfg.Artifact(ArtifactTimeline)
		if spec == nil || spec.Timeline == nil {
			return fmt.Errorf("no timeline artifact to apply %s to", cfg.ExpectedEntriesFile)
		}
		spec.Timeline.ExpectedEntries = list
		expectationsLog.Printf("Expected entries replaced from %s (%d entries)", cfg.ExpectedEntriesFile, len(list))
	}

	return nil
}

// loadExpectationList reads a YAML file holding a list of non-empty
// strings. The document shape is checked against the embedded schema so
// a wrong shape is reported with a schema diagnostic rather than a
// decode error.
func loadExpectationList(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read override file: %w", err)
	}

	jsonBytes, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to decode override document: %w", err)
	}
	if err := expectationsSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("override does not match the expected shape: %w", err)
	}

	var list []string
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to parse YAML list: %w", err)
	}
	return list, nil
}
