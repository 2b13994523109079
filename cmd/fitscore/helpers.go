package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/dmartin/fitscore/internal/schemas"
	"github.com/dmartin/fitscore/internal/types"
)

// claimSet is the on-disk artifact shape for extracted claims
type claimSet struct {
	Claims []types.Claim `json:"claims"`
}

func loadClaims(path string) ([]types.Claim, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read claims file: %w", err)
	}
	var set claimSet
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("failed to parse claims JSON: %w", err)
	}
	return set.Claims, nil
}

func loadProfile(path string) (*types.Profile, error) {
	var profile types.Profile
	if path == "" {
		return &profile, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file: %w", err)
	}
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile JSON: %w", err)
	}
	if err := types.ValidateProfile(&profile); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}
	return &profile, nil
}

// writeArtifact marshals v with indentation, validates it against the named
// schema when the schema file can be found, and writes it to path. An empty
// path writes to stdout instead.
func writeArtifact(v interface{}, schemaRelPath, path string) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if schemaRelPath != "" {
		if schemaPath := schemas.ResolveSchemaPath(schemaRelPath); schemaPath != "" {
			if err := schemas.ValidateBytes(schemaPath, jsonBytes); err != nil {
				var validationErr *schemas.ValidationError
				if errors.As(err, &validationErr) {
					return fmt.Errorf("generated JSON does not validate against schema: %w", err)
				}
				_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate output against schema: %v\n", err)
			}
		}
	}

	if path == "" {
		_, err = fmt.Fprintln(os.Stdout, string(jsonBytes))
		return err
	}
	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
