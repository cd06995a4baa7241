package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
)

// envelope is the document shape the acquisition layer writes out:
// a top-level "items" array of loosely-typed records.
type envelope struct {
	Items []map[string]any `json:"items"`
}

// LoadJobs reads a job catalog file produced by the acquisition layer.
func LoadJobs(path string) (*Jobs, error) {
	var items []*Job
	if err := loadItems(path, &items); err != nil {
		return nil, fmt.Errorf("load jobs catalog: %w", err)
	}
	return &Jobs{Items: items}, nil
}

// LoadPrograms reads a program catalog file.
func LoadPrograms(path string) (*Programs, error) {
	var items []*Program
	if err := loadItems(path, &items); err != nil {
		return nil, fmt.Errorf("load programs catalog: %w", err)
	}
	return &Programs{Items: items}, nil
}

// LoadContacts reads a contact catalog file.
func LoadContacts(path string) (*Contacts, error) {
	var items []*Contact
	if err := loadItems(path, &items); err != nil {
		return nil, fmt.Errorf("load contacts catalog: %w", err)
	}
	return &Contacts{Items: items}, nil
}

// loadItems decodes the items array into the typed result. Decoding goes
// through mapstructure keyed by json tags so feeds with extra or missing
// optional fields decode without errors.
func loadItems(path string, result any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var doc envelope
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	cfg := &mapstructure.DecoderConfig{
		Metadata:         nil,
		Result:           result,
		TagName:          "json",
		WeaklyTypedInput: true,
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return err
	}

	if err := decoder.Decode(doc.Items); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
