package item

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/rethesda/soulsy/internal/validation"
)

//go:embed schemas/items.schema.json
var schemaFS embed.FS

// Sentinel errors for item loader
var (
	ErrDuplicateFormSpec = errors.New("duplicate form spec")

	ErrInvalidConfig = errors.New("invalid configuration")
)

// Loader handles loading and validating the item catalog
type Loader interface {
	Load(path string) (*Config, error)
	Parse(data []byte, source string) (*Config, error)
	Validate(config *Config) error
}

type itemLoader struct {
	schemaValidator validation.SchemaValidator
	structValidator *validator.Validate
}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return &itemLoader{
		schemaValidator: validation.NewFSValidator(schemaFS),
		structValidator: validator.New(),
	}
}

// Load reads and parses a catalog file
func (l *itemLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}
	return l.Parse(data, path)
}

// Parse validates raw catalog JSON against the embedded schema and decodes it
func (l *itemLoader) Parse(data []byte, source string) (*Config, error) {
	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
	}

	if err := l.schemaValidator.ValidateBytes(data, SchemaPath); err != nil {
		return nil, fmt.Errorf(ErrFmtSchemaFailed, source, err)
	}

	return &config, nil
}

// Validate checks the catalog for errors the schema cannot express
func (l *itemLoader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgConfigNil)
	}

	if len(config.Items) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoItemsDefined)
	}

	if err := l.structValidator.Struct(config); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	specs := make(map[string]bool, len(config.Items))
	for i := range config.Items {
		def := &config.Items[i]

		if specs[def.FormSpec] {
			return fmt.Errorf("%w: '%s'", ErrDuplicateFormSpec, def.FormSpec)
		}
		specs[def.FormSpec] = true

		if _, err := def.ToItem(); err != nil {
			return fmt.Errorf(ErrFmtItemAtIndex, ErrInvalidConfig, i, err)
		}
	}

	return nil
}
