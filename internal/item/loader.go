package item

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/osse101/MudShop_Go/internal/domain"
	"github.com/osse101/MudShop_Go/internal/logger"
	"github.com/osse101/MudShop_Go/internal/validation"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the item catalog asset: catalog key -> item template
type Config struct {
	Version     string                   `json:"version"`
	Description string                   `json:"description"`
	Items       map[string]domain.Object `json:"items"`
}

// Loader reads and validates the item catalog asset
type Loader interface {
	Load(path string) (*Config, error)
	Validate(config *Config) error
	LoadCatalog(ctx context.Context, path string) (*Catalog, error)
}

type itemLoader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return &itemLoader{
		schemaValidator: validation.NewSchemaValidator(),
	}
}

// Load reads and parses an items JSON file
func (l *itemLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}

	if err := l.schemaValidator.ValidateBytes(data, ItemsSchemaPath); err != nil {
		return nil, fmt.Errorf(ErrMsgSchemaFailedFmt, path, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
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

	keys := make([]string, 0, len(config.Items))
	for k := range config.Items {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		it := config.Items[key]
		if key == "" {
			return fmt.Errorf(ErrFmtItemEmptyKey, ErrInvalidConfig)
		}
		if it.Name == "" {
			return fmt.Errorf(ErrFmtItemEmptyName, ErrInvalidConfig, key)
		}
		if it.BaseValue < 0 {
			return fmt.Errorf(ErrFmtItemNegativeValue, ErrInvalidConfig, key)
		}
	}
	return nil
}

// LoadCatalog loads, validates and indexes the catalog asset
func (l *itemLoader) LoadCatalog(ctx context.Context, path string) (*Catalog, error) {
	config, err := l.Load(path)
	if err != nil {
		return nil, err
	}
	if err := l.Validate(config); err != nil {
		return nil, err
	}

	catalog := NewCatalog()
	for key, it := range config.Items {
		if it.ItemID == "" {
			it.ItemID = key
		}
		catalog.Put(key, it)
	}

	logger.FromContext(ctx).Info(LogMsgCatalogLoaded, "path", path, "items", catalog.Len())
	return catalog, nil
}
