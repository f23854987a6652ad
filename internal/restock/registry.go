package restock

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/MudShop_Go/internal/domain"
	"github.com/osse101/MudShop_Go/internal/logger"
	"github.com/osse101/MudShop_Go/internal/utils"
	"github.com/osse101/MudShop_Go/internal/validation"
)

// Registry loads restock pools and keeper flavor entries from the shop
// stock asset. The cache is read-mostly: loaded once, reloaded only while empty.
type Registry struct {
	assetsPath      string
	schemaValidator validation.SchemaValidator
	validate        *validator.Validate

	mu      sync.RWMutex
	pools   map[string]domain.Pool
	flavors map[string]domain.Flavor

	failOnce sync.Once
}

// NewRegistry creates a Registry reading from assetsPath.
func NewRegistry(assetsPath string) *Registry {
	return &Registry{
		assetsPath:      assetsPath,
		schemaValidator: validation.NewSchemaValidator(),
		validate:        validator.New(validator.WithRequiredStructEnabled()),
		pools:           map[string]domain.Pool{},
		flavors:         map[string]domain.Flavor{},
	}
}

// Load (re)reads the asset. On failure the cache is left empty and the error
// is logged the first time only.
func (r *Registry) Load(ctx context.Context) error {
	pools, flavors, err := r.read(ctx)
	if err != nil {
		r.failOnce.Do(func() {
			logger.FromContext(ctx).Warn(LogMsgAssetLoadFailed, "path", r.assetsPath, "error", err)
		})
		return err
	}

	r.mu.Lock()
	r.pools = pools
	r.flavors = flavors
	r.mu.Unlock()

	logger.FromContext(ctx).Info(LogMsgPoolsLoaded, "pools", len(pools), "flavors", len(flavors))
	return nil
}

// Pools returns the pool table, attempting a load when the cache is empty.
func (r *Registry) Pools(ctx context.Context) map[string]domain.Pool {
	r.mu.RLock()
	empty := len(r.pools) == 0
	r.mu.RUnlock()

	if empty {
		_ = r.Load(ctx)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]domain.Pool, len(r.pools))
	for k, v := range r.pools {
		out[k] = v
	}
	return out
}

// Pool returns a single pool definition.
func (r *Registry) Pool(ctx context.Context, id string) (domain.Pool, bool) {
	p, ok := r.Pools(ctx)[id]
	return p, ok
}

// Flavor returns the bagging flavor for a keeper. Names are normalized by
// lowercasing and dropping "the "; an exact key wins over a partial one.
func (r *Registry) Flavor(keeper string) domain.Flavor {
	name := normalizeKeeper(keeper)

	r.mu.RLock()
	defer r.mu.RUnlock()

	if f, ok := r.flavors[name]; ok {
		return f
	}

	keys := make([]string, 0, len(r.flavors))
	for k := range r.flavors {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if k != "" && strings.Contains(name, k) {
			return r.flavors[k]
		}
	}
	return domain.DefaultFlavor()
}

func normalizeKeeper(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.ReplaceAll(n, "the ", "")
	return strings.TrimSpace(n)
}

func (r *Registry) read(ctx context.Context) (map[string]domain.Pool, map[string]domain.Flavor, error) {
	path, data, err := r.readAsset()
	if err != nil {
		return nil, nil, err
	}

	if utils.IsYAML(path) {
		if data, err = utils.YAMLToJSON(data); err != nil {
			return nil, nil, fmt.Errorf(ErrMsgParseAssetFmt, path, err)
		}
	}

	if err := r.schemaValidator.ValidateBytes(data, filepath.Join(r.assetsPath, StockSchemaPath)); err != nil {
		return nil, nil, fmt.Errorf(ErrMsgSchemaFmt, path, err)
	}

	var entries map[string]json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, nil, fmt.Errorf(ErrMsgParseAssetFmt, path, err)
	}

	pools := make(map[string]domain.Pool)
	flavors := make(map[string]domain.Flavor)
	log := logger.FromContext(ctx)

	for id, raw := range entries {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(raw, &fields); err != nil {
			return nil, nil, fmt.Errorf(ErrMsgParseEntryFmt, id, err)
		}

		if _, isPool := fields["items"]; isPool {
			pool, err := r.parsePool(id, raw)
			if err != nil {
				log.Warn(LogMsgPoolSkipped, "pool", id, "error", err)
				continue
			}
			pools[id] = pool
			continue
		}

		var f domain.Flavor
		if err := json.Unmarshal(raw, &f); err != nil {
			return nil, nil, fmt.Errorf(ErrMsgParseEntryFmt, id, err)
		}
		flavors[normalizeKeeper(id)] = withFlavorDefaults(f)
	}

	return pools, flavors, nil
}

func (r *Registry) parsePool(id string, raw json.RawMessage) (domain.Pool, error) {
	var pool domain.Pool
	if err := json.Unmarshal(raw, &pool); err != nil {
		return pool, fmt.Errorf(ErrMsgInvalidPoolFmt, id, err)
	}
	if err := r.validate.Struct(pool); err != nil {
		return pool, fmt.Errorf(ErrMsgInvalidPoolFmt, id, err)
	}
	return pool, nil
}

func (r *Registry) readAsset() (string, []byte, error) {
	base := filepath.Join(r.assetsPath, StockAssetBase)
	path, ok := utils.FindAsset(base)
	if !ok {
		return "", nil, fmt.Errorf(ErrMsgReadAssetFmt, base+".json", os.ErrNotExist)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf(ErrMsgReadAssetFmt, path, err)
	}
	return path, data, nil
}

func withFlavorDefaults(f domain.Flavor) domain.Flavor {
	def := domain.DefaultFlavor()
	if f.BagName == "" {
		f.BagName = def.BagName
	}
	if f.BagDesc == "" {
		f.BagDesc = def.BagDesc
	}
	if f.BaggingEmote == "" {
		f.BaggingEmote = def.BaggingEmote
	}
	if f.CounterKey == "" {
		f.CounterKey = def.CounterKey
	}
	return f
}
