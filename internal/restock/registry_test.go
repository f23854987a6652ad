package restock

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MudShop_Go/internal/domain"
)

func writeAsset(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	schema, err := os.ReadFile(filepath.Join("..", "..", "configs", StockSchemaPath))
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "schemas"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, StockSchemaPath), schema, 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "economy"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "economy", name), []byte(content), 0o644))
	return dir
}

func TestRegistry_LoadJSON(t *testing.T) {
	dir := writeAsset(t, "shop_stock.json", `{
		"trinkets": {"interval": 300, "min_items": 1, "max_items": 2, "message": "tidy", "items": [{"name": "A"}]},
		"The Bob": {"bag_name": "{player}'s sack"}
	}`)

	r := NewRegistry(dir)
	require.NoError(t, r.Load(context.Background()))

	pool, ok := r.Pool(context.Background(), "trinkets")
	require.True(t, ok)
	assert.Equal(t, 300.0, pool.Interval)
	assert.Equal(t, "tidy", pool.Message)
	require.Len(t, pool.Items, 1)

	f := r.Flavor("Bob")
	assert.Equal(t, "{player}'s sack", f.BagName)
	assert.Equal(t, domain.DefaultFlavor().CounterKey, f.CounterKey, "missing fields take defaults")
}

func TestRegistry_LoadYAML(t *testing.T) {
	dir := writeAsset(t, "shop_stock.yaml", `
rack:
  interval: 600
  min_items: 0
  max_items: 1
  items:
    - name: a hand axe
      base_value: 35
grizelda:
  bag_name: "{player}'s pouch"
  counter_key: shelf
`)

	r := NewRegistry(dir)
	pools := r.Pools(context.Background())

	require.Contains(t, pools, "rack")
	require.True(t, pools["rack"].Items[0].IsInline())
	assert.Equal(t, 35, pools["rack"].Items[0].Inline.BaseValue)
	assert.Equal(t, "shelf", r.Flavor("Grizelda the Witch").CounterKey)
}

func TestRegistry_LoadYML(t *testing.T) {
	dir := writeAsset(t, "shop_stock.yml", `
trinkets:
  interval: 120
  min_items: 1
  max_items: 1
  items: [brass_key]
`)

	r := NewRegistry(dir)
	require.NoError(t, r.Load(context.Background()))

	pool, ok := r.Pool(context.Background(), "trinkets")
	require.True(t, ok)
	assert.Equal(t, []domain.ItemRef{domain.RefByKey("brass_key")}, pool.Items)
}

func TestRegistry_MixedItemShapes(t *testing.T) {
	dir := writeAsset(t, "shop_stock.json", `{
		"trinkets": {"interval": 300, "min_items": 1, "max_items": 2, "items": ["brass_key", {"name": "a tin whistle", "base_value": 4}]}
	}`)

	r := NewRegistry(dir)
	require.NoError(t, r.Load(context.Background()))

	pool, ok := r.Pool(context.Background(), "trinkets")
	require.True(t, ok)
	require.Len(t, pool.Items, 2)
	assert.Equal(t, "brass_key", pool.Items[0].Key)
	require.True(t, pool.Items[1].IsInline())
	assert.Equal(t, "a tin whistle", pool.Items[1].Inline.Name)
}

func TestRegistry_SchemaRejectsBadItem(t *testing.T) {
	dir := writeAsset(t, "shop_stock.json", `{
		"trinkets": {"interval": 300, "items": [42]}
	}`)

	r := NewRegistry(dir)
	err := r.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed schema validation")
}

func TestRegistry_SchemaResolvedUnderAssetsPath(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "economy"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "economy", "shop_stock.json"),
		[]byte(`{"trinkets": {"interval": 60, "items": ["brass_key"]}}`), 0o644))

	err := NewRegistry(dir).Load(context.Background())

	require.Error(t, err, "no schemas/ directory under the assets path")
	assert.Contains(t, err.Error(), filepath.Join(dir, StockSchemaPath))
}

func TestRegistry_InvalidPoolSkipped(t *testing.T) {
	dir := writeAsset(t, "shop_stock.json", `{
		"good": {"interval": 60, "min_items": 1, "max_items": 1, "items": [{"name": "A"}]},
		"inverted": {"interval": 60, "min_items": 3, "max_items": 1, "items": [{"name": "A"}]}
	}`)

	r := NewRegistry(dir)
	pools := r.Pools(context.Background())

	assert.Contains(t, pools, "good")
	assert.NotContains(t, pools, "inverted")
}

func TestRegistry_MalformedAssetLeavesCacheEmpty(t *testing.T) {
	dir := writeAsset(t, "shop_stock.json", `{"trinkets": `)

	r := NewRegistry(dir)
	require.Error(t, r.Load(context.Background()))
	assert.Empty(t, r.Pools(context.Background()))
}

func TestRegistry_MissingAsset(t *testing.T) {
	r := NewRegistry(t.TempDir())
	err := r.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read shop stock asset")
}

func TestRegistry_FlavorFallback(t *testing.T) {
	r := NewRegistry(t.TempDir())
	assert.Equal(t, domain.DefaultFlavor(), r.Flavor("Nobody"))
}

func TestRegistry_RepoAsset(t *testing.T) {
	r := NewRegistry(filepath.Join("..", "..", "configs"))
	require.NoError(t, r.Load(context.Background()))

	pools := r.Pools(context.Background())
	assert.Contains(t, pools, "trinkets")
	assert.Contains(t, pools, "armory_rack")
	assert.Equal(t, "shelf", r.Flavor("Grizelda").CounterKey)
}
