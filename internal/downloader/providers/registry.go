package providers

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/Masterminds/semver/v3"
	"github.com/vrsandeep/nijiero-go/internal/models"
)

var (
	mu       sync.RWMutex
	registry = make(map[string]models.Provider)
)

// Register adds a new provider to the registry. It's called at startup.
func Register(p models.Provider) {
	info := mustValidate(p)

	mu.Lock()
	defer mu.Unlock()
	if _, exists := registry[info.ID]; exists {
		panic(fmt.Sprintf("provider with ID '%s' is already registered", info.ID))
	}
	registry[info.ID] = p
}

// Replace registers p, swapping out any provider already holding its ID.
func Replace(p models.Provider) {
	info := mustValidate(p)

	mu.Lock()
	defer mu.Unlock()
	registry[info.ID] = p
}

// Panics are appropriate here as these are developer errors during setup.
func mustValidate(p models.Provider) models.ProviderInfo {
	info := p.GetInfo()
	if _, err := semver.NewVersion(strings.TrimPrefix(info.Version, "v")); err != nil {
		panic(fmt.Sprintf("provider '%s' has invalid version '%s': %v", info.ID, info.Version, err))
	}
	return info
}

// Get returns a provider by its ID.
func Get(id string) (models.Provider, bool) {
	mu.RLock()
	defer mu.RUnlock()
	p, ok := registry[id]
	return p, ok
}

// GetAll returns information for all registered providers, ordered by ID.
func GetAll() []models.ProviderInfo {
	mu.RLock()
	defer mu.RUnlock()
	providers := make([]models.ProviderInfo, 0, len(registry))
	for _, p := range registry {
		providers = append(providers, p.GetInfo())
	}
	sort.Slice(providers, func(i, j int) bool {
		return providers[i].ID < providers[j].ID
	})
	return providers
}

// UnregisterAll empties the registry. Only tests should need this.
func UnregisterAll() {
	mu.Lock()
	defer mu.Unlock()
	registry = make(map[string]models.Provider)
}
