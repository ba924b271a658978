package freshness

import (
	"math"
	"sync"
)

// Profile holds the static spoilage attributes of an item type.
type Profile struct {
	BaseShelfLifeHours float64 `json:"base_shelf_life_hours"`
	RespirationRate    float64 `json:"respiration_rate"`
}

// DefaultProfile is used for item types the registry does not know.
// Unknown types are never an error.
var DefaultProfile = Profile{BaseShelfLifeHours: 72.0, RespirationRate: 1.0}

const (
	// q10 models a doubling of the decay rate per 10°C above the 4°C
	// reference temperature.
	q10 = 2.0

	referenceTempC = 4.0

	// lowHumidityFactor is the divisor applied below 60% humidity.
	// Note this *increases* the effective decay factor at low humidity,
	// which is inverted relative to typical spoilage physics for some
	// produce. It is the documented reference behavior; do not "fix" it.
	lowHumidityFactor     = 0.85
	humidityThresholdPct  = 60.0
	defaultHumidityFactor = 1.0
)

// EnvironmentFactor combines temperature and humidity into a multiplier
// scaling the decay rate. 4°C at >=60% humidity yields exactly 1.0.
func EnvironmentFactor(tempC, humidityPct float64) float64 {
	humidityFactor := defaultHumidityFactor
	if humidityPct < humidityThresholdPct {
		humidityFactor = lowHumidityFactor
	}
	return math.Pow(q10, (tempC-referenceTempC)/10.0) / humidityFactor
}

// Registry maps item types to their spoilage profiles. It is seeded
// with the built-in produce table and may be extended at runtime via
// profile import; reads vastly outnumber writes.
type Registry struct {
	mu       sync.RWMutex
	profiles map[string]Profile
}

// NewRegistry returns a registry seeded with the built-in profiles.
func NewRegistry() *Registry {
	return &Registry{
		profiles: map[string]Profile{
			"banana": {BaseShelfLifeHours: 72.0, RespirationRate: 1.2},
			"apple":  {BaseShelfLifeHours: 120.0, RespirationRate: 0.8},
			"grapes": {BaseShelfLifeHours: 48.0, RespirationRate: 1.5},
			"pear":   {BaseShelfLifeHours: 50.0, RespirationRate: 1.0},
		},
	}
}

// Lookup returns the profile for an item type, falling back to
// DefaultProfile for unknown types.
func (r *Registry) Lookup(itemType string) Profile {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if p, ok := r.profiles[itemType]; ok {
		return p
	}
	return DefaultProfile
}

// Put registers or replaces the profile for an item type.
func (r *Registry) Put(itemType string, p Profile) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[itemType] = p
}

// Types returns the registered item types, for introspection.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	types := make([]string, 0, len(r.profiles))
	for t := range r.profiles {
		types = append(types, t)
	}
	return types
}

// AdjustedLifeHours is the shelf life of an item type corrected for its
// respiration rate and the ambient environment.
func (r *Registry) AdjustedLifeHours(itemType string, tempC, humidityPct float64) float64 {
	p := r.Lookup(itemType)
	return (p.BaseShelfLifeHours / p.RespirationRate) / EnvironmentFactor(tempC, humidityPct)
}

// EstimateRemainingHours returns the remaining shelf life in hours for
// each timestamp, in the same order, clamped at zero. The adjusted life
// is computed once per call and shared across all timestamps.
func (r *Registry) EstimateRemainingHours(itemType string, timestamps []int64, now int64, tempC, humidityPct float64) []float64 {
	adjusted := r.AdjustedLifeHours(itemType, tempC, humidityPct)
	remaining := make([]float64, len(timestamps))
	for i, ts := range timestamps {
		hoursElapsed := float64(now-ts) / 3600.0
		rsl := adjusted - hoursElapsed
		if rsl < 0 {
			rsl = 0
		}
		remaining[i] = rsl
	}
	return remaining
}
