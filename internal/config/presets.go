package config

import "sort"

var Presets = map[string]map[string]*TraceConfig{
	"push_back": {
		"small":        {Workload: "push_back", Count: 16, Seed: 1},
		"large":        {Workload: "push_back", Count: 4096, Seed: 1},
		"preallocated": {Workload: "push_back", Count: 1024, InitialCapacity: 1024, Seed: 1},
	},
	"push_front": {
		"small": {Workload: "push_front", Count: 16, Seed: 1},
		"large": {Workload: "push_front", Count: 2048, Seed: 1},
	},
	"mixed": {
		"short": {Workload: "mixed", Count: 128, Seed: 7},
		"long":  {Workload: "mixed", Count: 4096, Seed: 7},
	},
	"drain": {
		"queue": {Workload: "drain", Count: 256, Seed: 1},
	},
	"churn": {
		"reuse": {Workload: "churn", Count: 512, Seed: 1},
	},
	"middle": {
		"small": {Workload: "middle", Count: 64, Seed: 1},
	},
}

// GetPreset returns a copy of the named preset, or nil when it does not exist.
func GetPreset(workload, name string) *TraceConfig {
	byName, ok := Presets[workload]
	if !ok {
		return nil
	}
	p, ok := byName[name]
	if !ok {
		return nil
	}
	cp := *p
	return &cp
}

func ListPresets(workload string) []string {
	byName, ok := Presets[workload]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
