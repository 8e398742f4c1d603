package config

import "sort"

// Presets are literature values for common redox couples at a disk electrode.
var Presets = map[string]ParamsConfig{
	"default": {N: DefaultN, S: DefaultS, C: DefaultC, D: DefaultD},
	// 5 mM ferrocyanide in 1 M KCl, 3 mm glassy carbon disk
	"ferrocyanide": {N: 1, S: 0.0707, C: 5e-6, D: 6.7e-6},
	// 1 mM ferrocene in acetonitrile
	"ferrocene": {N: 1, S: 0.0707, C: 1e-6, D: 2.4e-5},
	// 10 mM Cu2+ in sulfate medium
	"copper": {N: 2, S: 0.196, C: 1e-5, D: 7.1e-6},
	// 1 mM hexaammineruthenium(III) in KCl
	"ruthenium": {N: 1, S: 0.0707, C: 1e-6, D: 5.3e-6},
}

// GetPreset returns a default configuration carrying the named parameters, or nil.
func GetPreset(name string) *Config {
	params, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Params = params
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
