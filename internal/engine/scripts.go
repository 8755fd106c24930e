package engine

import (
	"fmt"
	"sort"
)

// ScriptFactory creates a Component from scene file props.
type ScriptFactory func(props map[string]any) Component

var scriptRegistry = map[string]ScriptFactory{}

// RegisterScript makes a behaviour available to scene files under name.
// Registering the same name twice panics; it is meant to be called from init.
func RegisterScript(name string, factory ScriptFactory) {
	if _, exists := scriptRegistry[name]; exists {
		panic(fmt.Sprintf("script %q already registered", name))
	}
	scriptRegistry[name] = factory
}

// CreateScript builds the named script, or returns nil if it is unknown.
func CreateScript(name string, props map[string]any) Component {
	factory, ok := scriptRegistry[name]
	if !ok {
		return nil
	}
	return factory(props)
}

// GetRegisteredScripts returns the registered names in sorted order.
func GetRegisteredScripts() []string {
	names := make([]string, 0, len(scriptRegistry))
	for name := range scriptRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PropFloat reads a numeric prop decoded from JSON.
func PropFloat(props map[string]any, key string, def float32) float32 {
	if v, ok := props[key].(float64); ok {
		return float32(v)
	}
	return def
}
