package engine

import "testing"

type MockScript struct {
	BaseComponent
	Speed  float32
	Health int
}

func mockFactory(props map[string]any) Component {
	script := &MockScript{}
	script.Speed = PropFloat(props, "speed", 1)
	if v, ok := props["health"].(float64); ok {
		script.Health = int(v)
	}
	return script
}

func TestRegisterScript(t *testing.T) {
	scriptRegistry = map[string]ScriptFactory{}

	RegisterScript("MockScript", mockFactory)

	if _, exists := scriptRegistry["MockScript"]; !exists {
		t.Error("Script not registered")
	}
}

func TestRegisterScriptDuplicate(t *testing.T) {
	scriptRegistry = map[string]ScriptFactory{}

	RegisterScript("Duplicate", mockFactory)

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic on duplicate registration")
		}
	}()

	RegisterScript("Duplicate", mockFactory)
}

func TestCreateScript(t *testing.T) {
	scriptRegistry = map[string]ScriptFactory{}

	RegisterScript("MockScript", mockFactory)

	props := map[string]any{
		"speed":  float64(10.5),
		"health": float64(100),
	}

	component := CreateScript("MockScript", props)
	if component == nil {
		t.Fatal("CreateScript returned nil")
	}

	script, ok := component.(*MockScript)
	if !ok {
		t.Fatal("CreateScript didn't return MockScript")
	}

	if script.Speed != 10.5 {
		t.Errorf("Expected Speed 10.5, got %f", script.Speed)
	}

	if script.Health != 100 {
		t.Errorf("Expected Health 100, got %d", script.Health)
	}
}

func TestCreateScriptDefaults(t *testing.T) {
	scriptRegistry = map[string]ScriptFactory{}

	RegisterScript("MockScript", mockFactory)

	script := CreateScript("MockScript", nil).(*MockScript)
	if script.Speed != 1 {
		t.Errorf("Expected default Speed 1, got %f", script.Speed)
	}
}

func TestCreateScriptNotFound(t *testing.T) {
	scriptRegistry = map[string]ScriptFactory{}

	component := CreateScript("DoesNotExist", nil)
	if component != nil {
		t.Error("CreateScript should return nil for non-existent script")
	}
}

func TestGetRegisteredScripts(t *testing.T) {
	scriptRegistry = map[string]ScriptFactory{}

	RegisterScript("ScriptC", mockFactory)
	RegisterScript("ScriptA", mockFactory)
	RegisterScript("ScriptB", mockFactory)

	scripts := GetRegisteredScripts()

	if len(scripts) != 3 {
		t.Fatalf("Expected 3 scripts, got %d", len(scripts))
	}

	if scripts[0] != "ScriptA" || scripts[1] != "ScriptB" || scripts[2] != "ScriptC" {
		t.Errorf("Scripts not in sorted order: %v", scripts)
	}
}

func TestPropFloatWrongType(t *testing.T) {
	props := map[string]any{"speed": "fast"}
	if got := PropFloat(props, "speed", 3); got != 3 {
		t.Errorf("Expected fallback 3, got %f", got)
	}
}
