//go:build scenario

package campaign

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/Shopify/go-lua"
)

const scenarioTypeName = "scenario"

// Scenario is a scripted campaign walkthrough: seed and setup steps,
// day spans and creative exchanges, and the expectations checked
// between them.
type Scenario struct {
	Name  string
	Steps []Step
}

// Step is one scripted action or expectation.
type Step struct {
	Kind string
	Args map[string]any
}

func loadScenarioFromFile(path string) (*Scenario, error) {
	state := lua.NewState()
	lua.OpenLibraries(state)

	registerLuaTypes(state)

	if err := lua.LoadFile(state, path, ""); err != nil {
		return nil, fmt.Errorf("load lua: %w", err)
	}
	if err := state.ProtectedCall(0, 1, 0); err != nil {
		return nil, fmt.Errorf("run lua: %w", err)
	}

	if state.TypeOf(-1) != lua.TypeUserData {
		state.Pop(1)
		return nil, fmt.Errorf("scenario script must return Scenario")
	}
	ud := state.ToUserData(-1)
	state.Pop(1)
	scenario, ok := ud.(*Scenario)
	if !ok || scenario == nil {
		return nil, fmt.Errorf("scenario script returned invalid Scenario")
	}
	if strings.TrimSpace(scenario.Name) == "" {
		scenario.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return scenario, nil
}

func registerLuaTypes(state *lua.State) {
	registerScenarioType(state)
	registerScenarioConstructor(state)
}

func registerScenarioType(state *lua.State) {
	lua.NewMetaTable(state, scenarioTypeName)
	state.NewTable()
	lua.SetFunctions(state, scenarioMethods, 0)
	state.SetField(-2, "__index")
	state.Pop(1)
}

func registerScenarioConstructor(state *lua.State) {
	state.NewTable()
	lua.SetFunctions(state, scenarioConstructor, 0)
	state.SetGlobal("Scenario")
}

var scenarioConstructor = []lua.RegistryFunction{
	{Name: "new", Function: scenarioNew},
}

func scenarioNew(state *lua.State) int {
	name := lua.OptString(state, 1, "")
	scenario := &Scenario{Name: name}
	state.PushUserData(scenario)
	lua.SetMetaTableNamed(state, scenarioTypeName)
	return 1
}

var scenarioMethods = []lua.RegistryFunction{
	{Name: "campaign", Function: scenarioCampaign},
	{Name: "zone", Function: scenarioZone},
	{Name: "clock", Function: scenarioClock},
	{Name: "npc", Function: scenarioNPC},
	{Name: "set_progress", Function: scenarioSetProgress},
	{Name: "rest", Function: scenarioRest},
	{Name: "travel", Function: scenarioTravel},
	{Name: "respond", Function: scenarioRespond},
	{Name: "end_session", Function: scenarioEndSession},
	{Name: "reload", Function: scenarioReload},
	{Name: "expect_phase", Function: scenarioExpectPhase},
	{Name: "expect_date", Function: scenarioExpectDate},
	{Name: "expect_zone", Function: scenarioExpectZone},
	{Name: "expect_session", Function: scenarioExpectSession},
	{Name: "expect_clock", Function: scenarioExpectClock},
	{Name: "expect_rule_fired", Function: scenarioExpectRuleFired},
	{Name: "expect_pending", Function: scenarioExpectPending},
	{Name: "expect_save_name", Function: scenarioExpectSaveName},
}

func scenarioCampaign(state *lua.State) int {
	scenario := checkScenario(state)
	lua.CheckType(state, 2, lua.TypeTable)
	data := tableToMap(state, 2)
	appendStep(scenario, "campaign", data)
	return 0
}

func scenarioZone(state *lua.State) int {
	scenario := checkScenario(state)
	lua.CheckType(state, 2, lua.TypeTable)
	data := tableToMap(state, 2)
	appendStep(scenario, "zone", data)
	return 0
}

func scenarioClock(state *lua.State) int {
	scenario := checkScenario(state)
	lua.CheckType(state, 2, lua.TypeTable)
	data := tableToMap(state, 2)
	appendStep(scenario, "clock", data)
	return 0
}

func scenarioNPC(state *lua.State) int {
	scenario := checkScenario(state)
	name := lua.CheckString(state, 2)
	opts := optionalTable(state, 3)
	data := map[string]any{"name": name}
	for key, value := range opts {
		data[key] = value
	}
	appendStep(scenario, "npc", data)
	return 0
}

func scenarioSetProgress(state *lua.State) int {
	scenario := checkScenario(state)
	lua.CheckType(state, 2, lua.TypeTable)
	data := tableToMap(state, 2)
	appendStep(scenario, "set_progress", data)
	return 0
}

func scenarioRest(state *lua.State) int {
	scenario := checkScenario(state)
	data := optionalTable(state, 2)
	appendStep(scenario, "rest", data)
	return 0
}

func scenarioTravel(state *lua.State) int {
	scenario := checkScenario(state)
	destination := lua.CheckString(state, 2)
	opts := optionalTable(state, 3)
	data := map[string]any{"to": destination}
	for key, value := range opts {
		data[key] = value
	}
	appendStep(scenario, "travel", data)
	return 0
}

func scenarioRespond(state *lua.State) int {
	scenario := checkScenario(state)
	data := optionalTable(state, 2)
	appendStep(scenario, "respond", data)
	return 0
}

func scenarioEndSession(state *lua.State) int {
	scenario := checkScenario(state)
	appendStep(scenario, "end_session", nil)
	return 0
}

func scenarioReload(state *lua.State) int {
	scenario := checkScenario(state)
	appendStep(scenario, "reload", nil)
	return 0
}

func scenarioExpectPhase(state *lua.State) int {
	scenario := checkScenario(state)
	phase := lua.CheckString(state, 2)
	appendStep(scenario, "expect_phase", map[string]any{"phase": phase})
	return 0
}

func scenarioExpectDate(state *lua.State) int {
	scenario := checkScenario(state)
	date := lua.CheckString(state, 2)
	appendStep(scenario, "expect_date", map[string]any{"date": date})
	return 0
}

func scenarioExpectZone(state *lua.State) int {
	scenario := checkScenario(state)
	zone := lua.CheckString(state, 2)
	appendStep(scenario, "expect_zone", map[string]any{"zone": zone})
	return 0
}

func scenarioExpectSession(state *lua.State) int {
	scenario := checkScenario(state)
	session := int(lua.CheckNumber(state, 2))
	appendStep(scenario, "expect_session", map[string]any{"session": session})
	return 0
}

func scenarioExpectClock(state *lua.State) int {
	scenario := checkScenario(state)
	lua.CheckType(state, 2, lua.TypeTable)
	data := tableToMap(state, 2)
	appendStep(scenario, "expect_clock", data)
	return 0
}

func scenarioExpectRuleFired(state *lua.State) int {
	scenario := checkScenario(state)
	rule := lua.CheckString(state, 2)
	appendStep(scenario, "expect_rule_fired", map[string]any{"rule": rule})
	return 0
}

func scenarioExpectPending(state *lua.State) int {
	scenario := checkScenario(state)
	min := int(lua.CheckNumber(state, 2))
	appendStep(scenario, "expect_pending", map[string]any{"min": min})
	return 0
}

func scenarioExpectSaveName(state *lua.State) int {
	scenario := checkScenario(state)
	name := lua.CheckString(state, 2)
	appendStep(scenario, "expect_save_name", map[string]any{"name": name})
	return 0
}

func checkScenario(state *lua.State) *Scenario {
	ud := lua.CheckUserData(state, 1, scenarioTypeName)
	if scenario, ok := ud.(*Scenario); ok && scenario != nil {
		return scenario
	}
	lua.ArgumentError(state, 1, "scenario expected")
	return nil
}

func appendStep(scenario *Scenario, kind string, data map[string]any) int {
	if scenario == nil {
		return -1
	}
	if data == nil {
		data = map[string]any{}
	}
	scenario.Steps = append(scenario.Steps, Step{Kind: kind, Args: data})
	return len(scenario.Steps) - 1
}

func optionalTable(state *lua.State, index int) map[string]any {
	if state.IsNoneOrNil(index) || state.TypeOf(index) != lua.TypeTable {
		return map[string]any{}
	}
	return tableToMap(state, index)
}

func tableToMap(state *lua.State, index int) map[string]any {
	output := map[string]any{}
	if state.TypeOf(index) != lua.TypeTable {
		return output
	}

	index = state.AbsIndex(index)
	state.PushNil()
	for state.Next(index) {
		if state.TypeOf(-2) == lua.TypeString {
			key, _ := state.ToString(-2)
			output[key] = luaToGo(state, -1)
		}
		state.Pop(1)
	}
	return output
}

func luaToGo(state *lua.State, index int) any {
	switch state.TypeOf(index) {
	case lua.TypeString:
		value, _ := state.ToString(index)
		return value
	case lua.TypeNumber:
		value, _ := state.ToNumber(index)
		return normalizeNumber(value)
	case lua.TypeBoolean:
		return state.ToBoolean(index)
	case lua.TypeTable:
		return tableToGo(state, index)
	case lua.TypeUserData:
		return state.ToUserData(index)
	default:
		return nil
	}
}

// tableToGo converts a Lua table to a Go slice when its keys form the
// contiguous range 1..n, and to a string-keyed map otherwise.
func tableToGo(state *lua.State, index int) any {
	if state.TypeOf(index) != lua.TypeTable {
		return nil
	}

	index = state.AbsIndex(index)
	isArray := true
	maxIndex := 0
	count := 0
	state.PushNil()
	for state.Next(index) {
		if isArray {
			if state.TypeOf(-2) != lua.TypeNumber {
				isArray = false
			} else if idx, ok := state.ToInteger(-2); ok && idx > 0 {
				count++
				if idx > maxIndex {
					maxIndex = idx
				}
			} else {
				isArray = false
			}
		}
		state.Pop(1)
	}

	if isArray && count > 0 && maxIndex == count {
		result := make([]any, 0, maxIndex)
		for i := 1; i <= maxIndex; i++ {
			state.RawGetInt(index, i)
			result = append(result, luaToGo(state, -1))
			state.Pop(1)
		}
		return result
	}
	return tableToMap(state, index)
}

func normalizeNumber(value float64) any {
	if math.Mod(value, 1) == 0 {
		return int(value)
	}
	return value
}
