package bazi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElementCycles(t *testing.T) {
	assert.Equal(t, Fire, Wood.Generates())
	assert.Equal(t, Earth, Wood.Controls())
	assert.Equal(t, Water, Wood.GeneratedBy())
	assert.Equal(t, Metal, Wood.ControlledBy())
	assert.Equal(t, Fire, Water.Controls())
	assert.Equal(t, Element(""), Element("x").Controls())
}

func TestRoleOf(t *testing.T) {
	assert.Equal(t, RoleWealth, RoleOf(Water, Fire))
	assert.Equal(t, RoleOutput, RoleOf(Water, Wood))
	assert.Equal(t, RoleCompanion, RoleOf(Water, Water))
	assert.Equal(t, RoleAuthority, RoleOf(Water, Earth))
	assert.Equal(t, RoleResource, RoleOf(Water, Metal))
}

func TestCountElements(t *testing.T) {
	chart := Chart{WuXing: []string{"金火", "金火", "金土", "水火"}}
	ec := CountElements(chart)

	assert.Equal(t, ElementCount{Fire: 3, Earth: 1, Metal: 3, Water: 1}, ec)
	assert.Equal(t, 8, ec.Total())
	assert.Equal(t, 3, ec.Of(Metal))
}

func TestCountElementsIgnoresUnknownRunes(t *testing.T) {
	ec := CountElements(Chart{WuXing: []string{"木?", "x水"}})
	assert.Equal(t, ElementCount{Wood: 1, Water: 1}, ec)
}

func TestChartStemsAndBranches(t *testing.T) {
	chart := Chart{Year: "庚午", Month: "辛巳", Day: "庚辰", Hour: "壬"}
	assert.Equal(t, []string{"庚", "辛", "庚", "壬"}, chart.Stems())
	assert.Equal(t, []string{"午", "巳", "辰", ""}, chart.Branches())
	assert.Equal(t, "庚午-辛巳-庚辰-壬", chart.Key())
}

func TestFormFromInput(t *testing.T) {
	assert.Equal(t, BirthForm{Year: 1990, Month: 5, Day: 15, Hour: 12}, FormFromInput("1990-05-15", "12:30"))
	assert.Equal(t, BirthForm{Year: 2001, Month: 13, Day: 40, Hour: 99}, FormFromInput("2001-13-40", "99:00"))
	assert.Equal(t, BirthForm{}, FormFromInput("abc", ""))
}

func TestDeriveInvalidInputFallsBackToDefault(t *testing.T) {
	d := NewLunarDeriver(nil)

	chart, err := d.Derive("not-a-date", "12:00")
	require.Error(t, err)
	assert.Equal(t, DefaultChart(), chart)
}

func TestDeriveProducesFullChart(t *testing.T) {
	d := NewLunarDeriver(nil)

	chart, err := d.Derive("1990-05-15", "12:00")
	require.NoError(t, err)

	for _, p := range chart.Pillars() {
		assert.Len(t, []rune(p), 2)
	}
	assert.Len(t, chart.Composition(), 8)
	assert.Equal(t, chart.Stems()[2], chart.DayMaster)
	assert.True(t, IsStem(chart.DayMaster))
	assert.Equal(t, 8, CountElements(chart).Total())
}
