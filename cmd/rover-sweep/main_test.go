package main

import (
	"testing"

	"lunar-rover/internal/flight"
	"lunar-rover/internal/terrain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChances(t *testing.T) {
	got, err := parseChances(" 0.05, 0.1 ,,0.2")
	require.NoError(t, err)
	assert.Equal(t, []float64{0.05, 0.1, 0.2}, got)

	_, err = parseChances("0.1,x")
	assert.Error(t, err)
	_, err = parseChances("1.5")
	assert.Error(t, err)
	_, err = parseChances(" , ")
	assert.Error(t, err)
}

func TestBuildJobs(t *testing.T) {
	jobs := buildJobs(10, 3, []float64{0.1, 0.2})
	require.Len(t, jobs, 6)
	assert.Equal(t, job{seed: 10, padChance: 0.1}, jobs[0])
	assert.Equal(t, job{seed: 12, padChance: 0.2}, jobs[5])
}

func TestRunScenarioKeepsInvariants(t *testing.T) {
	res := runScenario(terrain.DefaultConfig(), job{seed: 4, padChance: 0.1}, 4000, 0.39)
	assert.Zero(t, res.violations, res.firstError)
	assert.InDelta(t, 4000, res.scrolled, 1e-6)
	assert.Greater(t, res.pads, 0)
	assert.GreaterOrEqual(t, res.minY, 300.0)
	assert.LessOrEqual(t, res.maxY, 420.0)
	assert.GreaterOrEqual(t, res.meanGap, 40.0-1e-6, "pad runs are at least two steps apart")
}

func TestRunScenarioNoPads(t *testing.T) {
	res := runScenario(terrain.DefaultConfig(), job{seed: 4, padChance: 0}, 500, 7)
	assert.Zero(t, res.pads)
	assert.Zero(t, res.meanGap)
	assert.Zero(t, res.density())
}

func TestRunBurnEmptiesTank(t *testing.T) {
	ticks, dist := runBurn(terrain.DefaultConfig(), flight.DefaultParams(), job{seed: 1, padChance: 0.1}, 45, 60, 5000)
	assert.Equal(t, uint64(1000), ticks)
	assert.Greater(t, dist, 0.0)
}

func TestSummarize(t *testing.T) {
	results := []scenarioResult{
		{job: job{padChance: 0.2}, scrolled: 1000, pads: 4, meanGap: 200, minY: 310, maxY: 400},
		{job: job{padChance: 0.1}, scrolled: 1000, pads: 2, meanGap: 400, minY: 305, maxY: 390, violations: 1},
		{job: job{padChance: 0.1}, scrolled: 1000, pads: 4, meanGap: 200, minY: 300, maxY: 380},
	}
	got := summarize(results)
	require.Len(t, got, 2)
	assert.Equal(t, 0.1, got[0].padChance)
	assert.Equal(t, 2, got[0].runs)
	assert.Equal(t, 3.0, got[0].density)
	assert.Equal(t, 300.0, got[0].meanGap)
	assert.Equal(t, 300.0, got[0].minY)
	assert.Equal(t, 390.0, got[0].maxY)
	assert.Equal(t, 1, got[0].violations)
	assert.Equal(t, 4.0, got[1].density)
}
