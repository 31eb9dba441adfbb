package elements

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultRadiusLookup(t *testing.T) {
	tb := DefaultTable(0, nil)
	assert.Equal(t, 0.66, tb.Radius(8))  // O
	assert.Equal(t, 1.11, tb.Radius(14)) // Si
}

func TestManualOverrideTakesPrecedence(t *testing.T) {
	tb := DefaultTable(0, []Override{{Z: 8, Radius: 2.0}})
	assert.Equal(t, 2.0, tb.Radius(8))
	// Unaffected species still use the base table.
	assert.Equal(t, 0.76, tb.Radius(6))
}

func TestManualOverrideAddsUnknownSpecies(t *testing.T) {
	tb := DefaultTable(0, []Override{{Z: 999, Radius: 3.0}})
	assert.Equal(t, 3.0, tb.Radius(999))
}

func TestMinRadiusFloorAppliesAfterScaling(t *testing.T) {
	tb := DefaultTable(1.0, nil)
	tb.ApplyScaling(0.1)
	assert.Equal(t, 1.0, tb.Radius(1)) // H: 0.31 * 0.1 = 0.031, floored to 1.0
}

func TestApplyScalingMultipliesRadius(t *testing.T) {
	tb := DefaultTable(0, nil)
	tb.ApplyScaling(2.0)
	assert.Equal(t, 1.52, tb.Radius(6)) // C: 0.76 * 2.0
}

func TestUnknownSpeciesFallsBackToGenericRadius(t *testing.T) {
	tb := DefaultTable(0, nil)
	assert.Equal(t, fallbackRadius, tb.Radius(118))
}
