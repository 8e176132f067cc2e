package flex

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBumpGeneration_Increments(t *testing.T) {
	before := currentGeneration()
	after := bumpGeneration()
	require.Equal(t, before+1, after)
	require.Equal(t, after, currentGeneration())
}

func TestExperimentalFeature_DefaultsOffAndTogglesIndependently(t *testing.T) {
	require.False(t, IsExperimentalFeatureEnabled(ExperimentalWebFlexBasis))
	require.False(t, IsExperimentalFeatureEnabled(ExperimentalRounding))

	SetExperimentalFeatureEnabled(ExperimentalWebFlexBasis, true)
	require.True(t, IsExperimentalFeatureEnabled(ExperimentalWebFlexBasis))
	require.False(t, IsExperimentalFeatureEnabled(ExperimentalRounding))

	SetExperimentalFeatureEnabled(ExperimentalWebFlexBasis, false)
	require.False(t, IsExperimentalFeatureEnabled(ExperimentalWebFlexBasis))
}

func TestSetPointScaleFactor_ClampsNegativeToZero(t *testing.T) {
	defer SetPointScaleFactor(1)

	SetPointScaleFactor(-5)
	require.Equal(t, 0.0, PointScaleFactor)

	SetPointScaleFactor(2)
	require.Equal(t, 2.0, PointScaleFactor)
}
