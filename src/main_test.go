package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golife/src/sim"
)

func TestNewOptionsCopiesDefaults(t *testing.T) {
	_, so := newOptions()
	require.Equal(t, sim.DefaultOptions, *so)

	so.Width = 1
	so.Height = 1
	so.MaxSteps = 7

	assert.Equal(t, sim.DefWidth, sim.DefaultOptions.Width, "flag parsing must not touch the shared defaults")
	assert.Equal(t, sim.DefHeight, sim.DefaultOptions.Height)
	assert.Equal(t, sim.DefMaxSteps, sim.DefaultOptions.MaxSteps)
}

func TestTemplatesAreWellFormed(t *testing.T) {
	for name, tmpl := range templates {
		assert.Equal(t, name, tmpl.Name)
		assert.NotEmpty(t, tmpl.Coordinates)
		for _, v := range tmpl.Coordinates {
			require.Len(t, v, 2)
		}
	}
}
