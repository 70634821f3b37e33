package server

import (
	"net"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsforge/tsforge/config"
)

func TestFindAvailablePort(t *testing.T) {
	// Occupy a port, then ask for it
	ln, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer ln.Close()

	taken := ln.Addr().(*net.TCPAddr).Port
	port, err := findAvailablePort(taken)
	require.NoError(t, err)
	assert.NotEqual(t, taken, port)
	assert.Greater(t, port, taken)
	assert.LessOrEqual(t, port, taken+9)
}

func TestUpdateConfig(t *testing.T) {
	s := newTestServer(t)

	v := viper.New()
	config.SetDefaults(v)
	newCfg, err := config.LoadWithViper(v)
	require.NoError(t, err)
	newCfg.Generator.Strict = true

	s.UpdateConfig(newCfg)

	assert.True(t, s.conf().Generator.Strict)
	assert.True(t, s.dslConfig(nil).StrictSchema)
}
