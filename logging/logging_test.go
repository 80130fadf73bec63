package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/almogdepaz/ursa/config"
)

func TestNewLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tibe.log")
	l, err := NewLogger(&config.LogConfig{Level: "warn", ToFile: true, Filename: path})
	require.NoError(t, err)
	assert.Equal(t, logrus.WarnLevel, l.Level)

	l.WithField("party", 1).Warn("[Party] rejected")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[Party] rejected")

	_, err = NewLogger(&config.LogConfig{Level: "loud"})
	assert.Error(t, err)
}

func TestGetLogger(t *testing.T) {
	assert.NotNil(t, GetLogger())
	old := GetLogger()
	defer SetLogger(old)
	l := logrus.New()
	SetLogger(l)
	assert.Same(t, l, GetLogger())
}
