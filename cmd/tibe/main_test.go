package main

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/almogdepaz/ursa/config"
)

func TestRun(t *testing.T) {
	l := logrus.New()
	l.SetOutput(io.Discard)
	cfg := config.DefaultConfig()
	cfg.TIBE.Parties = 4
	cfg.TIBE.Threshold = 2
	assert.NoError(t, run(cfg, logrus.NewEntry(l)))
}
