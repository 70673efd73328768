package logging

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestSetup(t *testing.T) {
	var buf bytes.Buffer
	level := Setup("debug", &buf)
	assert.Equal(t, logrus.DebugLevel, level)

	logrus.WithField("component", "test").Debug("hello")
	assert.Contains(t, buf.String(), "component=test")
	assert.Contains(t, buf.String(), "hello")
}

func TestSetup_InvalidLevel(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, DefaultLevel, Setup("chatty", &buf))
	assert.Equal(t, DefaultLevel, Setup("", &buf))
}
