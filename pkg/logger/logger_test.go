package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_LevelFallback(t *testing.T) {
	assert.NotNil(t, New("debug"))
	assert.NotNil(t, New("WARN"))
	assert.NotNil(t, New("not-a-level"))
}

func TestNew_WithServiceAttrs(t *testing.T) {
	log := New("info", "service", "api")
	assert.NotNil(t, log)

	// Attributes must not panic when forwarded on each call
	log.Info("startup", "port", 8080)
}
