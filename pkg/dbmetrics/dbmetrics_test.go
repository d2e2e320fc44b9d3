package dbmetrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperation(t *testing.T) {
	assert.Equal(t, "select", operation("SELECT id FROM halls WHERE id = $1"))
	assert.Equal(t, "insert", operation("  INSERT INTO halls (name) VALUES ($1)"))
	assert.Equal(t, "unknown", operation(""))
}
