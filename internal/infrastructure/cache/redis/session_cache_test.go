package redis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "dropops:session:abc", key("abc"))
}

func TestNewSessionCache_BadURL(t *testing.T) {
	_, err := NewSessionCache(context.Background(), "http://localhost:6379")
	assert.ErrorContains(t, err, "parse redis URL")
}
