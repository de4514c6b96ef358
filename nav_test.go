package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampPrev(t *testing.T) {
	assert.Equal(t, 0, clampPrev(0), "previous at the first index stays put")
	assert.Equal(t, 0, clampPrev(1))
	assert.Equal(t, 4, clampPrev(5))
}

func TestClampNext(t *testing.T) {
	assert.Equal(t, 2, clampNext(2, 3), "next at the last index stays put")
	assert.Equal(t, 2, clampNext(1, 3))
	assert.Equal(t, 0, clampNext(0, 1), "single-element list never moves")
}
