package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_words(t *testing.T) {
	var ws words

	_, defined := ws.lookup("square")
	assert.False(t, defined, "expected undefined word")

	body := []string{"dup", "*"}
	prev, redefined := ws.define("square", body)
	assert.False(t, redefined)
	assert.Nil(t, prev)
	body[0] = "drop"

	got, defined := ws.lookup("square")
	assert.True(t, defined)
	assert.Equal(t, []string{"dup", "*"}, got, "define must copy the body")

	ws.define("cube", []string{"dup", "dup", "*", "*"})
	prev, redefined = ws.define("square", []string{"dup", "+"})
	assert.True(t, redefined)
	assert.Equal(t, []string{"dup", "*"}, prev, "expected prior body")
	assert.Equal(t, []string{"dup", "*"}, got, "earlier lookups keep their snapshot")

	got, _ = ws.lookup("square")
	assert.Equal(t, []string{"dup", "+"}, got)
	assert.Equal(t, []string{"square", "cube"}, ws.names(), "expected first-definition order")
}

func Test_constants(t *testing.T) {
	var cs constants

	_, defined := cs.lookup("HUNDRED")
	assert.False(t, defined)

	_, redefined := cs.define("HUNDRED", 100)
	assert.False(t, redefined)
	cs.define("TEN", 10)
	prev, redefined := cs.define("HUNDRED", 101)
	assert.True(t, redefined)
	assert.Equal(t, int32(100), prev)

	val, defined := cs.lookup("HUNDRED")
	assert.True(t, defined)
	assert.Equal(t, int32(101), val)
	assert.Equal(t, []string{"HUNDRED", "TEN"}, cs.names())
}
