package javasrc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskStringLiteral(t *testing.T) {
	var s lineScanner
	masked := s.mask(`String s = "class A {" + '{';`)
	assert.NotContains(t, masked, "class")
	assert.NotContains(t, masked, "{")
	assert.Contains(t, masked, "String s =")
	assert.Len(t, masked, len(`String s = "class A {" + '{';`))
	assert.False(t, s.inBlockComment)
}

func TestMaskEscapedQuote(t *testing.T) {
	var s lineScanner
	masked := s.mask(`String s = "a\"b{";`)
	assert.NotContains(t, masked, "{")
	assert.NotContains(t, masked, `b`)
}

func TestMaskLineComment(t *testing.T) {
	var s lineScanner
	masked := s.mask("int x; // class A {")
	assert.Equal(t, "int x;             ", masked)
}

func TestMaskBlockCommentState(t *testing.T) {
	var s lineScanner
	_ = s.mask("foo(); /* start")
	assert.True(t, s.inBlockComment)
	masked := s.mask("still hidden { }")
	assert.Equal(t, "", strings.TrimSpace(masked))
	assert.Len(t, masked, len("still hidden { }"))
	_ = s.mask("done */ int y = 1;")
	assert.False(t, s.inBlockComment)
}

func TestMaskBlockCommentSameLine(t *testing.T) {
	var s lineScanner
	masked := s.mask("a /* { */ b")
	assert.Equal(t, "a         b", masked)
	assert.False(t, s.inBlockComment)
}

func TestCountClampsAtZero(t *testing.T) {
	var s lineScanner
	s.count("}}}")
	assert.Equal(t, 0, s.depth)
	s.count("{{")
	s.count("}")
	assert.Equal(t, 1, s.depth)
}

func TestMaskDivisionIsNotComment(t *testing.T) {
	var s lineScanner
	masked := s.mask("int x = a / b; int y = {1};")
	assert.Equal(t, "int x = a / b; int y = {1};", masked)
}
