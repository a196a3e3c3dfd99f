package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Memória RAM", "memoria ram"},
		{"  No   Domínio ", "no dominio"},
		{"SITUAÇÃO", "situacao"},
		{"Nº Tombamento", "nº tombamento"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, fold(tt.input), "fold(%q)", tt.input)
	}
}

func TestCellString(t *testing.T) {
	assert.Equal(t, "", cellString(nil))
	assert.Equal(t, "DER-GTI018", cellString("  DER-GTI018 "))
	assert.Equal(t, "12018", cellString(int64(12018)))
	assert.Equal(t, "23.5", cellString(23.5))
	assert.Equal(t, "23", cellString(23.0))
}

func TestCellInt(t *testing.T) {
	tests := []struct {
		input interface{}
		want  int
		ok    bool
	}{
		{int64(7), 7, true},
		{3.0, 3, true},
		{3.5, 0, false},
		{" 12 ", 12, true},
		{"12.0", 12, true},
		{"doze", 0, false},
		{nil, 0, false},
	}

	for _, tt := range tests {
		got, ok := cellInt(tt.input)
		assert.Equal(t, tt.ok, ok, "cellInt(%v)", tt.input)
		assert.Equal(t, tt.want, got, "cellInt(%v)", tt.input)
	}
}

func TestIsNumber(t *testing.T) {
	for _, s := range []string{"2023", "23.50", "+7", "-1", "8.0"} {
		assert.True(t, isNumber(s), s)
	}
	for _, s := range []string{"Item", "1e5", "NaN", "Inf", "DER-GTI018", ""} {
		assert.False(t, isNumber(s), s)
	}
}
