package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	assert.Equal(t, Param{Key: "domain", Value: "example.com"}, String("domain", "example.com"))
	assert.Equal(t, Param{Key: "domain"}, String("domain", ""))
}

func TestInt(t *testing.T) {
	assert.Equal(t, Param{Key: "limit", Value: "25"}, Int("limit", 25))
	assert.Equal(t, Param{Key: "limit"}, Int("limit", 0), "zero means absent")
}

func TestCompactQuery_DropsAbsentValues(t *testing.T) {
	q := compactQuery([]Param{
		String("domain", "example.com"),
		String("company", ""),
		Int("limit", 10),
		Int("offset", 0),
	})

	assert.Equal(t, "example.com", q.Get("domain"))
	assert.Equal(t, "10", q.Get("limit"))
	assert.NotContains(t, q, "company")
	assert.NotContains(t, q, "offset")
}

func TestCompactQuery_LastWriteWins(t *testing.T) {
	q := compactQuery([]Param{
		String("type", "personal"),
		String("type", "generic"),
	})

	assert.Equal(t, []string{"generic"}, q["type"])
}

func TestCompactQuery_OrderIndependentKeySet(t *testing.T) {
	forward := compactQuery([]Param{
		String("domain", "example.com"),
		String("company", ""),
		String("seniority", "senior"),
	})
	reversed := compactQuery([]Param{
		String("seniority", "senior"),
		String("company", ""),
		String("domain", "example.com"),
	})

	assert.Equal(t, forward, reversed)
}
