package api

import (
	"net/url"
	"strconv"
)

// Param is a single named query parameter. A Param with an empty Value is
// considered absent and is dropped during compaction.
type Param struct {
	Key   string
	Value string
}

// String builds a string parameter. An empty value marks the parameter absent.
func String(key, value string) Param {
	return Param{Key: key, Value: value}
}

// Int builds a numeric parameter. A zero value marks the parameter absent;
// the Hunter API never uses 0 meaningfully for its numeric options.
func Int(key string, value int) Param {
	if value == 0 {
		return Param{Key: key}
	}
	return Param{Key: key, Value: strconv.Itoa(value)}
}

// compactQuery turns an ordered parameter list into url.Values, dropping
// absent entries. Later duplicates overwrite earlier ones.
func compactQuery(params []Param) url.Values {
	q := url.Values{}
	for _, p := range params {
		if p.Value == "" {
			continue
		}
		q.Set(p.Key, p.Value)
	}
	return q
}
