// Package api implements the low-level HTTP transport for the Hunter API:
// query-string serialization, the fixed User-Agent, and normalization of
// raw HTTP outcomes into results or typed errors.
package api
