// Package repository holds one module per backend resource. Every function
// issues exactly one HTTP request through the gateway, decodes the data
// envelope into a typed record (absent fields become zero values) and
// propagates errors unchanged to the caller. No caching, no retries.
package repository

import "github.com/go-playground/validator/v10"

// DefaultPageSize is the fixed page size shared by every list endpoint.
const DefaultPageSize = 10

// HomePageSize is the smaller page used by the home screen highlights.
const HomePageSize = 8

var validate = validator.New()
