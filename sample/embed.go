// Package sample carries the product data fixture the page reads by default.
package sample

import "embed"

// FS holds data/products.json, served under /sample.
//
//go:embed data/products.json
var FS embed.FS

const ProductsPath = "data/products.json"
