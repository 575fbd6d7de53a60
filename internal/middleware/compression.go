package middleware

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

// Compression gzips responses for clients that accept it and inflates
// gzip-encoded request bodies, which large cart reloads may send.
// Paths in skip are served uncompressed by prefix.
func Compression(skip ...string) gin.HandlerFunc {
	opts := []gzip.Option{gzip.WithDecompressFn(gzip.DefaultDecompressHandle)}
	if len(skip) > 0 {
		opts = append(opts, gzip.WithExcludedPaths(skip))
	}
	return gzip.Gzip(gzip.DefaultCompression, opts...)
}
