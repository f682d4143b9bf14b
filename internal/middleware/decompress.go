package middleware

import (
	"compress/gzip"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sebasr/greeter-service/internal/handlers"
)

// DecompressGzip replaces a gzip-encoded request body with a decompressing
// reader. A body without a valid gzip header is rejected with a JSON 400.
// It plugs into gin-contrib/gzip through gzip.WithDecompressFn.
func DecompressGzip(c *gin.Context) {
	if c.Request.Body == nil || c.Request.Body == http.NoBody {
		return
	}

	r, err := gzip.NewReader(c.Request.Body)
	if err != nil {
		_ = c.Error(err)
		c.PureJSON(http.StatusBadRequest, handlers.ErrorResponse{Error: handlers.MsgBadEncoding})
		c.Abort()
		return
	}

	c.Request.Header.Del("Content-Encoding")
	c.Request.Header.Del("Content-Length")
	c.Request.ContentLength = -1
	c.Request.Body = r
}
