package middleware

import (
	"compress/gzip"
	"io"
	"mime"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// compressibleTypes типы ответов веб-интерфейса, которые имеет смысл сжимать
var compressibleTypes = map[string]struct{}{
	"text/html":        {},
	"application/json": {},
}

// gzipBody распаковывает тело запроса
type gzipBody struct {
	body io.ReadCloser
	zr   *gzip.Reader
}

func newGzipBody(body io.ReadCloser) (*gzipBody, error) {
	zr, err := gzip.NewReader(body)
	if err != nil {
		return nil, err
	}
	return &gzipBody{body: body, zr: zr}, nil
}

func (b *gzipBody) Read(p []byte) (int, error) {
	return b.zr.Read(p)
}

func (b *gzipBody) Close() error {
	if err := b.zr.Close(); err != nil {
		return err
	}
	return b.body.Close()
}

// shouldCompress проверяет Content-Type без учета параметров и регистра
func shouldCompress(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	_, ok := compressibleTypes[mediaType]
	return ok
}

// gzipWriter решает, сжимать ли ответ, в момент записи заголовков
type gzipWriter struct {
	http.ResponseWriter
	zw          *gzip.Writer
	wroteHeader bool
	compressing bool
}

func (w *gzipWriter) WriteHeader(status int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true

	if status < http.StatusMultipleChoices && shouldCompress(w.Header().Get("Content-Type")) {
		w.Header().Set("Content-Encoding", "gzip")
		w.Header().Del("Content-Length")
		w.zw = gzip.NewWriter(w.ResponseWriter)
		w.compressing = true
	}

	w.ResponseWriter.WriteHeader(status)
}

func (w *gzipWriter) Write(data []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	if w.compressing {
		return w.zw.Write(data)
	}
	return w.ResponseWriter.Write(data)
}

func (w *gzipWriter) Close() error {
	if !w.compressing {
		return nil
	}
	return w.zw.Close()
}

// Gzip распаковывает тела запросов с Content-Encoding: gzip и сжимает
// HTML и JSON ответы для клиентов, которые принимают gzip
func Gzip(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") {
				body, err := newGzipBody(r.Body)
				if err != nil {
					logger.Error("Failed to decompress request body",
						zap.Error(err),
						zap.String("uri", r.RequestURI),
						zap.String("remote_addr", r.RemoteAddr),
					)
					http.Error(w, "Failed to decompress request body", http.StatusBadRequest)
					return
				}
				defer func() {
					if err := body.Close(); err != nil {
						logger.Warn("Failed to close gzip request body", zap.Error(err))
					}
				}()
				r.Body = body
				r.Header.Del("Content-Encoding")
			}

			w.Header().Add("Vary", "Accept-Encoding")
			if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
				next.ServeHTTP(w, r)
				return
			}

			gw := &gzipWriter{ResponseWriter: w}
			defer func() {
				if err := gw.Close(); err != nil {
					logger.Error("Failed to close gzip writer",
						zap.Error(err),
						zap.String("uri", r.RequestURI),
					)
				}
			}()

			next.ServeHTTP(gw, r)
		})
	}
}
