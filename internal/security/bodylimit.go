package security

import "net/http"

// BodyLimit caps request payload size ahead of JSON decoding.
type BodyLimit struct {
	Max int64
}

// Middleware rejects requests that declare a body over the limit and wraps the
// rest in http.MaxBytesReader, so downstream decoders never read past Max.
// Handlers surface the cap by mapping *http.MaxBytesError to HTTP 413.
func (b BodyLimit) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if b.Max <= 0 || r.Body == nil {
			next.ServeHTTP(w, r)
			return
		}
		if r.ContentLength > b.Max {
			http.Error(w, "request entity too large", http.StatusRequestEntityTooLarge)
			return
		}
		r.Body = http.MaxBytesReader(w, r.Body, b.Max)
		next.ServeHTTP(w, r)
	})
}
