// Package cache provides a TTL output cache for GET endpoints. Cached
// entries hold the full serialized response (status, content type,
// body) keyed by path and query, so repeated reads within the policy's
// lifetime skip the handler entirely. Entries expire on a fixed
// duration only; writes do not invalidate, matching the short-TTL
// output-cache policies the API is configured with.
package cache

import (
	"net/http"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

type cachedResponse struct {
	status      int
	contentType string
	body        []byte
}

// Policy is a named output-cache policy with its own TTL.
type Policy struct {
	name  string
	ttl   time.Duration
	store *gocache.Cache
}

// NewPolicy creates a policy whose entries live for ttl.
func NewPolicy(name string, ttl time.Duration) *Policy {
	return &Policy{
		name:  name,
		ttl:   ttl,
		store: gocache.New(ttl, 2*ttl),
	}
}

// Middleware serves cacheable GET responses from the policy's store.
// Only 200 responses are cached; everything else passes through
// untouched.
func (p *Policy) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			next.ServeHTTP(w, r)
			return
		}

		key := r.URL.Path
		if r.URL.RawQuery != "" {
			key += "?" + r.URL.RawQuery
		}

		if v, ok := p.store.Get(key); ok {
			resp := v.(cachedResponse)
			w.Header().Set("Content-Type", resp.contentType)
			w.Header().Set("X-Cache", "HIT")
			w.WriteHeader(resp.status)
			_, _ = w.Write(resp.body)
			return
		}

		rec := &recorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		if rec.status == http.StatusOK {
			p.store.Set(key, cachedResponse{
				status:      rec.status,
				contentType: rec.Header().Get("Content-Type"),
				body:        rec.body,
			}, p.ttl)
		}
	})
}

// recorder tees the response body so it can be stored after writing.
type recorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
	body        []byte
}

func (r *recorder) WriteHeader(status int) {
	if r.wroteHeader {
		return
	}
	r.wroteHeader = true
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *recorder) Write(b []byte) (int, error) {
	if !r.wroteHeader {
		r.WriteHeader(http.StatusOK)
	}
	r.body = append(r.body, b...)
	return r.ResponseWriter.Write(b)
}
