package middleware

import (
	"net/http"
	"sync"
)

// Serialize runs one request at a time under mu. The employee catalog is not
// safe for concurrent use; background jobs touching it take the same mutex.
func Serialize(mu *sync.Mutex) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			mu.Lock()
			defer mu.Unlock()
			next.ServeHTTP(w, r)
		})
	}
}
