package rowactions

import (
	"net/http"
	"sync"

	"github.com/louisbranch/rowactions/internal/rowactions/static"
)

var (
	assetsOnce    sync.Once
	assetsHandler http.Handler
)

// AssetsHandler serves the embedded client script and styles. The handler is
// built once per process; mounting it repeatedly is harmless.
func AssetsHandler() http.Handler {
	assetsOnce.Do(func() {
		assetsHandler = http.FileServer(http.FS(static.FS))
	})
	return assetsHandler
}
