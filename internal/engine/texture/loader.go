package texture

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/voyagersim/globeflight/internal/logger"
)

// Fetcher retrieves and decodes one surface candidate. Tests swap in a
// mock; production uses DefaultFetcher.
type Fetcher func(src string) (image.Image, error)

// Result is a successfully loaded replacement surface.
type Result struct {
	Src    string
	Pixels *image.RGBA
}

// FetchFirst walks the candidate list in order and returns the first
// surface that loads. Failures are logged and skipped; exhausting the
// list returns ok=false, which callers treat as "keep the current
// surface", never as an error.
func FetchFirst(candidates []string, fetch Fetcher) (Result, bool) {
	for _, src := range candidates {
		img, err := fetch(src)
		if err != nil {
			logger.Debug("surface candidate failed",
				zap.String("src", src),
				zap.Error(err),
			)
			continue
		}
		return Result{Src: src, Pixels: ToRGBA(img)}, true
	}
	return Result{}, false
}

// StartLoader fetches the candidates on a separate goroutine. At most
// one Result is sent before the channel closes; a close without a send
// means every candidate failed. Loading never blocks the simulation:
// the caller drains the channel at frame boundaries.
func StartLoader(candidates []string, fetch Fetcher) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		defer close(ch)
		if res, ok := FetchFirst(candidates, fetch); ok {
			logger.Info("surface loaded", zap.String("src", res.Src))
			ch <- res
		} else if len(candidates) > 0 {
			logger.Info("all surface candidates failed, keeping procedural surface")
		}
	}()
	return ch
}

// DefaultFetcher loads a candidate from an http(s) URL or a local file
// and decodes it as PNG or JPEG.
func DefaultFetcher(src string) (image.Image, error) {
	data, err := readSource(src)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", src, err)
	}
	return img, nil
}

func readSource(src string) ([]byte, error) {
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		client := &http.Client{Timeout: 15 * time.Second}
		resp, err := client.Get(src)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("fetching %s: status %s", src, resp.Status)
		}
		return io.ReadAll(resp.Body)
	}
	return os.ReadFile(src)
}
