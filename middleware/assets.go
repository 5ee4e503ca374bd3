package middleware

import (
	"crypto/md5"
	"encoding/hex"
	"io"
	"log"
	"os"
	"sync"
)

var (
	cssVersion        string
	appJSVersion      string
	faviconVersion    string
	assetVersionsOnce sync.Once
)

// InitAssetVersions computes file hashes for cache busting at startup
func InitAssetVersions() {
	assetVersionsOnce.Do(func() {
		cssVersion = computeFileHash("static/css/style.css")
		if cssVersion == "" {
			cssVersion = "1"
		}
		log.Printf("[INFO] CSS version initialized: %s", cssVersion)

		appJSVersion = computeFileHash("static/js/app.js")
		if appJSVersion == "" {
			appJSVersion = "1"
		}
		log.Printf("[INFO] App JS version initialized: %s", appJSVersion)

		faviconVersion = computeFileHash("static/images/favicon.png")
		if faviconVersion == "" {
			faviconVersion = "1"
		}
		log.Printf("[INFO] Favicon version initialized: %s", faviconVersion)
	})
}

// computeFileHash returns a short md5 of the file contents, or "" on error.
func computeFileHash(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	h := md5.New()
	if _, err := io.Copy(h, f); err != nil {
		return ""
	}
	return hex.EncodeToString(h.Sum(nil))[:8]
}

// CSSVersion returns the cache-busting version for the main stylesheet.
func CSSVersion() string { return cssVersion }

// AppJSVersion returns the cache-busting version for the app script.
func AppJSVersion() string { return appJSVersion }

// FaviconVersion returns the cache-busting version for the favicon.
func FaviconVersion() string { return faviconVersion }
