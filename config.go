package main

import (
	"os"
	"time"
)

// Window, timing and overlay configuration for the portfolio showcase. The
// particle physics constants live in internal/field.
const (
	defaultWidth       = 1280
	defaultHeight      = 720
	defaultTPS         = 60
	pgoRecordDuration  = 15 * time.Second
	subtitleDelay      = 1000 * time.Millisecond
	subtitleSpeed      = 100 * time.Millisecond
	githubFetchTimeout = 15 * time.Second
	headlessLogEvery   = 300
	terminalMaxLines   = 12
	overlayMargin      = 16
	lineHeight         = 16

	// maxOpenCLParticles bounds the dense n*n flag matrix of the OpenCL
	// pair search. Larger pools use the grid.
	maxOpenCLParticles = 4096
)

const (
	heroTitle    = "Guo Zenan"
	heroSubtitle = "Software Engineer · Java · Data Science · Android"
)

// Environment keys, optionally provided through a .env file.
const (
	envGitHubUser  = "PORTFOLIO_GITHUB_USER"
	envGitHubToken = "GITHUB_TOKEN"
	envGitHubAPI   = "GITHUB_API_URL"

	defaultGitHubUser = "blakezenan"
)

// envOr returns the environment value for key, or fallback when unset.
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
