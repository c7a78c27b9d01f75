package handlers

import (
	"sync"

	intconfig "marquesa/internal/config"
	"marquesa/internal/repositories"
	"marquesa/internal/services"
	"marquesa/internal/upload"
)

// Shared per-process dependencies. Everything request-scoped is built
// inside each handler; only the pieces with real state live here.
var (
	depsMu     sync.RWMutex
	uploader   *upload.Uploader
	verifier   *services.VerificationService
	summarizer *services.SummaryService
)

// Configure wires the stateful handler dependencies from the environment.
// Call once at startup, before the router starts serving.
func Configure(env intconfig.Env) error {
	up, err := upload.New(env.UploadTempDir)
	if err != nil {
		return err
	}

	depsMu.Lock()
	defer depsMu.Unlock()
	uploader = up
	verifier = services.NewVerificationService(nil)
	summarizer = services.NewSummaryService(repositories.ReviewRepository{}, env.AnthropicAPIKey)
	return nil
}

func getUploader() *upload.Uploader {
	depsMu.RLock()
	defer depsMu.RUnlock()
	return uploader
}

func getVerifier() *services.VerificationService {
	depsMu.RLock()
	defer depsMu.RUnlock()
	return verifier
}

func getSummarizer() *services.SummaryService {
	depsMu.RLock()
	defer depsMu.RUnlock()
	return summarizer
}
