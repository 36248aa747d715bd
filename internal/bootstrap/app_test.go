package bootstrap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shivamsahlot17/AI-Resume-and-Cover-letter-generator/internal/llm"
	openai "github.com/Shivamsahlot17/AI-Resume-and-Cover-letter-generator/internal/llm/openai"
	"github.com/Shivamsahlot17/AI-Resume-and-Cover-letter-generator/internal/shared/config"
)

func devConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		Env:             "dev",
		CORSAllowOrigin: []string{"*"},
		UploadDir:       t.TempDir(),
		MaxUploadBytes:  1 << 20,
		ObjectStoreType: "local",
		LocalStoreDir:   t.TempDir(),
		LLMProvider:     llm.ProviderNone,
	}
}

func TestBuildWithoutArchive(t *testing.T) {
	app, err := Build(devConfig(t))
	require.NoError(t, err)
	defer app.Close()

	assert.Nil(t, app.ArchiveService)
	assert.Nil(t, app.ArchiveHandler)
	assert.IsType(t, llm.PlaceholderClient{}, app.LLM)

	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/documents", nil))
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestBuildWithInMemoryArchive(t *testing.T) {
	cfg := devConfig(t)
	cfg.ArchiveGenerated = true

	app, err := Build(cfg)
	require.NoError(t, err)
	defer app.Close()

	require.NotNil(t, app.ArchiveService)
	assert.Nil(t, app.DB)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/documents", nil)
	req.Header.Set("X-Guest-Id", "g1")
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestBuildRequiresDatabaseOutsideDev(t *testing.T) {
	cfg := devConfig(t)
	cfg.Env = "staging"
	cfg.ArchiveGenerated = true

	_, err := Build(cfg)
	assert.Error(t, err)
}

func TestBuildRequiresJWTSecretInProduction(t *testing.T) {
	cfg := devConfig(t)
	cfg.Env = "production"

	_, err := Build(cfg)
	assert.Error(t, err)
}

func TestBuildLLMSelection(t *testing.T) {
	ctx := context.Background()

	client, err := buildLLM(ctx, config.Config{LLMProvider: llm.ProviderOpenAI})
	require.NoError(t, err)
	assert.IsType(t, llm.PlaceholderClient{}, client)

	client, err = buildLLM(ctx, config.Config{LLMProvider: llm.ProviderGemini})
	require.NoError(t, err)
	assert.IsType(t, llm.PlaceholderClient{}, client)

	client, err = buildLLM(ctx, config.Config{LLMProvider: llm.ProviderOpenAI, OpenAIAPIKey: "sk-test"})
	require.NoError(t, err)
	assert.IsType(t, &openai.Client{}, client)
}
