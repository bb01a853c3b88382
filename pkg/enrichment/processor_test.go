package enrichment

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/horeca-prospection/backend/ent"
	"github.com/horeca-prospection/backend/ent/enttest"
	"github.com/horeca-prospection/backend/pkg/ai/llm"
	"github.com/horeca-prospection/backend/pkg/cache"
	"github.com/horeca-prospection/backend/pkg/logger"
	"github.com/horeca-prospection/backend/pkg/prospects"

	_ "github.com/mattn/go-sqlite3"
)

type fakeChatClient struct {
	reply string
	err   error
	calls int
}

func (f *fakeChatClient) Chat(_ context.Context, _ llm.ChatRequest) (*llm.ChatResponse, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &llm.ChatResponse{Message: f.reply, FinishReason: "stop"}, nil
}

func setupProcessor(t *testing.T, chat ChatClient) (*Processor, *ent.Client) {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })

	mr := miniredis.RunT(t)
	cacheClient, err := cache.NewClient("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { cacheClient.Close() })

	service := prospects.NewService(client, cacheClient)
	return NewProcessor(chat, service, 600, logger.Default()), client
}

func TestParseEnrichment(t *testing.T) {
	data, score, err := parseEnrichment(`{"managerName": "M. Dupont", "relevanceScore": 8}`)
	require.NoError(t, err)
	assert.Equal(t, "M. Dupont", data["managerName"])
	assert.Equal(t, 8.0, score)
}

func TestParseEnrichment_MarkdownFences(t *testing.T) {
	raw := "```json\n{\"specialties\": \"cuisine lyonnaise\", \"relevanceScore\": \"7.5\"}\n```"
	data, score, err := parseEnrichment(raw)
	require.NoError(t, err)
	assert.Equal(t, "cuisine lyonnaise", data["specialties"])
	assert.Equal(t, 7.5, score)
}

func TestParseEnrichment_ScoreClamped(t *testing.T) {
	_, score, err := parseEnrichment(`{"relevanceScore": 42}`)
	require.NoError(t, err)
	assert.Equal(t, 10.0, score)

	_, score, err = parseEnrichment(`{"relevanceScore": -3}`)
	require.NoError(t, err)
	assert.Equal(t, 0.0, score)

	// Missing score falls back to zero
	_, score, err = parseEnrichment(`{"managerName": "M. Dupont"}`)
	require.NoError(t, err)
	assert.Equal(t, 0.0, score)
}

func TestParseEnrichment_InvalidJSON(t *testing.T) {
	_, _, err := parseEnrichment("Désolé, je ne peux pas répondre.")
	assert.Error(t, err)
}

func TestHandleEnrichProspect(t *testing.T) {
	chat := &fakeChatClient{reply: `{"managerName": "Mme Rousseau", "relevanceScore": 9}`}
	processor, client := setupProcessor(t, chat)
	ctx := context.Background()

	u, err := client.User.Create().
		SetEmail("rep@test.fr").
		SetPasswordHash("x").
		Save(ctx)
	require.NoError(t, err)

	p, err := client.Prospect.Create().
		SetName("Le Bistrot du Marais").
		SetCreatorID(u.ID).
		Save(ctx)
	require.NoError(t, err)

	payload, err := json.Marshal(EnrichPayload{
		ProspectID: p.ID,
		Name:       p.Name,
	})
	require.NoError(t, err)

	task := asynq.NewTask(TypeEnrichProspect, payload)
	require.NoError(t, processor.HandleEnrichProspect(ctx, task))

	assert.Equal(t, 1, chat.calls)

	enriched := client.Prospect.GetX(ctx, p.ID)
	assert.Equal(t, "Mme Rousseau", enriched.AiData["managerName"])
	assert.Equal(t, "openai", enriched.AiData["provider"])
	assert.NotEmpty(t, enriched.AiData["enrichedAt"])
	assert.Equal(t, 9.0, enriched.AiScore)
	assert.NotNil(t, enriched.AiEnrichedAt)
}

func TestHandleEnrichProspect_BadPayloadSkipsRetry(t *testing.T) {
	processor, _ := setupProcessor(t, &fakeChatClient{})

	task := asynq.NewTask(TypeEnrichProspect, []byte("not json"))
	err := processor.HandleEnrichProspect(context.Background(), task)
	assert.ErrorIs(t, err, asynq.SkipRetry)
}

func TestHandleEnrichProspect_LLMError(t *testing.T) {
	chat := &fakeChatClient{err: assert.AnError}
	processor, _ := setupProcessor(t, chat)

	payload, err := json.Marshal(EnrichPayload{
		ProspectID: uuid.New(),
		Name:       "Le Bistrot",
	})
	require.NoError(t, err)

	task := asynq.NewTask(TypeEnrichProspect, payload)
	err = processor.HandleEnrichProspect(context.Background(), task)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestRetryDelay(t *testing.T) {
	assert.Equal(t, 5*time.Second, RetryDelay(0, nil, nil))
	assert.Equal(t, 10*time.Second, RetryDelay(1, nil, nil))
	assert.Equal(t, 20*time.Second, RetryDelay(2, nil, nil))
}

func TestBuildPrompt(t *testing.T) {
	prompt := buildPrompt(EnrichPayload{
		Name:    "Le Bistrot du Marais",
		Address: "12 Rue des Archives, Paris",
	})

	assert.Contains(t, prompt, "Nom: Le Bistrot du Marais")
	assert.Contains(t, prompt, "Adresse: 12 Rue des Archives, Paris")
	assert.NotContains(t, prompt, "Site web")
	assert.Contains(t, prompt, "relevanceScore")
}
