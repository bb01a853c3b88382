package enrichment

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/hibiken/asynq"
	"golang.org/x/time/rate"

	"github.com/horeca-prospection/backend/pkg/ai/llm"
	"github.com/horeca-prospection/backend/pkg/logger"
	"github.com/horeca-prospection/backend/pkg/prospects"
)

const systemPrompt = "Tu es un assistant spécialisé dans l'enrichissement de données B2B pour le secteur HORECA."

// ChatClient is the slice of the LLM client the processor needs
type ChatClient interface {
	Chat(ctx context.Context, req llm.ChatRequest) (*llm.ChatResponse, error)
}

// Processor handles enrichment tasks from the queue
type Processor struct {
	llm     ChatClient
	service *prospects.Service
	limiter *rate.Limiter
	log     logger.Logger
}

// NewProcessor creates a new enrichment processor. requestsPerMinute
// caps calls to the LLM API across all workers of this process.
func NewProcessor(llmClient ChatClient, service *prospects.Service, requestsPerMinute int, log logger.Logger) *Processor {
	if requestsPerMinute <= 0 {
		requestsPerMinute = 10
	}
	return &Processor{
		llm:     llmClient,
		service: service,
		limiter: rate.NewLimiter(rate.Limit(float64(requestsPerMinute)/60.0), 1),
		log:     log,
	}
}

// HandleEnrichProspect processes one enrichment task
func (p *Processor) HandleEnrichProspect(ctx context.Context, t *asynq.Task) error {
	var payload EnrichPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal enrichment payload: %v: %w", err, asynq.SkipRetry)
	}

	p.log.Info("processing AI enrichment", "prospect_id", payload.ProspectID)

	if err := p.limiter.Wait(ctx); err != nil {
		return err
	}

	resp, err := p.llm.Chat(ctx, llm.ChatRequest{
		Messages: []llm.ChatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: buildPrompt(payload)},
		},
		Temperature: 0.3,
		MaxTokens:   1000,
	})
	if err != nil {
		p.log.Error("AI enrichment failed", "prospect_id", payload.ProspectID, "error", err)
		return err
	}

	enriched, score, err := parseEnrichment(resp.Message)
	if err != nil {
		p.log.Error("AI enrichment returned unusable data", "prospect_id", payload.ProspectID, "error", err)
		return err
	}

	enriched["enrichedAt"] = time.Now().Format(time.RFC3339)
	enriched["provider"] = "openai"

	if err := p.service.MarkEnriched(ctx, payload.ProspectID, enriched, score); err != nil {
		return err
	}

	p.log.Info("AI enrichment completed", "prospect_id", payload.ProspectID, "score", score)
	return nil
}

// buildPrompt renders the French enrichment prompt for one prospect
func buildPrompt(payload EnrichPayload) string {
	var sb strings.Builder
	sb.WriteString("Tu es un assistant qui enrichit des données de prospects pour des commerciaux dans le secteur HORECA (Hôtels, Restaurants, Traiteurs, Écoles, Hôpitaux).\n\n")
	sb.WriteString("Informations du prospect:\n")
	sb.WriteString("- Nom: " + payload.Name + "\n")
	if payload.Address != "" {
		sb.WriteString("- Adresse: " + payload.Address + "\n")
	}
	if payload.Website != "" {
		sb.WriteString("- Site web: " + payload.Website + "\n")
	}
	sb.WriteString(`
Tâche:
1. Recherche des informations publiques disponibles sur cet établissement
2. Fournis les informations suivantes au format JSON:
   - managerName: nom du gérant/directeur (si trouvé)
   - openingHours: jours et heures d'ouverture
   - closingDays: jours de fermeture
   - specialties: spécialités ou type de cuisine
   - capacity: capacité estimée (couverts, chambres, etc.)
   - socialMedia: liens réseaux sociaux
   - rating: note/réputation si disponible
   - relevanceScore: score de 0 à 10 indiquant la pertinence pour la prospection

Réponds uniquement avec un objet JSON valide, sans texte supplémentaire.
`)
	return sb.String()
}

// parseEnrichment decodes the model's JSON reply and pulls out the
// relevance score. Replies wrapped in markdown fences are unwrapped.
func parseEnrichment(raw string) (map[string]interface{}, float64, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var data map[string]interface{}
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return nil, 0, fmt.Errorf("failed to parse enrichment response: %w", err)
	}

	score := 0.0
	if v, ok := data["relevanceScore"]; ok {
		switch n := v.(type) {
		case float64:
			score = n
		case string:
			fmt.Sscanf(n, "%f", &score)
		}
	}
	if score < 0 {
		score = 0
	}
	if score > 10 {
		score = 10
	}

	return data, score, nil
}
