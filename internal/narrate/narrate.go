// Package narrate adapts the narrator client into the analysis pipeline's
// optional narrative embellishment hook.
package narrate

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/kwanza-labs/insights-cli/internal/model"
	"github.com/kwanza-labs/insights-cli/pkg/narrator"
)

const systemPrompt = `És um analista do setor petrolífero angolano. Reescreve os textos ` +
	`do relatório em português fluente e profissional. Não alteres, removas nem ` +
	`acrescentes nenhum número: todos os valores do relatório provêm de dados ` +
	`verificados. Responde apenas com o JSON no mesmo formato recebido.`

// Service rewrites rule-generated narrative text through an LLM. The
// numbers in the narrative are never the LLM's to change; a response that
// fails to parse is discarded and the caller keeps the rule-based text.
type Service struct {
	client    narrator.Client
	model     string
	maxTokens int64
}

func NewService(client narrator.Client, model string, maxTokens int64) *Service {
	return &Service{client: client, model: model, maxTokens: maxTokens}
}

// Embellish sends the narrative and its backing facts to the model and
// returns the rewritten narrative.
func (s *Service) Embellish(ctx context.Context, n model.Narrative, facts model.FactSet) (model.Narrative, error) {
	payload, err := json.Marshal(n)
	if err != nil {
		return model.Narrative{}, eris.Wrap(err, "narrate: marshal narrative")
	}

	var factLines []string
	for _, f := range facts.Sorted() {
		factLines = append(factLines, fmt.Sprintf("- %s: %s", f.Label, model.FormatValue(f.Value)))
	}

	prompt := fmt.Sprintf("Dados verificados:\n%s\n\nRelatório a reescrever:\n%s",
		strings.Join(factLines, "\n"), payload)

	completion, err := s.client.Complete(ctx, narrator.CompletionRequest{
		Model:     s.model,
		MaxTokens: s.maxTokens,
		System:    systemPrompt,
		Prompt:    prompt,
	})
	if err != nil {
		return model.Narrative{}, err
	}

	var rewritten model.Narrative
	if err := json.Unmarshal([]byte(extractJSON(completion.Text)), &rewritten); err != nil {
		return model.Narrative{}, eris.Wrap(err, "narrate: parse model response")
	}
	if rewritten.Title == "" || rewritten.ExecutiveSummary == "" {
		return model.Narrative{}, eris.New("narrate: model response missing required fields")
	}

	zap.L().Debug("narrate: narrative rewritten",
		zap.Int64("input_tokens", completion.InputTokens),
		zap.Int64("output_tokens", completion.OutputTokens),
	)
	return rewritten, nil
}

// extractJSON trims any prose the model wraps around the JSON object.
func extractJSON(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return text
	}
	return text[start : end+1]
}
