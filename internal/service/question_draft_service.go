package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/lshigami/quizmaster/config"
	"github.com/lshigami/quizmaster/internal/apperr"
	"github.com/lshigami/quizmaster/internal/dto"
	"github.com/lshigami/quizmaster/internal/model"
	"github.com/lshigami/quizmaster/internal/repository"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

const (
	geminiModel   = "gemini-1.5-flash"
	maxDraftCount = 10
)

// QuestionGenerator returns raw model text for a prompt.
type QuestionGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type geminiGenerator struct {
	model *genai.GenerativeModel
}

// NewGeminiGenerator returns nil when GEMINI_API_KEY is unset; drafting then
// reports the service as unavailable.
func NewGeminiGenerator(lc fx.Lifecycle, cfg *config.Config) (QuestionGenerator, error) {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. Question drafting will be unavailable.")
		return nil, nil
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})
	return &geminiGenerator{model: client.GenerativeModel(geminiModel)}, nil
}

func (g *geminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no content")
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			b.WriteString(string(txt))
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("gemini returned no text content")
	}
	return b.String(), nil
}

type QuestionDraftService interface {
	DraftQuestions(ctx context.Context, quizID uint, topic string, count int) (*dto.DraftQuestionsResponse, error)
}

type questionDraftService struct {
	generator QuestionGenerator
	quizRepo  repository.QuizRepository
}

func NewQuestionDraftService(generator QuestionGenerator, quizRepo repository.QuizRepository) QuestionDraftService {
	return &questionDraftService{generator: generator, quizRepo: quizRepo}
}

// DraftQuestions asks the model for multiple-choice questions and keeps the
// ones that parse into a valid question. Nothing is persisted.
func (s *questionDraftService) DraftQuestions(ctx context.Context, quizID uint, topic string, count int) (*dto.DraftQuestionsResponse, error) {
	if count < 1 || count > maxDraftCount {
		return nil, apperr.Validation("count must be between 1 and %d", maxDraftCount)
	}
	quiz, err := s.quizRepo.FindByID(ctx, quizID)
	if err != nil {
		return nil, err
	}
	if s.generator == nil {
		return nil, apperr.New(apperr.KindUnavailable, "question drafting is not configured")
	}

	topic = strings.TrimSpace(topic)
	if topic == "" {
		topic = quiz.Name
	}
	raw, err := s.generator.Generate(ctx, draftPrompt(topic, count))
	if err != nil {
		log.Error().Err(err).Uint("quizID", quizID).Msg("Gemini API error during question drafting")
		return nil, apperr.Wrap(apperr.KindUnavailable, err, "question drafting failed")
	}

	drafts := parseDrafts(raw)
	if len(drafts) > count {
		drafts = drafts[:count]
	}
	if len(drafts) == 0 {
		log.Warn().Str("rawResponse", raw).Msg("No usable questions in Gemini response")
	}
	return &dto.DraftQuestionsResponse{QuizID: quizID, Drafts: drafts}, nil
}

func draftPrompt(topic string, count int) string {
	var b strings.Builder
	b.WriteString("You are an experienced teacher writing multiple-choice quiz questions.\n")
	fmt.Fprintf(&b, "Write %d questions about: %s\n", count, topic)
	b.WriteString("Each question has exactly four distinct options and exactly one correct answer.\n\n")
	b.WriteString("Format every question strictly as:\n")
	b.WriteString("Question: [question text]\nA: [option]\nB: [option]\nC: [option]\nD: [option]\nAnswer: [A, B, C or D]\n\n")
	b.WriteString("Separate questions with a blank line and add nothing else.\n")
	return b.String()
}

// parseDrafts reads the line format requested by draftPrompt. Blocks that
// are incomplete or fail question validation are dropped.
func parseDrafts(raw string) []dto.QuestionDraft {
	var (
		drafts  []dto.QuestionDraft
		current *model.Question
		answer  string
	)
	flush := func() {
		if current == nil {
			return
		}
		if correct, ok := resolveAnswer(current, answer); ok {
			current.CorrectOption = correct
			if validateQuestion(current) == nil {
				drafts = append(drafts, dto.QuestionDraft{
					QuestionStatement: current.QuestionStatement,
					Option1:           current.Option1,
					Option2:           current.Option2,
					Option3:           current.Option3,
					Option4:           current.Option4,
					CorrectOption:     current.CorrectOption,
				})
			}
		}
		current, answer = nil, ""
	}

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(strings.Trim(strings.TrimSpace(line), "*"))
		key, value, ok := splitDraftLine(line)
		if !ok {
			continue
		}
		switch key {
		case "question":
			flush()
			current = &model.Question{QuestionStatement: value}
		case "a", "b", "c", "d":
			if current == nil {
				continue
			}
			switch key {
			case "a":
				current.Option1 = value
			case "b":
				current.Option2 = value
			case "c":
				current.Option3 = value
			case "d":
				current.Option4 = value
			}
		case "answer":
			if current != nil {
				answer = value
			}
		}
	}
	flush()
	return drafts
}

func splitDraftLine(line string) (key, value string, ok bool) {
	idx := strings.IndexAny(line, ":)")
	if idx <= 0 {
		return "", "", false
	}
	key = strings.ToLower(strings.TrimSpace(strings.Trim(line[:idx], "*")))
	switch key {
	case "question", "a", "b", "c", "d", "answer":
	default:
		return "", "", false
	}
	return key, strings.TrimSpace(strings.Trim(line[idx+1:], "* ")), true
}

// resolveAnswer accepts either an option letter or the option text.
func resolveAnswer(q *model.Question, answer string) (string, bool) {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return "", false
	}
	letter := strings.ToUpper(strings.TrimRight(answer, ".)"))
	switch letter {
	case "A":
		return q.Option1, true
	case "B":
		return q.Option2, true
	case "C":
		return q.Option3, true
	case "D":
		return q.Option4, true
	}
	for _, opt := range q.Options() {
		if opt == answer {
			return opt, true
		}
	}
	return "", false
}
