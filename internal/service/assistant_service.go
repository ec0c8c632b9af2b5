package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"solwallet-api/config"
	"solwallet-api/internal/core/domain"
	"solwallet-api/internal/core/ports"
	"solwallet-api/pkg/apperror"

	"github.com/rs/zerolog"
)

const assistantSystemPrompt = `You are a helpful AI assistant for SolWallet, a Solana-based cryptocurrency wallet application.

Your role is to help users with:
- Understanding Solana blockchain and transactions
- Wallet security best practices
- Troubleshooting common issues
- General cryptocurrency questions
- Explaining transaction fees and processing times
- Providing guidance on sending and receiving crypto

Guidelines:
- Be helpful, informative, and security-conscious
- Always emphasize the importance of keeping private keys secure
- Provide clear, step-by-step instructions when appropriate
- If a question is outside your expertise, be honest about limitations
- Keep responses concise but comprehensive
- Use friendly, professional language

Current context: User is using SolWallet, a Solana wallet interface.`

const emptyCompletionMessage = "I'm sorry, I couldn't generate a response. Please try again."

// fallbackRule maps message keywords to a canned answer used when the
// provider is unreachable. Rules are evaluated in order; first match
// wins.
type fallbackRule struct {
	keywords []string
	response string
}

var fallbackRules = []fallbackRule{
	{
		keywords: []string{"security", "private key"},
		response: "For security, always keep your private key secure and never share it with anyone. Verify recipient addresses before sending transactions.",
	},
	{
		keywords: []string{"fee", "cost"},
		response: "Solana transactions typically have very low fees, usually under $0.001. Transaction times are typically 1-2 seconds.",
	},
}

const fallbackDefault = "I'm currently unable to connect to the AI service. For immediate help, please check our documentation or contact support."

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Chat-completions wire format, request side.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// AssistantServiceImpl implements ports.AssistantService.
type AssistantServiceImpl struct {
	convRepo   ports.ConversationRepository
	httpClient HTTPClient
	cfg        config.OpenAIConfig
	log        zerolog.Logger
}

// NewAssistantService creates a new AssistantServiceImpl.
func NewAssistantService(
	convRepo ports.ConversationRepository,
	httpClient HTTPClient,
	cfg config.OpenAIConfig,
	log zerolog.Logger,
) *AssistantServiceImpl {
	return &AssistantServiceImpl{
		convRepo:   convRepo,
		httpClient: httpClient,
		cfg:        cfg,
		log:        log,
	}
}

// Query forwards the message to the provider and returns the answer.
// Provider failure is absorbed into a canned fallback, so Query only
// errs on recording-unrelated internal problems (currently never).
func (s *AssistantServiceImpl) Query(ctx context.Context, message string, walletID *int) (string, error) {
	answer, err := s.complete(ctx, message)
	if err != nil {
		s.log.Warn().Err(err).Msg("assistant: provider call failed, using fallback")
		answer = fallbackFor(message)
	}

	if walletID != nil {
		conv := &domain.Conversation{
			WalletID: walletID,
			Message:  message,
			Response: answer,
		}
		if err := s.convRepo.Create(ctx, conv); err != nil {
			// The user already has their answer; losing the log entry
			// is not worth failing the request.
			s.log.Error().Err(err).Int("wallet_id", *walletID).Msg("assistant: failed to record conversation")
		}
	}

	return answer, nil
}

// Conversations returns the wallet's exchange log, oldest first.
func (s *AssistantServiceImpl) Conversations(ctx context.Context, walletID int) ([]domain.Conversation, error) {
	conversations, err := s.convRepo.ListByWalletID(ctx, walletID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list conversations: %w", err))
	}
	return conversations, nil
}

// complete performs a single chat-completions call. No retries: the
// fallback path covers failures and keeps the endpoint snappy.
func (s *AssistantServiceImpl) complete(ctx context.Context, message string) (string, error) {
	payload := chatCompletionRequest{
		Model: s.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: assistantSystemPrompt},
			{Role: "user", Content: message},
		},
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal completion request: %w", err)
	}

	url := strings.TrimSuffix(s.cfg.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call provider: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("provider returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var completion chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", fmt.Errorf("decode completion response: %w", err)
	}

	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("provider returned no choices")
	}
	if completion.Choices[0].Message.Content == "" {
		return emptyCompletionMessage, nil
	}
	return completion.Choices[0].Message.Content, nil
}

func fallbackFor(message string) string {
	lower := strings.ToLower(message)
	for _, rule := range fallbackRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.response
			}
		}
	}
	return fallbackDefault
}
