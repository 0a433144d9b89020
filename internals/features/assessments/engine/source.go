package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Question is the question source's wire shape: one multiple-choice question
// per call. Answer text comes from the same literal set as the options.
type Question struct {
	Question    string   `json:"question"`
	Answer      string   `json:"answer"`
	Options     []string `json:"options"`
	Explanation string   `json:"explanation"`
}

// QuestionSource hands out one question per call for a topic key.
type QuestionSource interface {
	FetchQuestion(ctx context.Context, topic string) (*Question, error)
}

// HTTPQuestionSource talks to the aptitude question API: GET {base}/{topic}.
type HTTPQuestionSource struct {
	BaseURL string
	Client  *http.Client
}

func NewHTTPQuestionSource(baseURL string) *HTTPQuestionSource {
	return &HTTPQuestionSource{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *HTTPQuestionSource) FetchQuestion(ctx context.Context, topic string) (*Question, error) {
	url := fmt.Sprintf("%s/%s", s.BaseURL, topic)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("question source unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("question source returned status %d", resp.StatusCode)
	}

	var q Question
	if err := json.NewDecoder(resp.Body).Decode(&q); err != nil {
		return nil, fmt.Errorf("decode question: %w", err)
	}
	return &q, nil
}
