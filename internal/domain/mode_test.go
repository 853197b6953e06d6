package domain_test

import (
	"errors"
	"testing"

	"github.com/neuron-cli/neuron/internal/domain"
)

func TestGenerateModeIsTighterThanExplain(t *testing.T) {
	gen := domain.ModeGenerateCommand
	exp := domain.ModeExplain

	if gen.Temperature() >= exp.Temperature() {
		t.Errorf("generate temperature %v should be below explain %v", gen.Temperature(), exp.Temperature())
	}
	if gen.MaxTokens() >= exp.MaxTokens() {
		t.Errorf("generate budget %d should be below explain %d", gen.MaxTokens(), exp.MaxTokens())
	}
	if gen.MaxTokens() > 150 || exp.MaxTokens() > 500 {
		t.Errorf("budgets exceed limits: %d / %d", gen.MaxTokens(), exp.MaxTokens())
	}
	for _, m := range []domain.OperatingMode{gen, exp} {
		if m.Temperature() < 0 || m.Temperature() > 1 {
			t.Errorf("%s temperature %v outside [0,1]", m, m.Temperature())
		}
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    domain.OperatingMode
		wantErr bool
	}{
		{in: "run", want: domain.ModeGenerateCommand},
		{in: "TELL", want: domain.ModeExplain},
		{in: "walk", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := domain.ParseMode(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestNewInferenceRequestAppliesModePolicy(t *testing.T) {
	prompt := domain.Prompt{SystemMessage: "sys", UserMessage: "user"}
	req := domain.NewInferenceRequest("openai/gpt-4", prompt, domain.ModeExplain)

	if req.MaxOutputTokens != domain.ExplainMaxTokens || req.Temperature != domain.ExplainTemperature {
		t.Fatalf("unexpected policy: %+v", req)
	}
	if req.Model != "openai/gpt-4" || req.Prompt != prompt {
		t.Fatalf("request lost its inputs: %+v", req)
	}
}

func TestPromptMessagesOmitsEmptySystem(t *testing.T) {
	msgs := domain.Prompt{UserMessage: "hi"}.Messages()
	if len(msgs) != 1 || msgs[0].Role != domain.RoleUser {
		t.Fatalf("expected single user message, got %+v", msgs)
	}

	msgs = domain.Prompt{SystemMessage: "sys", UserMessage: "hi"}.Messages()
	if len(msgs) != 2 || msgs[0].Role != domain.RoleSystem || msgs[1].Content != "hi" {
		t.Fatalf("unexpected messages: %+v", msgs)
	}
}

func TestInferenceErrorMatchesByKind(t *testing.T) {
	err := error(&domain.InferenceError{Kind: domain.KindHTTP, StatusCode: 500, Body: "boom"})

	if !errors.Is(err, domain.ErrHTTP) {
		t.Error("expected errors.Is to match ErrHTTP")
	}
	if errors.Is(err, domain.ErrAuth) {
		t.Error("HTTP error must not match ErrAuth")
	}
	var ie *domain.InferenceError
	if !errors.As(err, &ie) || ie.StatusCode != 500 {
		t.Fatalf("errors.As failed: %+v", ie)
	}
	if ie.Hint() == "" {
		t.Error("expected a hint")
	}
}
