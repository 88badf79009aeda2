package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"ledgersynth/model"

	"go.uber.org/zap"
)

// Completer sends a prompt to a text generation backend and returns its reply.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

const identityPrompt = `Generate one realistic, fictional Indian bank customer for a test dataset.
Respond with only a JSON object of the form:
{"name": "...", "email": "...", "phone": "+91 ...", "address": {"street": "...", "city": "...", "state": "...", "pincode": "..."}}`

const descriptionPrompt = `Write a short, realistic bank statement description (at most 6 words) for a %s transaction in the category %q.
Respond with only the description text.`

var errNoJSONObject = errors.New("response contains no JSON object")

// AIProvider asks a generative backend for content and falls back to the
// table-driven provider whenever the backend fails, times out or replies with
// something unusable.
type AIProvider struct {
	backend  Completer
	fallback *Fallback
	timeout  time.Duration
	log      *zap.Logger
}

func NewAIProvider(backend Completer, timeout time.Duration, log *zap.Logger) (*AIProvider, error) {
	if backend == nil {
		return nil, errors.New("content backend is required")
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &AIProvider{
		backend:  backend,
		fallback: NewFallback(),
		timeout:  timeout,
		log:      log,
	}, nil
}

func (p *AIProvider) Name() string { return "ai" }

func (p *AIProvider) Paced() bool { return true }

func (p *AIProvider) Identity(ctx context.Context) model.Identity {
	id, err := p.identity(ctx)
	if err != nil {
		p.log.Warn("identity generation failed, using fallback", zap.Error(err))
		return p.fallback.Identity(ctx)
	}
	return id
}

func (p *AIProvider) identity(ctx context.Context) (model.Identity, error) {
	reply, err := p.complete(ctx, identityPrompt)
	if err != nil {
		return model.Identity{}, err
	}
	raw, err := firstJSONObject(reply)
	if err != nil {
		return model.Identity{}, err
	}

	var id model.Identity
	if err := json.Unmarshal(raw, &id); err != nil {
		return model.Identity{}, fmt.Errorf("decode identity: %w", err)
	}
	if id.Name == "" || id.Email == "" {
		return model.Identity{}, errors.New("identity is missing name or email")
	}
	if id.Address.Country == "" {
		id.Address.Country = "India"
	}
	return id, nil
}

func (p *AIProvider) Description(ctx context.Context, category string, typ model.TransactionType) string {
	reply, err := p.complete(ctx, fmt.Sprintf(descriptionPrompt, typ, category))
	if err == nil {
		if d := cleanDescription(reply); d != "" {
			return d
		}
		err = errors.New("empty description")
	}
	p.log.Warn("description generation failed, using fallback",
		zap.String("category", category), zap.Error(err))
	return p.fallback.Description(ctx, category, typ)
}

func (p *AIProvider) complete(ctx context.Context, prompt string) (string, error) {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}
	return p.backend.Complete(ctx, prompt)
}

// firstJSONObject returns the first well-formed JSON object embedded in s.
func firstJSONObject(s string) (json.RawMessage, error) {
	for i := strings.IndexByte(s, '{'); i >= 0; {
		var raw json.RawMessage
		if err := json.NewDecoder(strings.NewReader(s[i:])).Decode(&raw); err == nil {
			return raw, nil
		}
		next := strings.IndexByte(s[i+1:], '{')
		if next < 0 {
			break
		}
		i += next + 1
	}
	return nil, errNoJSONObject
}

// cleanDescription keeps the first line of the reply without surrounding
// whitespace or quotes.
func cleanDescription(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	s = strings.Trim(s, "\"'` ")
	return strings.TrimSpace(s)
}
