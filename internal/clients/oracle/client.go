package oracle

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Client talks to the content-generation service. Responses are opaque
// JSON matching a requested schema; every numeric field passes through the
// sanitizers in this package before reaching derivation or reward paths.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
	log     zerolog.Logger
}

// NewClient creates a new oracle client
func NewClient(baseURL, apiKey string, log zerolog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: log.With().Str("client", "oracle").Logger(),
	}
}

// GenerateMissionBrief requests a mission for the given player context
func (c *Client) GenerateMissionBrief(playerLevel int, theme string) (*MissionBrief, error) {
	var brief MissionBrief
	err := c.generate("mission_brief", map[string]interface{}{
		"player_level": playerLevel,
		"theme":        theme,
	}, &brief)
	if err != nil {
		return nil, err
	}

	sanitized := SanitizeMissionBrief(brief)
	return &sanitized, nil
}

// GenerateNPC requests an NPC profile
func (c *Client) GenerateNPC(role string) (*NPCProfile, error) {
	var npc NPCProfile
	err := c.generate("npc_profile", map[string]interface{}{
		"role": role,
	}, &npc)
	if err != nil {
		return nil, err
	}

	sanitized := SanitizeNPC(npc)
	return &sanitized, nil
}

// GenerateInvestmentCommentary requests commentary for a market symbol
func (c *Client) GenerateInvestmentCommentary(symbol string, trend string) (*InvestmentCommentary, error) {
	var commentary InvestmentCommentary
	err := c.generate("investment_commentary", map[string]interface{}{
		"symbol": symbol,
		"trend":  trend,
	}, &commentary)
	if err != nil {
		return nil, err
	}

	sanitized := SanitizeCommentary(commentary)
	return &sanitized, nil
}

// generate posts a schema-named generation request and decodes into out
func (c *Client) generate(schema string, params map[string]interface{}, out interface{}) error {
	payload, err := json.Marshal(map[string]interface{}{
		"schema": schema,
		"params": params,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal oracle request: %w", err)
	}

	url := fmt.Sprintf("%s/v1/generate", c.baseURL)
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build oracle request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("oracle request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("oracle returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode oracle response: %w", err)
	}

	return nil
}
