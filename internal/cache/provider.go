package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"surf-booking/internal/data/entity"
	"surf-booking/pkg/utils"
)

// SlotProvider is the upstream availability source. It is rate-limited and
// slow, which is why results go through the cache.
type SlotProvider interface {
	FetchSlots(ctx context.Context, beach, date string) ([]entity.Slot, error)
}

type httpSlotProvider struct {
	baseURL string
	client  *http.Client
	log     *zap.Logger
}

func NewHTTPSlotProvider(config utils.ProviderConfig, log *zap.Logger) SlotProvider {
	return &httpSlotProvider{
		baseURL: config.BaseURL,
		client:  &http.Client{Timeout: config.FetchTimeout},
		log:     log.With(zap.String("component", "slot_provider")),
	}
}

func (p *httpSlotProvider) FetchSlots(ctx context.Context, beach, date string) ([]entity.Slot, error) {
	endpoint := fmt.Sprintf("%s/slots?beach=%s&date=%s",
		p.baseURL, url.QueryEscape(beach), url.QueryEscape(date))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build slots request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		p.log.Warn("Slot fetch failed",
			zap.Error(err),
			zap.String("beach", beach),
			zap.String("date", date),
		)
		return nil, fmt.Errorf("fetch slots for %s on %s: %w", beach, date, utils.ErrUpstreamUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		p.log.Warn("Slot fetch returned non-OK status",
			zap.Int("status", resp.StatusCode),
			zap.String("beach", beach),
			zap.String("date", date),
		)
		return nil, fmt.Errorf("fetch slots for %s on %s: status %d: %w",
			beach, date, resp.StatusCode, utils.ErrUpstreamUnavailable)
	}

	var payload struct {
		Slots []entity.Slot `json:"slots"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode slots for %s on %s: %w", beach, date, utils.ErrUpstreamUnavailable)
	}

	return payload.Slots, nil
}
