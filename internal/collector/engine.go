package collector

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"StockronAnalyzer/internal/model"
)

// EngineFetcher implements Fetcher against a Stockron engine REST API, for
// deployments that front Yahoo with their own data service.
type EngineFetcher struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewEngineFetcher creates a new fetcher with optional proxy support.
func NewEngineFetcher(baseURL, apiKey, proxyURL string) *EngineFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &EngineFetcher{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *EngineFetcher) Name() string { return "engine" }

// engineBar is the expected JSON shape from the engine bars endpoint.
type engineBar struct {
	Timestamp int64   `json:"timestamp"`
	Open      float64 `json:"open"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Close     float64 `json:"close"`
	Volume    float64 `json:"volume"`
}

func (f *EngineFetcher) FetchDailyBars(symbol string, timeframe model.Timeframe) ([]model.OHLCV, error) {
	endpoint := fmt.Sprintf("%s/api/v1/bars/daily?symbol=%s&range=%s",
		f.BaseURL, url.QueryEscape(symbol), timeframe)
	body, err := f.get(endpoint)
	if err != nil {
		return nil, err
	}
	var engineBars []engineBar
	if err := json.Unmarshal(body, &engineBars); err != nil {
		return nil, fmt.Errorf("decode bars: %w", err)
	}
	bars := make([]model.OHLCV, len(engineBars))
	for i, eb := range engineBars {
		bars[i] = model.OHLCV{
			Time:   time.Unix(eb.Timestamp, 0),
			Open:   eb.Open,
			High:   eb.High,
			Low:    eb.Low,
			Close:  eb.Close,
			Volume: eb.Volume,
		}
	}
	// Ensure chronological order
	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
	return bars, nil
}

func (f *EngineFetcher) FetchFundamentals(symbol string) (*model.FundamentalsBag, error) {
	endpoint := fmt.Sprintf("%s/api/v1/fundamentals?symbol=%s", f.BaseURL, url.QueryEscape(symbol))
	body, err := f.get(endpoint)
	if err != nil {
		return nil, err
	}
	var result struct {
		CompanyName string         `json:"company_name"`
		Sector      string         `json:"sector"`
		Fields      map[string]any `json:"fields"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decode fundamentals: %w", err)
	}
	return &model.FundamentalsBag{
		CompanyName: result.CompanyName,
		Sector:      result.Sector,
		Fields:      result.Fields,
	}, nil
}

func (f *EngineFetcher) get(endpoint string) ([]byte, error) {
	req, err := http.NewRequest("GET", endpoint, nil)
	if err != nil {
		return nil, err
	}
	if f.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+f.APIKey)
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("engine fetch: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("engine read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("engine: status %d, body: %s", resp.StatusCode, string(body))
	}
	return body, nil
}
