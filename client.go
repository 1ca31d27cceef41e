package planner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// contains the thin client for the remote planned-change service.
// The engine itself never talks to the network: callers finalize a draft
// and hand the canonical record to this client unchanged.

// Client talks to the planned-change REST API.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// NewClient returns a client for the service at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{BaseURL: strings.TrimRight(baseURL, "/"), HTTP: new(http.Client)}
}

// jget performs an HTTP GET request and unmarshals the JSON response into
// the provided data structure.
func (c *Client) jget(ctx context.Context, path string, data interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http GET %v%v: %v", c.BaseURL, path, resp.Status)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return err
	}
	return json.Unmarshal(buf.Bytes(), data)
}

// Assets returns the read-only list of portfolio assets, used to scaffold
// the allocation list of a reallocation draft.
func (c *Client) Assets(ctx context.Context) ([]Asset, error) {
	var jobj any
	if err := c.jget(ctx, "/assets", &jobj); err != nil {
		return nil, fmt.Errorf("error retrieving assets: %w", err)
	}
	path := "$.assets[*]"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("error parsing assets: %q %w", path, err)
	}
	items, ok := jval.([]any)
	if !ok {
		// because jsonpath is never clear about whether it returns a list or
		// a single answer: wrap a single object back into a list.
		items = []any{jval}
	}
	assets := make([]Asset, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("error parsing assets: unexpected item %v", item)
		}
		// ids are sometimes numbers in this weird API; normalize to text.
		assets = append(assets, Asset{ID: jstring(m["id"]), Name: jstring(m["name"])})
	}
	return assets, nil
}

// Change fetches a persisted planned change by id, for editing.
func (c *Client) Change(ctx context.Context, id string) (PlannedChange, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/planned-changes/"+id, nil)
	if err != nil {
		return PlannedChange{}, err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return PlannedChange{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return PlannedChange{}, fmt.Errorf("cannot fetch planned change %q: %v", id, resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return PlannedChange{}, err
	}
	return DecodePlannedChange(body)
}

// Save transmits the canonical record unchanged: POST for a new change,
// PUT when the record carries the id of a persisted one. It returns the
// change's id as reported by the service.
func (c *Client) Save(ctx context.Context, pc PlannedChange) (string, error) {
	body, err := json.Marshal(pc)
	if err != nil {
		return "", err
	}

	method, url := http.MethodPost, c.BaseURL+"/planned-changes"
	if pc.ID != "" {
		method, url = http.MethodPut, url+"/"+pc.ID
	}
	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("cannot save planned change: %v", resp.Status)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	var jobj any
	if len(respBody) == 0 || json.Unmarshal(respBody, &jobj) != nil {
		// Some deployments answer an empty body on update.
		return pc.ID, nil
	}
	jval, err := jsonpath.Get("$.id", jobj)
	if err != nil {
		return pc.ID, nil
	}
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	return jstring(jval), nil
}

// jstring renders a JSON scalar as text, tolerating numeric ids.
func jstring(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strings.TrimSuffix(fmt.Sprintf("%v", t), ".0")
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", t)
	}
}
