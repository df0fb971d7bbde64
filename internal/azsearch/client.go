package azsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"

	"github.com/saravana87/azure-search-rest-ops/internal/config"
)

const (
	// apiVersion is the query-string token every call carries. The real
	// service rejects unknown versions, so this value must stay in sync
	// with the deployed API.
	apiVersion = "2023-10-01-Preview"

	// defaultKeyField is the index key requested from search results and
	// written into delete actions unless AZURE_SEARCH_KEY_FIELD says
	// otherwise.
	defaultKeyField = "id"

	// defaultTop caps a search call when the caller does not set one.
	defaultTop = 50

	redactedPlaceholder = "***REDACTED***"
)

// Client talks to the Azure AI Search REST API for a single service
// endpoint. Both operations are synchronous and issue exactly one HTTP
// call each.
type Client struct {
	cfg        *config.Config
	httpClient *http.Client
	debug      io.Writer
}

// SearchRequest describes one search call. An empty Text searches for
// everything, an empty Filter is omitted from the request, and a zero
// Top falls back to the default page size.
type SearchRequest struct {
	Text   string
	Filter string
	Top    int
}

// Response is the uninterpreted outcome of a document-batch call.
type Response struct {
	StatusCode int
	Body       []byte
}

type searchBody struct {
	Search string `json:"search"`
	Select string `json:"select"`
	Top    int    `json:"top"`
	Filter string `json:"filter,omitempty"`
}

type batchBody struct {
	Value []map[string]string `json:"value"`
}

// NewClient creates a REST client for the configured search service.
func NewClient(cfg *config.Config) *Client {
	if cfg.KeyField == "" {
		cfg.KeyField = defaultKeyField
	}

	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{},
		debug:      os.Stdout,
	}
}

// SearchIDs runs one search call requesting only the key field and
// returns the identifiers of every matching document in result order.
// Missing free text searches for everything, the filter expression is
// passed through as-is, and there is no pagination: at most req.Top
// identifiers come back. Non-200 statuses surface as a *QueryError.
func (c *Client) SearchIDs(ctx context.Context, req SearchRequest) ([]string, error) {
	if err := c.cfg.Validate(); err != nil {
		return nil, err
	}

	text := req.Text
	if text == "" {
		text = "*"
	}
	top := req.Top
	if top <= 0 {
		top = defaultTop
	}

	body := searchBody{
		Search: text,
		Select: c.cfg.KeyField,
		Top:    top,
		Filter: req.Filter,
	}

	status, respBody, err := c.postJSON(ctx, c.endpointURL("search"), body)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, &QueryError{StatusCode: status, Body: string(respBody)}
	}

	return extractIDs(respBody, c.cfg.KeyField)
}

// DeleteDocuments submits one batch of delete actions, one per id, and
// hands the response back without inspecting the status code. Callers
// decide what a 207 or an error status means to them. An empty id list
// still sends a well-formed empty batch.
func (c *Client) DeleteDocuments(ctx context.Context, ids []string) (*Response, error) {
	if err := c.cfg.Validate(); err != nil {
		return nil, err
	}

	actions := make([]map[string]string, 0, len(ids))
	for _, id := range ids {
		actions = append(actions, map[string]string{
			"@search.action": "delete",
			c.cfg.KeyField:   id,
		})
	}

	status, respBody, err := c.postJSON(ctx, c.endpointURL("index"), batchBody{Value: actions})
	if err != nil {
		return nil, err
	}

	return &Response{StatusCode: status, Body: respBody}, nil
}

// endpointURL builds the docs URL for one operation ("search" or
// "index"). The index name is used verbatim, matching what the service
// accepts in the path.
func (c *Client) endpointURL(operation string) string {
	endpoint := strings.TrimRight(c.cfg.Endpoint, "/")
	return fmt.Sprintf("%s/indexes/%s/docs/%s?api-version=%s", endpoint, c.cfg.Index, operation, apiVersion)
}

func (c *Client) postJSON(ctx context.Context, url string, payload interface{}) (int, []byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}

	headers := map[string]string{
		"Content-Type":           "application/json",
		"api-key":                c.cfg.APIKey,
		"x-ms-client-request-id": uuid.New().String(),
	}
	for name, value := range headers {
		req.Header.Set(name, value)
	}

	if c.cfg.DebugEnabled() {
		c.dumpRequest(http.MethodPost, url, headers, body)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read response: %w", err)
	}

	return resp.StatusCode, respBody, nil
}

// dumpRequest prints the outgoing call with the credential masked. The
// api-key value must never reach any output, so the masked copy is
// built before anything is written.
func (c *Client) dumpRequest(method, url string, headers map[string]string, body []byte) {
	masked := make(map[string]string, len(headers))
	for name, value := range headers {
		masked[name] = value
	}
	masked["api-key"] = redactedPlaceholder

	payload := body
	var indented bytes.Buffer
	if err := json.Indent(&indented, body, "", "  "); err == nil {
		payload = indented.Bytes()
	}

	fmt.Fprintf(c.debug, "DEBUG: %s %s\n", method, url)
	fmt.Fprintf(c.debug, "DEBUG: headers: %v\n", masked)
	fmt.Fprintf(c.debug, "DEBUG: body: %s\n", payload)
}

// extractIDs pulls one identifier out of every record in the response
// "value" array. A record carrying the key field contributes its value;
// a record without it falls back to its first field in serialized
// order, which is why records are walked with gjson instead of being
// unmarshaled into Go maps. A record with no fields contributes
// nothing.
func extractIDs(body []byte, keyField string) ([]string, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("failed to parse search response as JSON")
	}

	var ids []string
	gjson.GetBytes(body, "value").ForEach(func(_, doc gjson.Result) bool {
		if key := doc.Get(keyField); key.Exists() {
			ids = append(ids, key.String())
			return true
		}
		doc.ForEach(func(_, value gjson.Result) bool {
			ids = append(ids, value.String())
			return false
		})
		return true
	})

	return ids, nil
}
