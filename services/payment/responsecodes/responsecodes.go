// Package responsecodes resolves the transaction approval code from the
// public Authorize.net response-code reference table.
package responsecodes

import (
    "context"
    "encoding/json"
    "fmt"
    "io"
    "net/http"
    "strconv"
    "time"
)

// ReferenceURL is the published reference table of transaction response
// codes.
const ReferenceURL = "https://developer.authorize.net/api/reference/dist/json/responseCodes.json"

const fetchTimeout = 10 * time.Second

// approvalEntry is the reference row marking an approved transaction.
const approvalEntry = "1"

// Source yields the numeric response code that marks an approved
// transaction.
type Source interface {
    ApprovalCode(ctx context.Context) (int, error)
}

type responseCode struct {
    Code string `json:"code"`
}

// HTTPSource fetches the reference table on every call. Classification of
// each transaction depends on this fetch, so the request carries a hard
// timeout instead of blocking a charge indefinitely on a slow reference
// host.
type HTTPSource struct {
    client *http.Client
    url    string
}

func NewHTTPSource() *HTTPSource {
    return &HTTPSource{
        client: &http.Client{Timeout: fetchTimeout},
        url:    ReferenceURL,
    }
}

// NewHTTPSourceURL exists for tests pointing at a fake reference host.
func NewHTTPSourceURL(url string) *HTTPSource {
    return &HTTPSource{
        client: &http.Client{Timeout: fetchTimeout},
        url:    url,
    }
}

func (s *HTTPSource) ApprovalCode(ctx context.Context) (int, error) {
    ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
    defer cancel()

    req, err := http.NewRequestWithContext(ctx, "GET", s.url, nil)
    if err != nil {
        return 0, fmt.Errorf("error creating reference request: %v", err)
    }

    resp, err := s.client.Do(req)
    if err != nil {
        return 0, fmt.Errorf("error fetching response codes: %v", err)
    }
    defer resp.Body.Close()

    if resp.StatusCode != http.StatusOK {
        return 0, fmt.Errorf("response code reference returned status %d", resp.StatusCode)
    }

    body, err := io.ReadAll(resp.Body)
    if err != nil {
        return 0, fmt.Errorf("error reading response codes: %v", err)
    }

    var codes []responseCode
    if err := json.Unmarshal(body, &codes); err != nil {
        return 0, fmt.Errorf("error decoding response codes: %v", err)
    }

    for _, c := range codes {
        if c.Code == approvalEntry {
            approval, err := strconv.Atoi(c.Code)
            if err != nil {
                return 0, fmt.Errorf("non-numeric approval code %q in reference table", c.Code)
            }
            return approval, nil
        }
    }

    return 0, fmt.Errorf("approval code %q not present in reference table", approvalEntry)
}
