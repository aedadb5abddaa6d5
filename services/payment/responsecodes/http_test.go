package responsecodes

import (
    "context"
    "net/http"
    "net/http/httptest"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

const referenceTable = `[
    {"code": "252", "text": "The transaction was accepted, but is being held for merchant review."},
    {"code": "1", "text": "This transaction has been approved."},
    {"code": "2", "text": "This transaction has been declined."}
]`

func TestHTTPSourceApprovalCode(t *testing.T) {
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        w.Header().Set("Content-Type", "application/json")
        w.Write([]byte(referenceTable))
    }))
    defer srv.Close()

    code, err := NewHTTPSourceURL(srv.URL).ApprovalCode(context.Background())
    require.NoError(t, err)
    assert.Equal(t, 1, code)
}

func TestHTTPSourceApprovalCodeMissing(t *testing.T) {
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        w.Write([]byte(`[{"code": "2", "text": "declined"}]`))
    }))
    defer srv.Close()

    _, err := NewHTTPSourceURL(srv.URL).ApprovalCode(context.Background())
    require.Error(t, err)
    assert.Contains(t, err.Error(), "not present")
}

func TestHTTPSourceBadStatus(t *testing.T) {
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        w.WriteHeader(http.StatusBadGateway)
    }))
    defer srv.Close()

    _, err := NewHTTPSourceURL(srv.URL).ApprovalCode(context.Background())
    require.Error(t, err)
    assert.Contains(t, err.Error(), "status 502")
}

func TestHTTPSourceMalformedBody(t *testing.T) {
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        w.Write([]byte(`{"not": "an array"}`))
    }))
    defer srv.Close()

    _, err := NewHTTPSourceURL(srv.URL).ApprovalCode(context.Background())
    require.Error(t, err)
    assert.Contains(t, err.Error(), "decoding")
}

func TestHTTPSourceUnreachable(t *testing.T) {
    _, err := NewHTTPSourceURL("http://127.0.0.1:0").ApprovalCode(context.Background())
    assert.Error(t, err)
}
