package tableapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/grh-water/water-console/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testClient(baseURL string) *Client {
	cfg := &config.Config{}
	cfg.API.BaseURL = baseURL
	cfg.API.Token = "test-token"
	cfg.Tables.BaseID = "base1"
	return NewClient(cfg, zap.NewNop())
}

func TestDoSendsBothAuthHeaders(t *testing.T) {
	var got *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(context.Background())
		w.Write([]byte(`{"records":[]}`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Do(context.Background(), "list project", http.MethodGet, "tbl1", nil, nil)
	require.NoError(t, err)

	require.NotNil(t, got)
	assert.Equal(t, "test-token", got.Header.Get("xc-token"))
	assert.Equal(t, "Bearer test-token", got.Header.Get("Authorization"))
	assert.Equal(t, "application/json", got.Header.Get("Content-Type"))
	assert.Equal(t, "/api/v3/data/base1/tbl1/records", got.URL.Path)
}

func TestDoAppendsQuery(t *testing.T) {
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"records":[]}`))
	}))
	defer srv.Close()

	query := url.Values{"pageSize": []string{"9999"}}
	_, err := testClient(srv.URL).Do(context.Background(), "list meter", http.MethodGet, "tbl1", query, nil)
	require.NoError(t, err)
	assert.Equal(t, "9999", gotQuery.Get("pageSize"))
}

func TestDoBadRequestUsesBackendMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"msg":"Duplicate serial number"}`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Do(context.Background(), "create project", http.MethodPost, "tbl1", nil, map[string]interface{}{})
	var badReq *BadRequestError
	require.ErrorAs(t, err, &badReq)
	assert.Equal(t, "Duplicate serial number", badReq.Msg)
}

func TestDoBadRequestWithoutBodyFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Do(context.Background(), "create project", http.MethodPost, "tbl1", nil, map[string]interface{}{})
	var badReq *BadRequestError
	require.ErrorAs(t, err, &badReq)
	assert.Equal(t, "invalid data provided", badReq.Msg)
}

func TestDoUnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Do(context.Background(), "list project", http.MethodGet, "tbl1", nil, nil)
	var failed *RequestFailedError
	require.ErrorAs(t, err, &failed)
	assert.Equal(t, http.StatusInternalServerError, failed.StatusCode)
	assert.Equal(t, "list project", failed.Op)
}

func TestDoDecodesEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"records":[{"id":7,"fields":{"Device Name":"Pump A"}}],"next":"cursor1"}`))
	}))
	defer srv.Close()

	resp, err := testClient(srv.URL).Do(context.Background(), "list project", http.MethodGet, "tbl1", nil, nil)
	require.NoError(t, err)
	require.Len(t, resp.Records, 1)
	assert.Equal(t, RecordID("7"), resp.Records[0].ID)
	assert.Equal(t, "Pump A", resp.Records[0].Fields.Str("Device Name"))
	assert.Equal(t, "cursor1", resp.Next)
}

func TestDoEmptyBodyIsValid(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	resp, err := testClient(srv.URL).Do(context.Background(), "delete project", http.MethodDelete, "tbl1", nil, map[string]interface{}{"id": "7"})
	require.NoError(t, err)
	assert.Empty(t, resp.Records)
}

func TestDoConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := testClient(srv.URL).Do(context.Background(), "list project", http.MethodGet, "tbl1", nil, nil)
	require.Error(t, err)

	var badReq *BadRequestError
	assert.False(t, errors.As(err, &badReq))
}
