package taxprovider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/general_ledger/internal/apperrors"
	"github.com/SscSPs/general_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRequest() domain.TaxDocumentRequest {
	return domain.TaxDocumentRequest{
		TenantID:      "tenant-1",
		DocumentType:  33,
		IssueDate:     time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		CustomerTaxID: "76.123.456-7",
		CustomerName:  "Acme SpA",
		NetAmount:     decimal.NewFromInt(100000),
		TaxAmount:     decimal.NewFromInt(19000),
		TotalAmount:   decimal.NewFromInt(119000),
		Items: []domain.TaxDocumentItem{
			{Name: "Consultoría", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(100000)},
		},
	}
}

func TestNewClient_RequiresURL(t *testing.T) {
	_, err := NewClient(ClientConfig{})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestIssue_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, issuePath, r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "2025-03-14", body["issueDate"])
		assert.Equal(t, "tenant-1", body["tenantID"])
		assert.Equal(t, "119000", body["totalAmount"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"trackId":"TRK-1","folio":"1001","status":"ACCEPTED","totalAmount":"119000"}`))
	}))
	defer srv.Close()

	c, err := NewClient(ClientConfig{BaseURL: srv.URL + "/", APIKey: "secret"})
	require.NoError(t, err)

	res, err := c.Issue(context.Background(), sampleRequest())
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "TRK-1", res.TrackID)
	assert.Equal(t, "1001", res.Folio)
	assert.True(t, res.TotalAmount.Equal(decimal.NewFromInt(119000)))
}

func TestIssue_RejectionIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":false,"message":"invalid customer tax id"}`))
	}))
	defer srv.Close()

	c, err := NewClient(ClientConfig{BaseURL: srv.URL})
	require.NoError(t, err)

	res, err := c.Issue(context.Background(), sampleRequest())
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, "invalid customer tax id", res.Message)
}

func TestIssue_Failures(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		contains string
	}{
		{name: "json error message", status: http.StatusBadRequest, body: `{"message":"missing items"}`, contains: "status 400: missing items"},
		{name: "json error field", status: http.StatusUnauthorized, body: `{"error":"bad key"}`, contains: "status 401: bad key"},
		{name: "plain text", status: http.StatusBadGateway, body: "upstream down", contains: "status 502: upstream down"},
		{name: "empty body", status: http.StatusServiceUnavailable, body: "", contains: "Service Unavailable"},
		{name: "garbage on success", status: http.StatusOK, body: "not json", contains: "failed to decode response"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c, err := NewClient(ClientConfig{BaseURL: srv.URL})
			require.NoError(t, err)

			res, err := c.Issue(context.Background(), sampleRequest())
			require.Error(t, err)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, apperrors.ErrProvider)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestIssue_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c, err := NewClient(ClientConfig{BaseURL: url, Timeout: time.Second})
	require.NoError(t, err)

	_, err = c.Issue(context.Background(), sampleRequest())
	assert.ErrorIs(t, err, apperrors.ErrProvider)
}
