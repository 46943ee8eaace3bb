package bill

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fkhayef/discountsplit/pkg/response"
)

const sampleBody = `{
	"participants": [
		{"name": "Andi", "price": 25000},
		{"name": "Budi", "price": 18000},
		{"name": "Citra", "price": 20000},
		{"name": "Dewi", "price": 13500}
	],
	"total_before": 76500,
	"total_after": 52500
}`

func newTestServer(t *testing.T, svc *Service) *httptest.Server {
	t.Helper()
	h := NewHandler(svc, slog.New(slog.NewTextHandler(io.Discard, nil)))
	srv := httptest.NewServer(h.Routes())
	t.Cleanup(srv.Close)
	return srv
}

func post(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeEnvelope(t *testing.T, resp *http.Response, data interface{}) response.APIResponse {
	t.Helper()
	var raw struct {
		Success bool               `json:"success"`
		Data    json.RawMessage    `json:"data"`
		Error   *response.APIError `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&raw))
	if data != nil && len(raw.Data) > 0 {
		require.NoError(t, json.Unmarshal(raw.Data, data))
	}
	return response.APIResponse{Success: raw.Success, Error: raw.Error}
}

func TestHandler_Calculate(t *testing.T) {
	svc, _ := newTestService(t)
	srv := newTestServer(t, svc)

	t.Run("returns the allocation", func(t *testing.T) {
		resp := post(t, srv.URL+"/", sampleBody)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

		var calc CalculationResponse
		env := decodeEnvelope(t, resp, &calc)
		assert.True(t, env.Success)
		require.Len(t, calc.Participants, 4)
		assert.Equal(t, "Andi", calc.Participants[0].Name)
		assert.Equal(t, int64(17200), calc.Participants[0].Allocated)
		assert.Equal(t, int64(12300), calc.Participants[1].Allocated)
		assert.Equal(t, int64(13700), calc.Participants[2].Allocated)
		assert.Equal(t, int64(9300), calc.Participants[3].Allocated)
		assert.Equal(t, int64(52500), calc.Total)
		assert.Equal(t, int64(100), calc.Step)
		assert.Equal(t, float64(24000), calc.Discount)
		assert.Equal(t, "2026-10-18T12:00:00Z", calc.CreatedAt)
		assert.NotEmpty(t, calc.ID)
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		resp := post(t, srv.URL+"/", `{"participants":`)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		env := decodeEnvelope(t, resp, nil)
		require.NotNil(t, env.Error)
		assert.Equal(t, response.CodeBadRequest, env.Error.Code)
	})

	t.Run("maps validation errors to INVALID_INPUT", func(t *testing.T) {
		resp := post(t, srv.URL+"/", `{"participants":[],"total_after":100}`)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		env := decodeEnvelope(t, resp, nil)
		assert.False(t, env.Success)
		require.NotNil(t, env.Error)
		assert.Equal(t, response.CodeInvalidInput, env.Error.Code)
		assert.Contains(t, env.Error.Message, "at least one participant")
	})

	t.Run("maps a zero reference total to INVALID_INPUT", func(t *testing.T) {
		resp := post(t, srv.URL+"/", `{"participants":[{"name":"Andi","price":0}],"total_after":100}`)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		env := decodeEnvelope(t, resp, nil)
		require.NotNil(t, env.Error)
		assert.Contains(t, env.Error.Message, "reference total")
	})
}

func TestHandler_Calculate_InternalError(t *testing.T) {
	srv := newTestServer(t, NewService(failingAllocator{}, 100, nil))

	resp := post(t, srv.URL+"/", sampleBody)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	env := decodeEnvelope(t, resp, nil)
	require.NotNil(t, env.Error)
	assert.Equal(t, response.CodeInternalError, env.Error.Code)
}

func TestHandler_Summary(t *testing.T) {
	svc, _ := newTestService(t)
	srv := newTestServer(t, svc)

	resp := post(t, srv.URL+"/summary", sampleBody)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/plain; charset=utf-8", resp.Header.Get("Content-Type"))
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "Discount split\n"+
		"1. Andi: Rp25.000 -> Rp17.200\n"+
		"2. Budi: Rp18.000 -> Rp12.300\n"+
		"3. Citra: Rp20.000 -> Rp13.700\n"+
		"4. Dewi: Rp13.500 -> Rp9.300\n"+
		"Total: Rp76.500 -> Rp52.500\n"+
		"Total before discount: Rp76.500", string(body))
}

func TestHandler_Share(t *testing.T) {
	svc, _ := newTestService(t)
	srv := newTestServer(t, svc)

	resp := post(t, srv.URL+"/share", sampleBody)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var shared ShareResponse
	env := decodeEnvelope(t, resp, &shared)
	assert.True(t, env.Success)
	require.NotNil(t, shared.Calculation)
	assert.Equal(t, int64(52500), shared.Calculation.Total)
	assert.True(t, strings.HasPrefix(shared.Summary, "Discount split\n"))
	assert.True(t, strings.HasPrefix(shared.Links.WhatsApp, "https://wa.me/?text=Discount+split"))
	assert.True(t, strings.HasPrefix(shared.Links.Telegram, "https://t.me/share/url?text=Discount+split"))
}
