package web

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/LennyDevX/nuvo-f-sub002/internal/config"
	"github.com/LennyDevX/nuvo-f-sub002/internal/portfolio"
	"github.com/LennyDevX/nuvo-f-sub002/internal/types"
)

func newTestServer(t *testing.T) *WebServer {
	t.Helper()
	analyzer, err := portfolio.NewAnalyzer(portfolio.Config{Constants: config.DefaultStakingConstants})
	require.NoError(t, err)
	return NewWebServer("0", analyzer)
}

func TestHandleAnalyze(t *testing.T) {
	server := newTestServer(t)
	now := int64(1700000000)

	payload := map[string]any{
		"profile": types.UserStakingProfile{
			Address:      "0xabc",
			Deposits:     []types.Deposit{{Amount: 1000, Timestamp: now - 100*86400}},
			TotalStaked:  1000,
			NowTimestamp: now,
		},
	}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", bytes.NewReader(body))
	recorder := httptest.NewRecorder()
	server.router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var result types.AnalysisResult
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &result))
	require.Equal(t, now, result.Timestamp)
	require.Greater(t, result.Score, 0)
	require.Greater(t, result.APYReport.EffectiveAPY, 0.0)
}

func TestHandleAnalyzeBadBody(t *testing.T) {
	server := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", bytes.NewReader([]byte("{not json")))
	recorder := httptest.NewRecorder()
	server.router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandleAnalyzeInconsistentProfile(t *testing.T) {
	server := newTestServer(t)

	payload := map[string]any{
		"profile": types.UserStakingProfile{
			Address:      "0xbad",
			TotalStaked:  -5,
			NowTimestamp: 1700000000,
		},
	}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", bytes.NewReader(body))
	recorder := httptest.NewRecorder()
	server.router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
}

func TestHandleGetConstants(t *testing.T) {
	server := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/constants", nil)
	recorder := httptest.NewRecorder()
	server.router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var response struct {
		Constants types.StakingConstants `json:"constants"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	require.InDelta(t, config.DefaultStakingConstants.HourlyROI, response.Constants.HourlyROI, 1e-12)
	require.Len(t, response.Constants.TimeBonusTiers, 3)
}

func TestCORSHeaders(t *testing.T) {
	server := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/constants", nil)
	recorder := httptest.NewRecorder()
	server.router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	require.Equal(t, "*", recorder.Header().Get("Access-Control-Allow-Origin"))
}
