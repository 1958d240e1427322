package receiver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/groundlink-io/groundlink/internal/session"
	"github.com/groundlink-io/groundlink/internal/telemetry"
)

const testLine = "1000,13:14:02,123,F,ASCENT,452.3,27.5,95.3,7.4," +
	"0.12,-0.05,0.01,0.02,0.00,-0.01,0.23,0.01,0.04,15," +
	"13:14:01,455.1,1.2345,103.8234,8,CXON"

func testSession(t *testing.T) *session.Session {
	t.Helper()
	sess := session.New(session.Config{TeamID: "1000"})
	if _, _, err := sess.Accept([]byte(testLine)); err != nil {
		t.Fatalf("Accept() error = %v", err)
	}
	return sess
}

func TestHandleLatest(t *testing.T) {
	rr := httptest.NewRecorder()
	handleLatest(testSession(t))(rr, httptest.NewRequest(http.MethodGet, "/api/v1/latest", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var resp recordResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Seq != 123 {
		t.Fatalf("seq = %d, want 123", resp.Seq)
	}
	if resp.Fields[telemetry.FieldAltitude] != "452.3" {
		t.Fatalf("altitude = %q", resp.Fields[telemetry.FieldAltitude])
	}
}

func TestHandleLatestEmpty(t *testing.T) {
	sess := session.New(session.Config{TeamID: "1000"})

	rr := httptest.NewRecorder()
	handleLatest(sess)(rr, httptest.NewRequest(http.MethodGet, "/api/v1/latest", nil))

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
}

func TestHandleHistory(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/history?field=TEMPERATURE", nil)
	handleHistory(testSession(t))(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var resp historyResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Field != "TEMPERATURE" || len(resp.Values) != 1 {
		t.Fatalf("response = %+v", resp)
	}
	if resp.Values[0] == nil || *resp.Values[0] != 27.5 {
		t.Fatalf("values = %v", resp.Values)
	}
}

func TestHandleHistoryUnknownField(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/history?field=WARP_FACTOR", nil)
	handleHistory(testSession(t))(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
}

func TestHandleStats(t *testing.T) {
	rr := httptest.NewRecorder()
	handleStats(testSession(t))(rr, httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "\"Accepted\":1") {
		t.Fatalf("body = %s", rr.Body.String())
	}
}
