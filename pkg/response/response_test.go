package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return body
}

func TestOK_OmitsDetails(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	OK(c, gin.H{"id": 1})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := decode(t, w)
	if body["code"].(float64) != 0 {
		t.Errorf("expected code 0, got %v", body["code"])
	}
	if _, ok := body["details"]; ok {
		t.Error("details must be omitted on success")
	}
	if body["data"].(map[string]interface{})["id"].(float64) != 1 {
		t.Errorf("unexpected data %v", body["data"])
	}
}

func TestErrorWithDetails(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	ErrorWithDetails(c, http.StatusBadRequest, CodeInvalidParam, "Ungültige Anfrageparameter",
		[]map[string]string{{"path": "body", "message": "leer"}})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	body := decode(t, w)
	if body["code"].(float64) != CodeInvalidParam {
		t.Errorf("unexpected code %v", body["code"])
	}
	if len(body["details"].([]interface{})) != 1 {
		t.Errorf("unexpected details %v", body["details"])
	}
}

func TestInternalError(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	InternalError(c)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if decode(t, w)["code"].(float64) != CodeInternalError {
		t.Error("unexpected code")
	}
}
