package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Router tanpa database; jalur yang diuji berhenti sebelum menyentuh gorm.
func newPasienRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewPasienHandler(nil)

	r := gin.New()
	r.GET("/pasien/:id", h.Get)
	r.POST("/pasien", h.Create)
	return r
}

func TestPasienCreateValidation(t *testing.T) {
	r := newPasienRouter()

	body := `{"nama":"","tanggal_lahir":"01-01-1990","jenis_kelamin":"Lainnya"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/pasien", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp struct {
		Message string            `json:"message"`
		Errors  map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "Validasi gagal", resp.Message)
	assert.Equal(t, "wajib diisi", resp.Errors["nama"])
	assert.Equal(t, "format tanggal tidak valid, gunakan 2006-01-02", resp.Errors["tanggal_lahir"])
	assert.Equal(t, "harus salah satu dari: Laki-laki, Perempuan", resp.Errors["jenis_kelamin"])
	assert.Equal(t, "wajib diisi", resp.Errors["alamat"])
}

func TestPasienCreateMalformedBody(t *testing.T) {
	r := newPasienRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/pasien", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "payload tidak valid")
}

func TestPasienGetNonNumericID(t *testing.T) {
	r := newPasienRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/pasien/abc", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Pasien tidak ditemukan"}`, w.Body.String())
}
