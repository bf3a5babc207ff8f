package validation

import (
	"errors"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type samplePayload struct {
	Nama         string `json:"nama" binding:"required,max=100"`
	Email        string `json:"email" binding:"required,email"`
	JenisKelamin string `json:"jenis_kelamin" binding:"required,oneof=Laki-laki Perempuan"`
	TanggalLahir string `json:"tanggal_lahir" binding:"required,datetime=2006-01-02"`
	Password     string `json:"password" binding:"omitempty,min=6"`
}

func validate(t *testing.T, payload samplePayload) map[string]string {
	t.Helper()

	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)

	err := v.Struct(payload)
	require.Error(t, err)
	return Fields(err)
}

func TestFieldsUsesJSONNames(t *testing.T) {
	fields := validate(t, samplePayload{})

	// Nama field mengikuti tag json, bukan nama field Go.
	assert.Contains(t, fields, "nama")
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "jenis_kelamin")
	assert.Contains(t, fields, "tanggal_lahir")
	assert.NotContains(t, fields, "Nama")
}

func TestFieldsMessages(t *testing.T) {
	fields := validate(t, samplePayload{
		Nama:         "Budi",
		Email:        "bukan-email",
		JenisKelamin: "Lainnya",
		TanggalLahir: "10-03-2025",
		Password:     "abc",
	})

	assert.Equal(t, "format email tidak valid", fields["email"])
	assert.Equal(t, "harus salah satu dari: Laki-laki, Perempuan", fields["jenis_kelamin"])
	assert.Equal(t, "format tanggal tidak valid, gunakan 2006-01-02", fields["tanggal_lahir"])
	assert.Equal(t, "minimal 6 karakter", fields["password"])
}

func TestFieldsRequiredMessage(t *testing.T) {
	fields := validate(t, samplePayload{
		Email:        "budi@example.com",
		JenisKelamin: "Laki-laki",
		TanggalLahir: "1990-01-01",
	})

	assert.Equal(t, "wajib diisi", fields["nama"])
}

func TestFieldsNonValidatorError(t *testing.T) {
	fields := Fields(errors.New("unexpected EOF"))

	assert.Equal(t, map[string]string{"body": "payload tidak valid"}, fields)
}
