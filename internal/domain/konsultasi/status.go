package konsultasi

type Status string

const (
	StatusDijadwalkan Status = "Dijadwalkan"
	StatusSelesai     Status = "Selesai"
	StatusDibatalkan  Status = "Dibatalkan"
)

func InitialStatus() Status {
	return StatusDijadwalkan
}

// IsValid memeriksa keanggotaan enum saja. Tidak ada graf transisi:
// update boleh memakai nilai terdaftar mana pun.
func IsValid(s Status) bool {
	switch s {
	case StatusDijadwalkan, StatusSelesai, StatusDibatalkan:
		return true
	}
	return false
}
