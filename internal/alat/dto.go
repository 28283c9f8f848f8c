package alat

// ===== Request DTOs =====

type CreateToolRequest struct {
	Name     string `json:"nama"`
	Good     *int64 `json:"baik"`
	Damaged  *int64 `json:"rusak"`
	Acquired string `json:"tanggal"`
	Lab      string `json:"lab"`
	Location string `json:"lokasi"`
}

// UpdateToolRequest is a partial update; nil fields are left as they are.
type UpdateToolRequest struct {
	Name     *string `json:"nama"`
	Good     *int64  `json:"baik"`
	Damaged  *int64  `json:"rusak"`
	Acquired *string `json:"tanggal"`
	Lab      *string `json:"lab"`
	Location *string `json:"lokasi"`
}

func (r UpdateToolRequest) empty() bool {
	return r.Name == nil && r.Good == nil && r.Damaged == nil &&
		r.Acquired == nil && r.Lab == nil && r.Location == nil
}
