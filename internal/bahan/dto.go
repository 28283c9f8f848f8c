package bahan

// ===== Request DTOs =====

type CreateMaterialRequest struct {
	Name     string `json:"nama"`
	Symbol   string `json:"simbol"`
	Quantity *int64 `json:"jumlah"`
	Unit     string `json:"satuan"`
	Expired  bool   `json:"is_expired"`
	Acquired string `json:"tanggal"`
	Lab      string `json:"lab"`
	Location string `json:"lokasi"`
}

// UpdateMaterialRequest is a partial update; nil fields are left as they are.
// An empty simbol clears the symbol.
type UpdateMaterialRequest struct {
	Name     *string `json:"nama"`
	Symbol   *string `json:"simbol"`
	Quantity *int64  `json:"jumlah"`
	Unit     *string `json:"satuan"`
	Expired  *bool   `json:"is_expired"`
	Acquired *string `json:"tanggal"`
	Lab      *string `json:"lab"`
	Location *string `json:"lokasi"`
}

func (r UpdateMaterialRequest) empty() bool {
	return r.Name == nil && r.Symbol == nil && r.Quantity == nil && r.Unit == nil &&
		r.Expired == nil && r.Acquired == nil && r.Lab == nil && r.Location == nil
}
