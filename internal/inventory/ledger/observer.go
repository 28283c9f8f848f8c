package ledger

// Observer is told about committed ledger operations. The metrics package
// implements it; kind is "Alat" or "Bahan".
type Observer interface {
	Borrowed(kind string, matched bool)
	Returned(kind string)
	LoanDeleted(kind string, restored bool)
}

type NopObserver struct{}

func (NopObserver) Borrowed(string, bool)    {}
func (NopObserver) Returned(string)          {}
func (NopObserver) LoanDeleted(string, bool) {}
