package peminjaman

import (
	"context"
	"strconv"
	"strings"

	ulid "github.com/oklog/ulid/v2"

	"inventaris-lab-backend/internal/inventory"
	"inventaris-lab-backend/internal/inventory/filter"
	"inventaris-lab-backend/internal/inventory/ledger"
	"inventaris-lab-backend/internal/platform/db"
)

type Service struct {
	db    *db.Conn
	store *Store
	clock inventory.Clock
	id    inventory.IDGen
	obs   ledger.Observer
}

func NewService(conn *db.Conn) *Service {
	return &Service{
		db:    conn,
		store: NewStore(),
		clock: inventory.RealClock{},
		id:    inventory.NewULIDGen(),
		obs:   ledger.NopObserver{},
	}
}

// WithObserver reports committed ledger operations to o.
func (s *Service) WithObserver(o ledger.Observer) *Service {
	if o == nil {
		o = ledger.NopObserver{}
	}
	s.obs = o
	return s
}

// POST /peminjaman
func (s *Service) Create(ctx context.Context, in CreateLoanRequest) (CreateLoanResponse, error) {
	if in.Kind == "" {
		in.Kind = string(inventory.KindTool)
	}
	if err := validateCreate(in); err != nil {
		return CreateLoanResponse{}, err
	}
	l := inventory.Loan{
		Code:     s.id.NewULID(s.clock.Now()),
		Borrower: strings.TrimSpace(in.Borrower),
		Kind:     inventory.Kind(in.Kind),
		ItemName: strings.TrimSpace(in.ItemName),
		Quantity: *in.Quantity,
		LoanDate: in.LoanDate,
	}

	var adj ledger.Adjustment
	err := db.RunInTx(ctx, s.db, nil, func(ctx context.Context, tx db.DBTX) error {
		var err error
		adj, err = ledger.Borrow(ctx, ledger.NewSQL(tx, s.db.Dialect), &l)
		return err
	})
	if err != nil {
		return CreateLoanResponse{}, err
	}
	s.obs.Borrowed(string(l.Kind), adj.Matched)
	return CreateLoanResponse{Loan: l, Stock: adj}, nil
}

// GET /peminjaman/:id. key is the numeric id or the ULID kode.
func (s *Service) Get(ctx context.Context, key string) (inventory.Loan, error) {
	if id, err := strconv.ParseInt(key, 10, 64); err == nil {
		if id <= 0 {
			return inventory.Loan{}, inventory.ErrInvalid("invalid id")
		}
		return s.store.Get(ctx, s.db, id)
	}
	if _, err := ulid.ParseStrict(key); err != nil {
		return inventory.Loan{}, inventory.ErrInvalid("id must be a number or a kode")
	}
	return s.store.GetByCode(ctx, s.db, strings.ToUpper(key))
}

func (s *Service) All(ctx context.Context) ([]inventory.Loan, error) {
	return s.store.List(ctx, s.db)
}

// GET /peminjaman
func (s *Service) List(ctx context.Context, q filter.LoanQuery) ([]inventory.Loan, error) {
	if q.Kind != "" && q.Kind != inventory.KindAll && !q.Kind.Valid() {
		return nil, inventory.ErrInvalid("jenis must be Alat, Bahan or Semua")
	}
	all, err := s.store.List(ctx, s.db)
	if err != nil {
		return nil, err
	}
	return filter.Loans(all, q), nil
}

// PUT /peminjaman/:id. Stock is not touched.
func (s *Service) MarkReturned(ctx context.Context, id int64, in MarkReturnedRequest) (inventory.Loan, error) {
	if in.ReturnDate == nil {
		return inventory.Loan{}, inventory.ErrInvalid("tanggalKembali required")
	}
	var out *inventory.Loan
	err := db.RunInTx(ctx, s.db, nil, func(ctx context.Context, tx db.DBTX) error {
		var err error
		out, err = ledger.MarkReturned(ctx, ledger.NewSQL(tx, s.db.Dialect), id, *in.ReturnDate)
		return err
	})
	if err != nil {
		return inventory.Loan{}, err
	}
	s.obs.Returned(string(out.Kind))
	return *out, nil
}

// DELETE /peminjaman/:id. An outstanding loan gives its quantity back.
func (s *Service) Delete(ctx context.Context, id int64) (ledger.Adjustment, error) {
	var adj ledger.Adjustment
	err := db.RunInTx(ctx, s.db, nil, func(ctx context.Context, tx db.DBTX) error {
		var err error
		adj, err = ledger.DeleteLoan(ctx, ledger.NewSQL(tx, s.db.Dialect), id)
		return err
	})
	if err != nil {
		return ledger.Adjustment{}, err
	}
	s.obs.LoanDeleted(string(adj.Kind), adj.Matched)
	return adj, nil
}

// ---------- validation ----------

func validateCreate(in CreateLoanRequest) error {
	switch {
	case strings.TrimSpace(in.Borrower) == "":
		return inventory.ErrInvalid("peminjam required")
	case !inventory.Kind(in.Kind).Valid():
		return inventory.ErrInvalid("jenis must be Alat or Bahan")
	case strings.TrimSpace(in.ItemName) == "":
		return inventory.ErrInvalid("namaItem required")
	case in.Quantity == nil || *in.Quantity <= 0:
		return inventory.ErrInvalid("jumlah must be > 0")
	case !inventory.ValidDate(in.LoanDate):
		return inventory.ErrInvalid("tanggalPinjam must be YYYY-MM-DD")
	}
	return nil
}
