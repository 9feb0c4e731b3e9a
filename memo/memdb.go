package memo

import (
	"fmt"
	"math/big"
	"slices"

	memdb "github.com/hashicorp/go-memdb"
)

const (
	termTable = "term"
	termIndex = "id"
)

var termSchema = &memdb.DBSchema{
	Tables: map[string]*memdb.TableSchema{
		termTable: {
			Name: termTable,
			Indexes: map[string]*memdb.IndexSchema{
				termIndex: {
					Name:    termIndex,
					Unique:  true,
					Indexer: &memdb.IntFieldIndex{Field: "N"},
				},
			},
		},
	},
}

type term struct {
	N     int
	Value *big.Int
}

var _ Store[int, *big.Int] = (*MemDB)(nil)

// MemDB stores sequence terms in an in-memory database indexed by position.
type MemDB struct {
	db *memdb.MemDB
}

func NewMemDB() (*MemDB, error) {
	db, err := memdb.NewMemDB(termSchema)
	if err != nil {
		return nil, err
	}
	return &MemDB{db: db}, nil
}

func (m *MemDB) Load(n int) (*big.Int, bool) {
	txn := m.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(termTable, termIndex, n)
	if err != nil {
		panic(fmt.Errorf("memdb: load term %d: %w", n, err))
	}
	if raw == nil {
		return nil, false
	}
	return raw.(*term).Value, true
}

func (m *MemDB) Store(n int, v *big.Int) {
	txn := m.db.Txn(true)
	defer txn.Abort()

	if err := txn.Insert(termTable, &term{N: n, Value: v}); err != nil {
		panic(fmt.Errorf("memdb: store term %d: %w", n, err))
	}
	txn.Commit()
}

// Indexes returns the stored positions in ascending order.
func (m *MemDB) Indexes() ([]int, error) {
	txn := m.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(termTable, termIndex)
	if err != nil {
		return nil, err
	}
	var ns []int
	for raw := it.Next(); raw != nil; raw = it.Next() {
		ns = append(ns, raw.(*term).N)
	}
	// the int indexer uses varint keys, which do not iterate in numeric order
	slices.Sort(ns)
	return ns, nil
}
