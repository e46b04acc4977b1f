package store

import (
	"time"

	"construction-erp/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

/* ---------- 假實作 ---------- */

// fakeUserRow 支援兩種 Scan 呼叫場景：
// 1) len(dest)==6 → GetUserByID / GetUserByEmail / ListUsers
// 2) len(dest)==2 → CreateUser (id, created_at)
type fakeUserRow struct {
	scanErr error
	user    *model.User
}

func (r *fakeUserRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	u := r.user
	switch len(dest) {
	case 6:
		*dest[0].(*int) = u.ID
		*dest[1].(*string) = u.Name
		*dest[2].(*string) = u.Email
		*dest[3].(*string) = u.PasswordHash
		*dest[4].(*string) = u.Role
		*dest[5].(*time.Time) = u.CreatedAt
	case 2:
		*dest[0].(*int) = u.ID
		*dest[1].(*time.Time) = u.CreatedAt
	default:
		panic("fakeUserRow.Scan: unexpected dest count")
	}
	return nil
}

// fakeProjectRow 同上：7 欄為完整查詢，2 欄為 CreateProject
type fakeProjectRow struct {
	scanErr error
	project *model.Project
}

func (r *fakeProjectRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	p := r.project
	switch len(dest) {
	case 7:
		*dest[0].(*int) = p.ID
		*dest[1].(*string) = p.Name
		*dest[2].(*float64) = p.Budget
		*dest[3].(*float64) = p.Spent
		*dest[4].(*float64) = p.Progress
		*dest[5].(*string) = p.Status
		*dest[6].(*time.Time) = p.CreatedAt
	case 2:
		*dest[0].(*int) = p.ID
		*dest[1].(*time.Time) = p.CreatedAt
	default:
		panic("fakeProjectRow.Scan: unexpected dest count")
	}
	return nil
}

// fakeRows 實作 pgx.Rows，逐筆交給 scan 寫入
type fakeRows struct {
	n       int
	idx     int
	scan    func(i int, dest ...any) error
	scanErr error
	err     error
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Next() bool                                   { return r.idx < r.n }
func (r *fakeRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	i := r.idx
	r.idx++
	return r.scan(i, dest...)
}
func (r *fakeRows) Values() ([]any, error) { return nil, nil }
func (r *fakeRows) RawValues() [][]byte    { return nil }
func (r *fakeRows) Conn() *pgx.Conn        { return nil }

func userRows(users ...model.User) *fakeRows {
	return &fakeRows{n: len(users), scan: func(i int, dest ...any) error {
		return (&fakeUserRow{user: &users[i]}).Scan(dest...)
	}}
}

func projectRows(projects ...model.Project) *fakeRows {
	return &fakeRows{n: len(projects), scan: func(i int, dest ...any) error {
		return (&fakeProjectRow{project: &projects[i]}).Scan(dest...)
	}}
}
