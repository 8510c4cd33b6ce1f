package remittance

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=remittance_repo.go -destination=mock/remittance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, rec *Remittance) error
	FindAllWithName(ctx context.Context) ([]Remittance, error)
	Update(ctx context.Context, rec *Remittance) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) Create(ctx context.Context, rec *Remittance) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *repository) FindAllWithName(ctx context.Context) ([]Remittance, error) {
	var recs []Remittance
	query := `
SELECT
	remittance_table.*,
	payroll_processing.name AS name
FROM remittance_table
LEFT JOIN payroll_processing
	ON payroll_processing.employee_number = remittance_table.employee_number
ORDER BY remittance_table.created_at ASC
`

	err := r.db.WithContext(ctx).Raw(query).Scan(&recs).Error
	return recs, err
}

// Update replaces every column of the matching row; rows affected is returned
// so callers can observe a miss without changing the response contract.
func (r *repository) Update(ctx context.Context, rec *Remittance) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Remittance{}).
		Where("id = ?", rec.ID).
		Select("*").
		Omit("id", "created_at", "name").
		Updates(rec)
	return res.RowsAffected, res.Error
}

func (r *repository) Delete(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&Remittance{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
