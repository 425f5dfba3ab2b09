package storage

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/manav03panchal/daygrid/internal/errors"
	"github.com/manav03panchal/daygrid/internal/model"
)

// ExportRepo provides operations for ExportRecord entities.
type ExportRepo struct {
	db *DB
}

// NewExportRepo creates a new export history repository.
func NewExportRepo(db *DB) *ExportRepo {
	return &ExportRepo{db: db}
}

// Create stores a record under a generated key.
func (r *ExportRepo) Create(rec *model.ExportRecord) error {
	// UUID v7 keeps keys in creation order
	id, err := uuid.NewV7()
	if err != nil {
		return err
	}
	rec.Key = model.GenerateExportKey(id.String())
	return r.db.Set(rec)
}

// Get retrieves a record by key.
func (r *ExportRepo) Get(key string) (*model.ExportRecord, error) {
	rec := &model.ExportRecord{}
	if err := r.db.Get(key, rec); err != nil {
		if IsErrKeyNotFound(err) {
			return nil, errors.NewFieldError(errors.ErrExportNotFound, "key", key)
		}
		return nil, err
	}
	return rec, nil
}

// List returns all records, newest first.
func (r *ExportRepo) List() ([]*model.ExportRecord, error) {
	recs, err := GetAllByPrefix(r.db, model.PrefixExport+":", func() *model.ExportRecord {
		return &model.ExportRecord{}
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].ExportedAt.After(recs[j].ExportedAt)
	})
	return recs, nil
}

// Delete removes a record by key.
func (r *ExportRepo) Delete(key string) error {
	if !strings.HasPrefix(key, model.PrefixExport+":") {
		return errors.NewFieldError(errors.ErrExportNotFound, "key", key)
	}
	exists, err := r.db.Exists(key)
	if err != nil {
		return err
	}
	if !exists {
		return errors.NewFieldError(errors.ErrExportNotFound, "key", key)
	}
	return r.db.Delete(key)
}

// Clear removes every record and returns how many were removed.
func (r *ExportRepo) Clear() (int, error) {
	return r.db.DeleteByPrefix(model.PrefixExport + ":")
}
