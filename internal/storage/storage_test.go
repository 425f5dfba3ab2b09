package storage

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/daygrid/internal/config"
	"github.com/manav03panchal/daygrid/internal/errors"
	"github.com/manav03panchal/daygrid/internal/model"
)

// Helper to create an in-memory database for testing
func setupTestDB(t *testing.T) *DB {
	db, err := Open(Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

// =============================================================================
// DB Tests
// =============================================================================

func TestOpenClose(t *testing.T) {
	t.Run("in_memory", func(t *testing.T) {
		db, err := Open(Options{InMemory: true})
		require.NoError(t, err)
		assert.NotNil(t, db)
		err = db.Close()
		assert.NoError(t, err)
	})

	t.Run("empty_path_uses_in_memory", func(t *testing.T) {
		db, err := Open(Options{Path: ""})
		require.NoError(t, err)
		assert.NotNil(t, db)
		db.Close()
	})

	t.Run("on_disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "db")
		db, err := Open(Options{Path: path})
		require.NoError(t, err)
		defer db.Close()

		assert.Equal(t, path, db.Path())
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("second_open_reports_lock_held", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "db")
		db, err := Open(Options{Path: path})
		require.NoError(t, err)
		defer db.Close()

		_, err = Open(Options{Path: path})
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrLockHeld))
		assert.Equal(t, errors.CategoryRecoverable, errors.Classify(err))
	})
}

func TestDBPath(t *testing.T) {
	db := setupTestDB(t)

	// In-memory DB has empty path
	assert.Equal(t, "", db.Path())
}

func TestDefaultPath(t *testing.T) {
	path := DefaultPath()
	assert.Contains(t, path, "daygrid")
	assert.Contains(t, path, "db")
}

// =============================================================================
// CRUD Tests
// =============================================================================

func TestGetSetDelete(t *testing.T) {
	db := setupTestDB(t)

	rec := model.NewExportRecord("user", "/tmp/a.csv", time.Now(), 3, 11)
	rec.Key = model.GenerateExportKey("one")
	require.NoError(t, db.Set(rec))

	got := &model.ExportRecord{}
	require.NoError(t, db.Get(rec.Key, got))
	assert.Equal(t, rec.Key, got.Key)
	assert.Equal(t, "/tmp/a.csv", got.Path)
	assert.Equal(t, 11, got.TotalScore)

	exists, err := db.Exists(rec.Key)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, db.Delete(rec.Key))
	err = db.Get(rec.Key, got)
	assert.True(t, IsErrKeyNotFound(err))

	exists, err = db.Exists(rec.Key)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestPrefixOperations(t *testing.T) {
	db := setupTestDB(t)

	for i := 0; i < 3; i++ {
		rec := model.NewExportRecord("user", fmt.Sprintf("/tmp/%d.csv", i), time.Now(), i, 0)
		rec.Key = model.GenerateExportKey(fmt.Sprintf("id-%d", i))
		require.NoError(t, db.Set(rec))
	}
	require.NoError(t, db.Set(model.NewConfig("user")))

	keys, err := db.ListByPrefix(model.PrefixExport + ":")
	require.NoError(t, err)
	assert.Len(t, keys, 3)

	all, err := GetAllByPrefix(db, model.PrefixExport+":", func() *model.ExportRecord {
		return &model.ExportRecord{}
	})
	require.NoError(t, err)
	assert.Len(t, all, 3)
	for _, rec := range all {
		assert.NotEmpty(t, rec.Key)
	}

	n, err := db.DeleteByPrefix(model.PrefixExport + ":")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	keys, err = db.ListByPrefix(model.PrefixExport + ":")
	require.NoError(t, err)
	assert.Empty(t, keys)

	// Config is untouched
	exists, err := db.Exists(model.KeyConfig)
	require.NoError(t, err)
	assert.True(t, exists)
}

// =============================================================================
// ConfigRepo Tests
// =============================================================================

func TestConfigRepoGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewConfigRepo(db)

	// First call creates
	config, err := repo.Get()
	require.NoError(t, err)
	assert.Equal(t, model.KeyConfig, config.Key)
	assert.NotEmpty(t, config.UserKey)

	// Second call returns the same config
	config2, err := repo.Get()
	require.NoError(t, err)
	assert.Equal(t, config.UserKey, config2.UserKey)
}

func TestConfigRepoUpdate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewConfigRepo(db)

	config, err := repo.Get()
	require.NoError(t, err)

	require.True(t, config.Set(model.SettingExportDir, "/tmp/exports"))
	require.True(t, config.Set(model.SettingFormat, "json"))
	require.NoError(t, repo.Update(config))

	retrieved, err := repo.Get()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/exports", retrieved.ExportDir)
	assert.Equal(t, "json", retrieved.Format)
	assert.Equal(t, config.UserKey, retrieved.UserKey)
}

// =============================================================================
// ExportRepo Tests
// =============================================================================

func TestExportRepoCreateGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewExportRepo(db)

	rec := model.NewExportRecord("user", "/tmp/journal_export_2026-10-19.csv", time.Now(), 2, 21)
	require.NoError(t, repo.Create(rec))
	assert.Contains(t, rec.Key, model.PrefixExport+":")

	got, err := repo.Get(rec.Key)
	require.NoError(t, err)
	assert.Equal(t, rec.Path, got.Path)
	assert.Equal(t, 2, got.Rows)
	assert.Equal(t, 21, got.TotalScore)
}

func TestExportRepoGetNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewExportRepo(db)

	_, err := repo.Get(model.GenerateExportKey("missing"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrExportNotFound))
	assert.True(t, errors.IsUserError(err))
}

func TestExportRepoList(t *testing.T) {
	db := setupTestDB(t)
	repo := NewExportRepo(db)

	base := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		rec := model.NewExportRecord("user", fmt.Sprintf("/tmp/%d.csv", i), base.Add(time.Duration(i)*time.Hour), i+1, 0)
		require.NoError(t, repo.Create(rec))
	}

	recs, err := repo.List()
	require.NoError(t, err)
	require.Len(t, recs, 3)

	// Newest first
	assert.Equal(t, "/tmp/2.csv", recs[0].Path)
	assert.Equal(t, "/tmp/1.csv", recs[1].Path)
	assert.Equal(t, "/tmp/0.csv", recs[2].Path)
}

func TestExportRepoDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewExportRepo(db)

	rec := model.NewExportRecord("user", "/tmp/a.csv", time.Now(), 1, 1)
	require.NoError(t, repo.Create(rec))

	require.NoError(t, repo.Delete(rec.Key))

	err := repo.Delete(rec.Key)
	assert.True(t, errors.Is(err, errors.ErrExportNotFound))

	t.Run("other_namespace", func(t *testing.T) {
		_, err := NewConfigRepo(db).Get()
		require.NoError(t, err)

		err = repo.Delete(model.KeyConfig)
		assert.True(t, errors.Is(err, errors.ErrExportNotFound))

		exists, err := db.Exists(model.KeyConfig)
		require.NoError(t, err)
		assert.True(t, exists)
	})
}

func TestExportRepoClear(t *testing.T) {
	db := setupTestDB(t)
	repo := NewExportRepo(db)

	t.Run("empty", func(t *testing.T) {
		n, err := repo.Clear()
		require.NoError(t, err)
		assert.Equal(t, 0, n)
	})

	t.Run("removes_all", func(t *testing.T) {
		for i := 0; i < 4; i++ {
			require.NoError(t, repo.Create(model.NewExportRecord("user", "/tmp/x.csv", time.Now(), 1, 0)))
		}
		n, err := repo.Clear()
		require.NoError(t, err)
		assert.Equal(t, 4, n)

		recs, err := repo.List()
		require.NoError(t, err)
		assert.Empty(t, recs)
	})
}

// =============================================================================
// Safety Tests
// =============================================================================

func TestDiskSpaceInfo(t *testing.T) {
	t.Run("free_percent_zero_total", func(t *testing.T) {
		info := &DiskSpaceInfo{TotalBytes: 0, FreeBytes: 100}
		assert.Equal(t, 0.0, info.FreePercent())
	})

	t.Run("free_percent_calculation", func(t *testing.T) {
		info := &DiskSpaceInfo{TotalBytes: 1000, FreeBytes: 250}
		assert.Equal(t, 25.0, info.FreePercent())
	})
}

func TestGetDiskSpace(t *testing.T) {
	t.Run("current_directory", func(t *testing.T) {
		info, err := GetDiskSpace(".")
		require.NoError(t, err)
		assert.NotNil(t, info)
		assert.Greater(t, info.TotalBytes, uint64(0))
	})

	t.Run("nonexistent_path_uses_parent", func(t *testing.T) {
		info, err := GetDiskSpace("/nonexistent/path/here")
		require.NoError(t, err)
		assert.NotNil(t, info)
	})
}

func TestExistingAncestor(t *testing.T) {
	dir := t.TempDir()
	assert.Equal(t, dir, existingAncestor(dir))
	assert.Equal(t, dir, existingAncestor(filepath.Join(dir, "a", "b")))
}

func TestCheckDiskSpace(t *testing.T) {
	t.Run("current_directory_has_space", func(t *testing.T) {
		// Unless running on a nearly-full disk, this should pass
		assert.NoError(t, CheckDiskSpace("."))
	})
}

func TestCheckDiskSpaceWarning(t *testing.T) {
	t.Run("no_warning_on_normal_disk", func(t *testing.T) {
		assert.Empty(t, CheckDiskSpaceWarning("."))
	})

	t.Run("reports_free_space_below_threshold", func(t *testing.T) {
		saved := config.Global.Storage.MinFreeSpaceWarning
		t.Cleanup(func() { config.Global.Storage.MinFreeSpaceWarning = saved })
		config.Global.Storage.MinFreeSpaceWarning = math.MaxUint64

		warning := CheckDiskSpaceWarning(".")
		assert.True(t, strings.HasPrefix(warning, "Low disk space: "))
		assert.Contains(t, warning, "MB free (")
		assert.True(t, strings.HasSuffix(warning, "%)"))
	})
}

func TestIsDiskFullError(t *testing.T) {
	t.Run("nil_error", func(t *testing.T) {
		assert.False(t, isDiskFullError(nil))
	})

	t.Run("regular_error", func(t *testing.T) {
		assert.False(t, isDiskFullError(fmt.Errorf("some error")))
	})
}

func TestEnsureDirectory(t *testing.T) {
	t.Run("creates_nested_directory", func(t *testing.T) {
		testPath := filepath.Join(t.TempDir(), "subdir", "nested")

		require.NoError(t, EnsureDirectory(testPath))

		info, err := os.Stat(testPath)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})
}

func TestSafeWrite(t *testing.T) {
	t.Run("writes_file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "journal_export_2026-10-19.csv")
		data := []byte("\"Time\",\"Text\",\"Duration\",\"Productivity\"")

		require.NoError(t, SafeWrite(path, data, 0644))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, data, got)
	})

	t.Run("overwrites_existing", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.csv")
		require.NoError(t, os.WriteFile(path, []byte("old contents"), 0644))

		require.NoError(t, SafeWrite(path, []byte("new"), 0644))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "new", string(got))
	})

	t.Run("leaves_no_temp_files", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, SafeWrite(filepath.Join(dir, "out.csv"), []byte("x"), 0644))

		matches, err := filepath.Glob(filepath.Join(dir, ".daygrid-*.tmp"))
		require.NoError(t, err)
		assert.Empty(t, matches)
	})

	t.Run("missing_directory_fails", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "out.csv")
		assert.Error(t, SafeWrite(path, []byte("x"), 0644))
	})
}
