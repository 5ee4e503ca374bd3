package services

import (
	"testing"

	"elevation_mentorship_go/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupViewsDB(t *testing.T) *gorm.DB {
	// Unique shared memory name isolates tests from each other.
	dbName := "mem_" + uuid.New().String()
	testDB, err := gorm.Open(sqlite.Open("file:"+dbName+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	if err := testDB.AutoMigrate(&models.VideoView{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return testDB
}

func TestGormViewStore(t *testing.T) {
	store := NewGormViewStore(setupViewsDB(t))

	t.Run("Get Unknown Video Returns Zero", func(t *testing.T) {
		views, err := store.Get("999")
		assert.NoError(t, err)
		assert.Equal(t, int64(0), views)
	})

	t.Run("Increment Creates Then Updates", func(t *testing.T) {
		views, err := store.Increment("1120754612")
		assert.NoError(t, err)
		assert.Equal(t, int64(1), views)

		views, err = store.Increment("1120754612")
		assert.NoError(t, err)
		assert.Equal(t, int64(2), views)

		views, err = store.Get("1120754612")
		assert.NoError(t, err)
		assert.Equal(t, int64(2), views)
	})

	t.Run("Counters Are Independent", func(t *testing.T) {
		_, err := store.Increment("1120757250")
		assert.NoError(t, err)

		views, err := store.Get("1120757250")
		assert.NoError(t, err)
		assert.Equal(t, int64(1), views)

		views, err = store.Get("1120754612")
		assert.NoError(t, err)
		assert.Equal(t, int64(2), views)
	})

	t.Run("All Lists Every Counter", func(t *testing.T) {
		counts, err := store.All()
		assert.NoError(t, err)
		assert.Equal(t, int64(2), counts["1120754612"])
		assert.Equal(t, int64(1), counts["1120757250"])
	})
}

func TestGormViewStore_SurvivesReopen(t *testing.T) {
	dsn := "file:mem_" + uuid.New().String() + "?mode=memory&cache=shared"

	first, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, first.AutoMigrate(&models.VideoView{}))

	store := NewGormViewStore(first)
	_, err = store.Increment("1120754612")
	assert.NoError(t, err)
	_, err = store.Increment("1120754612")
	assert.NoError(t, err)

	// A second connection to the same database sees the counters written
	// through the first.
	second, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	assert.NoError(t, err)

	reopened := NewGormViewStore(second)
	views, err := reopened.Get("1120754612")
	assert.NoError(t, err)
	assert.Equal(t, int64(2), views)
}

func TestMemoryViewStore(t *testing.T) {
	store := NewMemoryViewStore()

	views, err := store.Increment("abc")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), views)

	views, err = store.Increment("abc")
	assert.NoError(t, err)
	assert.Equal(t, int64(2), views)

	views, err = store.Get("missing")
	assert.NoError(t, err)
	assert.Equal(t, int64(0), views)

	counts, err := store.All()
	assert.NoError(t, err)
	assert.Equal(t, map[string]int64{"abc": 2}, counts)
}

func TestInitializeViewStore(t *testing.T) {
	t.Run("Nil DB Falls Back To Memory", func(t *testing.T) {
		store := InitializeViewStore(nil)
		_, ok := store.(*MemoryViewStore)
		assert.True(t, ok)
	})

	t.Run("Open DB Uses Gorm Store", func(t *testing.T) {
		store := InitializeViewStore(setupViewsDB(t))
		_, ok := store.(*GormViewStore)
		assert.True(t, ok)
	})
}
