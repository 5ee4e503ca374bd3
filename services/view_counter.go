package services

import (
	"fmt"
	"log"
	"sync"

	"elevation_mentorship_go/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ViewStore holds per-video play counters behind a small get/increment
// surface so the backing storage can be swapped for an in-memory fake.
// Counters are scoped to one store instance and are best-effort display
// state, never authoritative.
type ViewStore interface {
	Increment(videoID string) (int64, error)
	Get(videoID string) (int64, error)
	All() (map[string]int64, error)
}

// GormViewStore persists counters in the local sqlite views database so
// they survive a restart.
type GormViewStore struct {
	db *gorm.DB
}

func NewGormViewStore(db *gorm.DB) *GormViewStore {
	return &GormViewStore{db: db}
}

func (s *GormViewStore) Increment(videoID string) (int64, error) {
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "video_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"views": gorm.Expr("views + 1")}),
	}).Create(&models.VideoView{VideoID: videoID, Views: 1}).Error
	if err != nil {
		return 0, fmt.Errorf("failed to increment view count for %s: %w", videoID, err)
	}
	return s.Get(videoID)
}

func (s *GormViewStore) Get(videoID string) (int64, error) {
	var view models.VideoView
	if err := s.db.First(&view, "video_id = ?", videoID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read view count for %s: %w", videoID, err)
	}
	return view.Views, nil
}

func (s *GormViewStore) All() (map[string]int64, error) {
	var views []models.VideoView
	if err := s.db.Find(&views).Error; err != nil {
		return nil, fmt.Errorf("failed to list view counts: %w", err)
	}

	counts := make(map[string]int64, len(views))
	for _, v := range views {
		counts[v.VideoID] = v.Views
	}
	return counts, nil
}

// MemoryViewStore keeps counters in memory. Used as the fallback when the
// views database cannot be opened, and as the fake under test.
type MemoryViewStore struct {
	mu     sync.Mutex
	counts map[string]int64
}

func NewMemoryViewStore() *MemoryViewStore {
	return &MemoryViewStore{counts: make(map[string]int64)}
}

func (s *MemoryViewStore) Increment(videoID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts[videoID]++
	return s.counts[videoID], nil
}

func (s *MemoryViewStore) Get(videoID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts[videoID], nil
}

func (s *MemoryViewStore) All() (map[string]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	counts := make(map[string]int64, len(s.counts))
	for id, n := range s.counts {
		counts[id] = n
	}
	return counts, nil
}

// InitializeViewStore builds the view store from an opened views database,
// falling back to the in-memory store when none is available.
func InitializeViewStore(views *gorm.DB) ViewStore {
	if views == nil {
		log.Println("[WARNING] Views database unavailable, using in-memory view counters")
		return NewMemoryViewStore()
	}
	return NewGormViewStore(views)
}
