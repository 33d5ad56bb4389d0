package snapshot

import (
	"context"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Namespaces of persisted client state. Each owner has one snapshot per namespace.
const (
	NamespaceFavorites      = "favorites-storage"
	NamespaceSavedSearches  = "saved-searches-storage"
	NamespaceForum          = "forum-storage"
	NamespaceAuth           = "auth-storage"
	NamespaceCart           = "cart"
	NamespaceDirectMessages = "direct-messages-storage"
	NamespaceProfile        = "profile-storage"
)

// ErrStaleWrite is returned when a write carries a sequence number at or below
// the one already committed for the same key.
var ErrStaleWrite = errors.New("stale snapshot write")

// Record is one versioned snapshot write.
type Record struct {
	Namespace string
	Owner     string
	Seq       uint64
	Payload   []byte
}

// Store persists whole-state snapshots with sequence fencing.
type Store interface {
	Load(ctx context.Context, namespace, owner string) ([]byte, uint64, error)
	Save(ctx context.Context, rec Record) error
}

// Snapshot is the row layout of the snapshots table.
type Snapshot struct {
	Namespace string         `gorm:"column:namespace;primaryKey;size:64"`
	Owner     string         `gorm:"column:owner;primaryKey;size:64"`
	Seq       uint64         `gorm:"column:seq;not null"`
	Payload   datatypes.JSON `gorm:"column:payload;type:json"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
}

func (Snapshot) TableName() string {
	return "snapshots"
}

// GormStore implements Store on any GORM dialect that supports ON CONFLICT.
type GormStore struct {
	DB *gorm.DB
}

// AutoMigrate creates the snapshots table.
func (s *GormStore) AutoMigrate() error {
	return s.DB.AutoMigrate(&Snapshot{})
}

// Load returns the committed payload and sequence for a key. A missing key yields (nil, 0, nil).
func (s *GormStore) Load(ctx context.Context, namespace, owner string) ([]byte, uint64, error) {
	var row Snapshot
	err := s.DB.WithContext(ctx).Where("namespace = ? AND owner = ?", namespace, owner).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, nil
		}
		return nil, 0, err
	}
	return []byte(row.Payload), row.Seq, nil
}

// Save inserts the snapshot or overwrites it only when rec.Seq is newer than the stored one.
func (s *GormStore) Save(ctx context.Context, rec Record) error {
	now := time.Now()
	db := s.DB.WithContext(ctx)
	res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&Snapshot{
		Namespace: rec.Namespace,
		Owner:     rec.Owner,
		Seq:       rec.Seq,
		Payload:   datatypes.JSON(rec.Payload),
		UpdatedAt: now,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 1 {
		return nil
	}
	res = db.Model(&Snapshot{}).
		Where("namespace = ? AND owner = ? AND seq < ?", rec.Namespace, rec.Owner, rec.Seq).
		Updates(map[string]interface{}{
			"seq":        rec.Seq,
			"payload":    datatypes.JSON(rec.Payload),
			"updated_at": now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStaleWrite
	}
	return nil
}
