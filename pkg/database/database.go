package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/aldebaro/hd-organizer/pkg/index"
	"github.com/aldebaro/hd-organizer/pkg/logger"
)

// IndexEntry 候选索引的一条持久化记录
// KeyHash 是候选键 (文件名|扩展名|大小) 的 xxHash 指纹，用于快速查询
type IndexEntry struct {
	ID        int64  `gorm:"primaryKey"`
	KeyHash   string `gorm:"index;not null"`
	Filename  string `gorm:"not null"`
	Extension string
	Size      int64  `gorm:"not null"`
	Path      string `gorm:"not null"`
}

func (IndexEntry) TableName() string {
	return "index_entries"
}

type Database struct {
	db *gorm.DB
}

func New(dbPath string) (*Database, error) {
	expandedPath, err := expandPath(dbPath)
	if err != nil {
		logger.Get().Error().Err(err).Msg("扩展数据库路径失败")
		return nil, err
	}

	logger.Get().Info().Msgf("初始化数据库，路径: %s", expandedPath)

	if err := os.MkdirAll(filepath.Dir(expandedPath), 0755); err != nil {
		logger.Get().Error().Err(err).Msgf("创建数据库目录失败: %s", filepath.Dir(expandedPath))
		return nil, err
	}

	dsn := expandedPath + "?_journal_mode=WAL"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		logger.Get().Error().Err(err).Msg("打开数据库连接失败")
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Get().Error().Err(err).Msg("获取数据库连接失败")
		return nil, err
	}

	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	if err := db.AutoMigrate(&IndexEntry{}); err != nil {
		logger.Get().Error().Err(err).Msg("创建数据库表失败")
		return nil, err
	}

	return &Database{db: db}, nil
}

func expandPath(path string) (string, error) {
	if len(path) >= 2 && path[0] == '~' && (path[1] == '/' || path[1] == '\\') {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, path[2:]), nil
	}
	return path, nil
}

func keyFingerprint(k index.Key) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(
		fmt.Sprintf("%s|%s|%d", k.Filename, k.Extension, k.Size)))
}

// SaveIndex 整体替换已存储的索引
// 索引每次扫描重新构建，不做增量合并
func (d *Database) SaveIndex(ix *index.Index) error {
	return d.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&IndexEntry{}).Error; err != nil {
			logger.Get().Error().Err(err).Msg("清空旧索引失败")
			return err
		}

		var entries []IndexEntry
		for _, key := range ix.Keys() {
			fp := keyFingerprint(key)
			for _, path := range ix.Paths(key) {
				entries = append(entries, IndexEntry{
					KeyHash:   fp,
					Filename:  key.Filename,
					Extension: key.Extension,
					Size:      key.Size,
					Path:      path,
				})
			}
		}

		if len(entries) == 0 {
			return nil
		}

		if err := tx.CreateInBatches(entries, 500).Error; err != nil {
			logger.Get().Error().Err(err).Msg("写入索引失败")
			return err
		}

		logger.Get().Info().Msgf("索引已保存，共 %d 条记录", len(entries))
		return nil
	})
}

// LoadIndex 从数据库重建候选索引
func (d *Database) LoadIndex() (*index.Index, error) {
	var entries []IndexEntry
	if err := d.db.Order("id").Find(&entries).Error; err != nil {
		logger.Get().Error().Err(err).Msg("读取索引失败")
		return nil, err
	}

	ix := index.New()
	for _, e := range entries {
		ix.Add(index.Key{
			Filename:  e.Filename,
			Extension: e.Extension,
			Size:      e.Size,
		}, e.Path)
	}

	logger.Get().Info().Msgf("索引加载完成，共 %d 个文件", ix.TotalFiles())
	return ix, nil
}

// Lookup 按候选键查询已存储的路径
func (d *Database) Lookup(key index.Key) ([]string, error) {
	var entries []IndexEntry
	if err := d.db.Where("key_hash = ? AND filename = ? AND extension = ? AND size = ?",
		keyFingerprint(key), key.Filename, key.Extension, key.Size).
		Order("id").Find(&entries).Error; err != nil {
		return nil, err
	}

	paths := make([]string, len(entries))
	for i, e := range entries {
		paths[i] = e.Path
	}
	return paths, nil
}

func (d *Database) Close() error {
	logger.Get().Info().Msg("关闭数据库连接")
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
