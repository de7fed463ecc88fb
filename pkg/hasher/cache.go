package hasher

import (
	"github.com/spf13/afero"

	"github.com/aldebaro/hd-organizer/pkg/logger"
)

type cacheEntry struct {
	sum string
	err error
}

// Cache 单次运行内的路径到摘要的缓存
// 每次分类创建一个新实例，不做跨运行复用：磁盘上的文件一旦变化，
// 旧缓存会导致错误分类
// 计算失败的结果同样缓存，失败的文件只读一次，且与任何文件都不相等
type Cache struct {
	fs        afero.Fs
	chunkSize int
	entries   map[string]cacheEntry
}

func NewCache(fs afero.Fs, chunkSize int) *Cache {
	return &Cache{
		fs:        fs,
		chunkSize: chunkSize,
		entries:   make(map[string]cacheEntry),
	}
}

// Sum 返回文件的 SHA-256 摘要，同一路径的重复调用只读一次文件
func (c *Cache) Sum(path string) (string, error) {
	if e, ok := c.entries[path]; ok {
		logger.Get().Trace().Msgf("命中摘要缓存: %s", path)
		return e.sum, e.err
	}

	sum, err := SumFile(c.fs, path, c.chunkSize)
	c.entries[path] = cacheEntry{sum: sum, err: err}
	return sum, err
}

// Len 返回已缓存的路径数
func (c *Cache) Len() int {
	return len(c.entries)
}
