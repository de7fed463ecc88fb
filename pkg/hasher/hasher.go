package hasher

import (
	"crypto/sha256"
	"encoding/hex"
	"io"

	"github.com/spf13/afero"

	"github.com/aldebaro/hd-organizer/internal"
	"github.com/aldebaro/hd-organizer/pkg/logger"
)

// SumFile 以固定大小的块流式计算文件的 SHA-256，内存占用与文件大小无关
func SumFile(fs afero.Fs, path string, chunkSize int) (string, error) {
	if chunkSize <= 0 {
		chunkSize = internal.DefaultChunkSize
	}

	file, err := fs.Open(path)
	if err != nil {
		logger.Get().Debug().Err(err).Msgf("无法打开文件: %s", path)
		return "", err
	}
	defer file.Close()

	h := sha256.New()
	buf := make([]byte, chunkSize)
	if _, err := io.CopyBuffer(h, file, buf); err != nil {
		logger.Get().Debug().Err(err).Msgf("计算哈希失败: %s", path)
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
