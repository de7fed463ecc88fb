package comparator

import (
	"bytes"
	"errors"
	"io"

	"github.com/spf13/afero"

	"github.com/aldebaro/hd-organizer/internal"
	"github.com/aldebaro/hd-organizer/pkg/logger"
)

// ByteComparator 逐块读取两个文件并同步比较
// 遇到第一个不同的块立即返回，相等只有在两个文件同时到达 EOF 时才成立
type ByteComparator struct {
	fs        afero.Fs
	chunkSize int
}

func NewByteComparator(fs afero.Fs, chunkSize int) *ByteComparator {
	if chunkSize <= 0 {
		chunkSize = internal.DefaultChunkSize
	}
	return &ByteComparator{
		fs:        fs,
		chunkSize: chunkSize,
	}
}

func (c *ByteComparator) Compare(a, b string) Outcome {
	fa, err := c.fs.Open(a)
	if err != nil {
		logger.Get().Debug().Err(err).Msgf("无法打开文件: %s", a)
		return Failed
	}
	defer fa.Close()

	fb, err := c.fs.Open(b)
	if err != nil {
		logger.Get().Debug().Err(err).Msgf("无法打开文件: %s", b)
		return Failed
	}
	defer fb.Close()

	bufA := make([]byte, c.chunkSize)
	bufB := make([]byte, c.chunkSize)

	for {
		na, errA := io.ReadFull(fa, bufA)
		nb, errB := io.ReadFull(fb, bufB)

		if isReadError(errA) || isReadError(errB) {
			return Failed
		}

		if na != nb || !bytes.Equal(bufA[:na], bufB[:nb]) {
			return NotEqual
		}

		if errors.Is(errA, io.EOF) && errors.Is(errB, io.EOF) {
			return Equal
		}
	}
}

// isReadError 判断是否为真正的读取错误
// EOF 和块尾部的不完整读取属于正常结束
func isReadError(err error) bool {
	return err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF)
}
