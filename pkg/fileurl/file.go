// Package fileurl file system path helpers
// Package fileurl 文件路径工具
package fileurl

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// IsExist reports whether the path exists
// IsExist 判断路径是否存在
func IsExist(dst string) bool {
	_, err := os.Stat(dst)
	return err == nil || !errors.Is(err, fs.ErrNotExist)
}

// CreatePath creates the parent directory of dst
// CreatePath 创建 dst 所在的目录
func CreatePath(dst string, perm os.FileMode) error {
	return os.MkdirAll(filepath.Dir(dst), perm)
}

// WriteFileIfMissing writes data to dst unless it exists, reports whether it wrote
// WriteFileIfMissing 当 dst 不存在时写入数据，返回是否写入
func WriteFileIfMissing(dst string, data []byte, perm os.FileMode) (bool, error) {
	if IsExist(dst) {
		return false, nil
	}
	if err := CreatePath(dst, 0754); err != nil {
		return false, err
	}
	if err := os.WriteFile(dst, data, perm); err != nil {
		return false, err
	}
	return true, nil
}
