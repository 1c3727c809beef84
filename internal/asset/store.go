package asset

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// 只认 data:image/<subtype>;base64,<data> 形状；不匹配按"未提供图片"处理
var imageDataURI = regexp.MustCompile(`^data:image/([A-Za-z0-9+/]+);base64,(.+)$`)

// Store 把内嵌 data-URI 的画布渲染图落到统一的资源根目录下
type Store struct {
	root    string
	baseURL string
	log     *zap.Logger
}

// NewStore 资源根目录不存在时自动创建；baseURL 是对外暴露的静态前缀（如 /uploads）
func NewStore(root, baseURL string, log *zap.Logger) (*Store, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create asset root: %w", err)
	}
	return &Store{
		root:    root,
		baseURL: strings.TrimRight(baseURL, "/"),
		log:     log,
	}, nil
}

// Save 解码并写盘，返回可回传客户端的引用路径。
// 空载荷、形状不符、base64 解不开都返回空引用而非错误；只有写盘失败才报错。
func (s *Store) Save(dataURI, name string) (string, error) {
	if dataURI == "" {
		return "", nil
	}
	m := imageDataURI.FindStringSubmatch(dataURI)
	if m == nil {
		return "", nil
	}
	raw, err := base64.StdEncoding.DecodeString(m[2])
	if err != nil {
		if s.log != nil {
			s.log.Debug("asset payload not decodable, treated as absent", zap.String("name", name))
		}
		return "", nil
	}
	name = filepath.Base(name)
	if err := os.WriteFile(filepath.Join(s.root, name), raw, 0o644); err != nil {
		return "", fmt.Errorf("write asset: %w", err)
	}
	return s.baseURL + "/" + name, nil
}

// Remove 幂等删除：文件已不存在不算错
func (s *Store) Remove(ref string) error {
	if ref == "" {
		return nil
	}
	if err := os.Remove(s.Path(ref)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Path 引用对应的磁盘路径；只取文件名，引用值无法越出资源根目录
func (s *Store) Path(ref string) string {
	return filepath.Join(s.root, filepath.Base(ref))
}
