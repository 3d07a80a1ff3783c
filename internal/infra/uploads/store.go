// Package uploads хранит загруженные оператором изображения на локальном диске.
package uploads

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// URLPrefix путь, по которому файлы раздаются статикой
const URLPrefix = "/uploads/"

var (
	// ErrTooLarge возвращается, если файл больше лимита
	ErrTooLarge = errors.New("uploads: file too large")

	// ErrUnsupportedType возвращается для файлов, не являющихся изображениями
	ErrUnsupportedType = errors.New("uploads: unsupported file type")

	// ErrInternal возвращается при ошибках файловой системы
	ErrInternal = errors.New("uploads: internal error")
)

// sniffBytes сколько байт начала файла читается для определения типа
const sniffBytes = 3072

// allowedTypes расширение -> MIME тип, которому должно соответствовать содержимое
var allowedTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// Stored результат сохранения файла
type Stored struct {
	Filename string
	URL      string
}

// Store локальное хранилище загрузок
type Store struct {
	dir       string
	maxBytes  int64
	publicURL string
}

// NewStore создает хранилище и каталог для него
func NewStore(dir string, maxBytes int64, publicURL string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create dir %s: %v", ErrInternal, dir, err)
	}
	return &Store{
		dir:       dir,
		maxBytes:  maxBytes,
		publicURL: strings.TrimRight(publicURL, "/"),
	}, nil
}

// Dir каталог с файлами
func (s *Store) Dir() string {
	return s.dir
}

// MaxBytes лимит размера одного файла
func (s *Store) MaxBytes() int64 {
	return s.maxBytes
}

// Save сохраняет содержимое под именем <uuid><ext>, где ext берётся из исходного имени.
// Содержимое должно быть изображением того же типа, что и расширение.
func (s *Store) Save(originalName string, content io.Reader) (*Stored, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	expected, ok := allowedTypes[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedType, ext)
	}

	head := make([]byte, sniffBytes)
	n, err := io.ReadFull(content, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, fmt.Errorf("%w: read %s: %v", ErrInternal, originalName, err)
	}
	head = head[:n]

	detected := mimetype.Detect(head)
	if !detected.Is(expected) {
		return nil, fmt.Errorf("%w: %q content is %s", ErrUnsupportedType, ext, detected.String())
	}
	content = io.MultiReader(bytes.NewReader(head), content)

	filename := uuid.NewString() + ext
	path := filepath.Join(s.dir, filename)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("%w: create %s: %v", ErrInternal, filename, err)
	}

	written, err := io.Copy(f, io.LimitReader(content, s.maxBytes+1))
	closeErr := f.Close()

	if err == nil && written > s.maxBytes {
		err = ErrTooLarge
	}
	if err == nil && closeErr != nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		if errors.Is(err, ErrTooLarge) {
			return nil, ErrTooLarge
		}
		return nil, fmt.Errorf("%w: write %s: %v", ErrInternal, filename, err)
	}

	return &Stored{
		Filename: filename,
		URL:      s.publicURL + URLPrefix + filename,
	}, nil
}
