package transcript

import (
	"chat-lens/domain/mimetypes"
	"chat-lens/errors"
	"fmt"
	"io"
	"os"

	"github.com/gabriel-vasile/mimetype"
	xunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const sniffSize = 3072

type fileReader struct {
	io.Reader
	io.Closer
}

// Open checks that path holds text and returns a reader decoding it to UTF-8.
// A byte order mark, UTF-8 or UTF-16, is honored and stripped.
func Open(path string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	head := make([]byte, sniffSize)
	n, err := io.ReadFull(file, head)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		_ = file.Close()
		return nil, fmt.Errorf("sniffing %s: %w", path, err)
	}
	if n > 0 {
		detected := mimetype.Detect(head[:n]).String()
		if _, zipped := mimetypes.Matches(detected, mimetypes.ApplicationZIP); zipped {
			_ = file.Close()
			return nil, fmt.Errorf("%s is a zip archive, extract the exported .txt first: %w", path, errors.ErrNotPlainText)
		}
		if !mimetypes.IsText(detected) {
			_ = file.Close()
			return nil, fmt.Errorf("%s is %s: %w", path, detected, errors.ErrNotPlainText)
		}
	}
	if _, err = file.Seek(0, io.SeekStart); err != nil {
		_ = file.Close()
		return nil, err
	}

	decoder := xunicode.BOMOverride(xunicode.UTF8.NewDecoder())
	return fileReader{Reader: transform.NewReader(file, decoder), Closer: file}, nil
}
