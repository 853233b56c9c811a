package lexicon

import (
	"bufio"
	"bytes"
	"chat-lens/errors"
	"io/fs"
	"path"
	"sort"
	"strings"
)

// WordLists maps a language code to its words.
type WordLists map[string][]string

// ListLoader reads one word list per language from "<lang>.txt" files.
type ListLoader struct {
	fs fs.FS
}

func NewListLoader(f fs.FS) *ListLoader {
	return &ListLoader{fs: f}
}

// LoadAll reads every .txt file of dir, one word or phrase per line.
// Blank lines and lines starting with '#' are skipped.
func (l *ListLoader) LoadAll(dir string) (WordLists, error) {
	entries, err := fs.ReadDir(l.fs, dir)
	if err != nil {
		return nil, err
	}

	lists := make(WordLists)
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".txt" {
			continue
		}
		lang := strings.TrimSuffix(entry.Name(), ".txt")

		data, err := fs.ReadFile(l.fs, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}

		// Scanner copes with both \n and \r\n endings
		scanner := bufio.NewScanner(bytes.NewReader(data))
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line != "" && !strings.HasPrefix(line, "#") {
				lists[lang] = append(lists[lang], line)
			}
		}
		if err := scanner.Err(); err != nil {
			return nil, err
		}
	}

	if len(lists) == 0 {
		return nil, errors.ErrEmptyWordList
	}
	return lists, nil
}

// Languages lists the loaded language codes, sorted.
func (w WordLists) Languages() []string {
	langs := make([]string, 0, len(w))
	for lang := range w {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// Union merges every list, without duplicates.
func (w WordLists) Union() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, lang := range w.Languages() {
		for _, word := range w[lang] {
			if _, ok := seen[word]; !ok {
				seen[word] = struct{}{}
				out = append(out, word)
			}
		}
	}
	return out
}
