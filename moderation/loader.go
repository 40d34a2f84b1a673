package moderation

import (
	"bufio"
	"bytes"
	"embed"
	"io/fs"
	"songster/errors"
	"strings"
)

//go:embed blocked/*.txt
var blockedFolder embed.FS

// BlockedData carries the result of the loading process including metadata for logging.
type BlockedData struct {
	Words     []string
	Languages []string
}

// Loader reads blocked words from embedded files, one word per line.
type Loader struct {
	fs fs.FS
}

func NewLoader(f fs.FS) *Loader {
	return &Loader{fs: f}
}

// NewEmbeddedLoader reads the word lists shipped with the binary.
func NewEmbeddedLoader() *Loader {
	return NewLoader(blockedFolder)
}

// LoadAll scans the given directory, identifying .txt files as language
// dictionaries and parsing their contents into a unique list of words.
func (l *Loader) LoadAll(path string) (*BlockedData, error) {
	entries, err := fs.ReadDir(l.fs, path)
	if err != nil {
		return nil, err
	}

	var languages []string
	uniqueWords := make(map[string]struct{})

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}

		// "fr.txt" -> "fr"
		languages = append(languages, strings.TrimSuffix(entry.Name(), ".txt"))

		data, err := fs.ReadFile(l.fs, path+"/"+entry.Name())
		if err != nil {
			return nil, err
		}

		// Scanner handles \n and \r\n alike
		scanner := bufio.NewScanner(bytes.NewReader(data))
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line != "" && !strings.HasPrefix(line, "#") {
				uniqueWords[strings.ToLower(line)] = struct{}{}
			}
		}
		if err := scanner.Err(); err != nil {
			return nil, err
		}
	}

	if len(uniqueWords) == 0 {
		return nil, errors.ErrEmptyWords
	}

	words := make([]string, 0, len(uniqueWords))
	for w := range uniqueWords {
		words = append(words, w)
	}

	return &BlockedData{
		Words:     words,
		Languages: languages,
	}, nil
}
