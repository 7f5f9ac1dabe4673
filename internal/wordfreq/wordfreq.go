// Package wordfreq downloads the wordfreq dataset and extracts plain word lists from it.
package wordfreq

import (
	"archive/zip"
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/verte-zerg/wordsift/internal/wordlist"
)

// pypiEndpoint is the package index metadata URL; tests point it at a local server.
var pypiEndpoint = "https://pypi.org/pypi/wordfreq/json"

const (
	binFormat = "cB"

	minWordLen = 2
	maxWordLen = 20
)

// Wheel describes a cached wordfreq wheel.
type Wheel struct {
	Version  string
	Path     string
	Filename string
	Cached   bool
}

// wordEntry is one word with its frequency in centibels (0 is the most frequent bin).
type wordEntry struct {
	word string
	cB   int
}

type pypiFile struct {
	URL         string `json:"url"`
	Filename    string `json:"filename"`
	Packagetype string `json:"packagetype"`
}

type pypiResponse struct {
	Info struct {
		Version string `json:"version"`
	} `json:"info"`
	URLs []pypiFile `json:"urls"`
}

// DownloadLatestWheel fetches the latest wordfreq wheel into cacheDir.
func DownloadLatestWheel(ctx context.Context, cacheDir string) (Wheel, error) {
	if cacheDir == "" {
		return Wheel{}, fmt.Errorf("cache directory is required")
	}
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return Wheel{}, fmt.Errorf("failed to create cache dir: %w", err)
	}

	resp, err := httpRequest(ctx, pypiEndpoint)
	if err != nil {
		return Wheel{}, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return Wheel{}, fmt.Errorf("unexpected pypi status: %s", resp.Status)
	}

	var payload pypiResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Wheel{}, fmt.Errorf("failed to decode pypi response: %w", err)
	}
	if payload.Info.Version == "" {
		return Wheel{}, fmt.Errorf("missing version in pypi response")
	}

	url, filename := pickWheelURL(payload.URLs)
	if url == "" || filename == "" {
		return Wheel{}, fmt.Errorf("no suitable wordfreq wheel found")
	}

	destPath := filepath.Join(cacheDir, filename)
	if _, err := os.Stat(destPath); err == nil {
		return Wheel{Version: payload.Info.Version, Path: destPath, Filename: filename, Cached: true}, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return Wheel{}, fmt.Errorf("failed to stat cached wheel: %w", err)
	}

	tmpFile, err := os.CreateTemp(cacheDir, "wordfreq-*.whl")
	if err != nil {
		return Wheel{}, fmt.Errorf("failed to create temp wheel: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	wheelResp, err := httpRequest(ctx, url)
	if err != nil {
		return Wheel{}, err
	}
	defer func() {
		_ = wheelResp.Body.Close()
	}()
	if wheelResp.StatusCode != http.StatusOK {
		return Wheel{}, fmt.Errorf("unexpected wheel status: %s", wheelResp.Status)
	}

	if _, err := io.Copy(tmpFile, wheelResp.Body); err != nil {
		return Wheel{}, fmt.Errorf("failed to download wheel: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return Wheel{}, fmt.Errorf("failed to close temp wheel: %w", err)
	}
	if err := os.Rename(tmpPath, destPath); err != nil {
		return Wheel{}, fmt.Errorf("failed to move wheel into cache: %w", err)
	}

	return Wheel{Version: payload.Info.Version, Path: destPath, Filename: filename, Cached: false}, nil
}

// ExtractWordlist extracts a word list from the wheel for the given language and type.
func ExtractWordlist(wheelPath, lang, listType string, limit int) ([]string, error) {
	if wheelPath == "" {
		return nil, fmt.Errorf("wheel path is required")
	}
	lang = normalizeLang(lang)
	if lang == "" {
		return nil, fmt.Errorf("unsupported language")
	}
	if listType == "" {
		return nil, fmt.Errorf("word list type is required")
	}
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be greater than 0")
	}

	entries, err := readWordEntries(wheelPath, lang, listType)
	if err != nil {
		return nil, err
	}

	keep := wordlist.FilterForLang(lang)
	words := make([]string, 0, limit)
	seen := make(map[string]struct{})
	for _, entry := range entries {
		if _, ok := seen[entry.word]; ok || !isWordlistWord(entry.word) || !keep(entry.word) {
			continue
		}
		seen[entry.word] = struct{}{}
		words = append(words, entry.word)
		if len(words) >= limit {
			break
		}
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("no words found for %s/%s", lang, listType)
	}
	return words, nil
}

// WriteAttribution writes attribution and license files based on the wheel.
func WriteAttribution(wheelPath, outDir string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}
	attrPath := filepath.Join(outDir, "ATTRIBUTION.txt")
	attrText := strings.Join([]string{
		"wordsift word lists generated from the wordfreq dataset.",
		"Source: https://github.com/rspeer/wordfreq",
		"Data license: Creative Commons Attribution-ShareAlike 4.0 International (CC BY-SA 4.0).",
		"This word list is licensed CC BY-SA 4.0: https://creativecommons.org/licenses/by-sa/4.0/",
		"Changes were made: kept alphabetic words of 2 to 20 letters, most frequent first, truncated to the requested size.",
		"Includes data from Google Books Ngrams (acknowledgement requested by wordfreq): https://books.google.com/ngrams",
		"Includes data from the Leeds Internet Corpus: https://corpus.leeds.ac.uk/",
		"For other upstream sources, see the wordfreq project documentation.",
		"Please attribute wordfreq when redistributing derived word lists.",
		"",
	}, "\n")
	if err := os.WriteFile(attrPath, []byte(attrText), 0o644); err != nil {
		return fmt.Errorf("failed to write attribution: %w", err)
	}

	licenseText, err := readWheelLicense(wheelPath)
	if err != nil {
		return err
	}
	licensePath := filepath.Join(outDir, "LICENSE.txt")
	if err := os.WriteFile(licensePath, licenseText, 0o644); err != nil {
		return fmt.Errorf("failed to write license: %w", err)
	}
	dataLicensePath := filepath.Join(outDir, "DATA_LICENSE.txt")
	dataLicenseText := strings.Join([]string{
		"This word list is licensed under CC BY-SA 4.0.",
		"https://creativecommons.org/licenses/by-sa/4.0/",
		"",
	}, "\n")
	if err := os.WriteFile(dataLicensePath, []byte(dataLicenseText), 0o644); err != nil {
		return fmt.Errorf("failed to write data license: %w", err)
	}
	return nil
}

func httpRequest(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	client := &http.Client{Timeout: 60 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	return resp, nil
}

func pickWheelURL(urls []pypiFile) (string, string) {
	for _, u := range urls {
		if u.Packagetype != "bdist_wheel" {
			continue
		}
		if strings.HasSuffix(u.Filename, "py3-none-any.whl") {
			return u.URL, u.Filename
		}
	}
	for _, u := range urls {
		if u.Packagetype == "bdist_wheel" {
			return u.URL, u.Filename
		}
	}
	return "", ""
}

func normalizeLang(lang string) string {
	return strings.ToLower(strings.TrimSpace(lang))
}

func readWordEntries(wheelPath, lang, listType string) ([]wordEntry, error) {
	reader, err := zip.OpenReader(wheelPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open wheel: %w", err)
	}
	defer func() {
		_ = reader.Close()
	}()

	dataFile := selectDataFile(reader.File, lang, listType)
	if dataFile == nil {
		return nil, fmt.Errorf("no data file found for %s/%s", lang, listType)
	}

	rc, err := dataFile.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open data file: %w", err)
	}
	defer func() {
		_ = rc.Close()
	}()

	decoded, err := decodeMsgpackStream(dataFile.Name, rc)
	if err != nil {
		return nil, err
	}
	if len(decoded) == 0 {
		return nil, fmt.Errorf("wordfreq data contained no entries")
	}
	return decoded, nil
}

// selectDataFile finds the data file for lang and listType, preferring the
// gzip-compressed variant when both exist.
func selectDataFile(files []*zip.File, lang, listType string) *zip.File {
	listType = strings.ToLower(listType)
	var found *zip.File
	for _, file := range files {
		fileLang, fileType := parseLanguageAndType(file.Name)
		if fileLang != lang || fileType != listType {
			continue
		}
		if found == nil || strings.HasSuffix(strings.ToLower(file.Name), ".gz") {
			found = file
		}
	}
	return found
}

// LanguageTypes maps language codes to available list types.
type LanguageTypes map[string]map[string]struct{}

// ListLanguageTypes returns available languages and list types in the wheel.
func ListLanguageTypes(wheelPath string) (LanguageTypes, error) {
	if wheelPath == "" {
		return nil, fmt.Errorf("wheel path is required")
	}
	reader, err := zip.OpenReader(wheelPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open wheel: %w", err)
	}
	defer func() {
		_ = reader.Close()
	}()

	langs := make(LanguageTypes)
	for _, file := range reader.File {
		lang, listType := parseLanguageAndType(file.Name)
		if lang == "" || listType == "" {
			continue
		}
		if _, ok := langs[lang]; !ok {
			langs[lang] = make(map[string]struct{})
		}
		langs[lang][listType] = struct{}{}
	}
	if len(langs) == 0 {
		return nil, fmt.Errorf("no languages found in wordfreq wheel")
	}
	return langs, nil
}

// LanguagesFromTypes returns sorted language codes from the map.
func LanguagesFromTypes(types LanguageTypes) []string {
	out := make([]string, 0, len(types))
	for lang := range types {
		out = append(out, lang)
	}
	sort.Strings(out)
	return out
}

func parseLanguageAndType(name string) (string, string) {
	name = strings.ToLower(name)
	if !strings.HasPrefix(name, "wordfreq/data/") {
		return "", ""
	}
	base := strings.TrimPrefix(name, "wordfreq/data/")
	base = trimWordfreqSuffixes(base)
	if base == "" {
		return "", ""
	}
	if strings.HasPrefix(base, "large_") {
		return strings.TrimPrefix(base, "large_"), "large"
	}
	if strings.HasPrefix(base, "small_") {
		return strings.TrimPrefix(base, "small_"), "small"
	}
	if strings.HasPrefix(base, "wordfreq-") {
		base = strings.TrimPrefix(base, "wordfreq-")
		if strings.HasSuffix(base, "-large") {
			return strings.TrimSuffix(base, "-large"), "large"
		}
		if strings.HasSuffix(base, "-small") {
			return strings.TrimSuffix(base, "-small"), "small"
		}
	}
	return "", ""
}

func trimWordfreqSuffixes(name string) string {
	switch {
	case strings.HasSuffix(name, ".msgpack.gz"):
		return strings.TrimSuffix(name, ".msgpack.gz")
	case strings.HasSuffix(name, ".msgpack"):
		return strings.TrimSuffix(name, ".msgpack")
	case strings.HasSuffix(name, ".gz"):
		return strings.TrimSuffix(name, ".gz")
	default:
		return name
	}
}

func decodeMsgpackStream(name string, r io.Reader) ([]wordEntry, error) {
	if strings.HasSuffix(name, ".gz") {
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer func() {
			_ = gz.Close()
		}()
		r = gz
	}
	return decodeBins(r)
}

// decodeBins reads the cB layout: an array whose first element is a header
// map and whose remaining elements are word bins, most frequent first. Bin i
// holds words at -i centibels.
func decodeBins(r io.Reader) ([]wordEntry, error) {
	dec := msgpack.NewDecoder(r)
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return nil, fmt.Errorf("failed to decode wordfreq data: %w", err)
	}
	if n < 1 {
		return nil, fmt.Errorf("wordfreq data has no header")
	}
	var header map[string]interface{}
	if err := dec.Decode(&header); err != nil {
		return nil, fmt.Errorf("failed to decode wordfreq header: %w", err)
	}
	if format, _ := header["format"].(string); format != binFormat {
		return nil, fmt.Errorf("unsupported wordfreq format %q", format)
	}

	var entries []wordEntry
	for i := 0; i < n-1; i++ {
		var bin []string
		if err := dec.Decode(&bin); err != nil {
			return nil, fmt.Errorf("failed to decode wordfreq bin %d: %w", i, err)
		}
		for _, word := range bin {
			entries = append(entries, wordEntry{word: word, cB: -i})
		}
	}
	return entries, nil
}

// isWordlistWord keeps purely alphabetic words of a playable length.
func isWordlistWord(word string) bool {
	length := utf8.RuneCountInString(word)
	if length < minWordLen || length > maxWordLen {
		return false
	}
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func readWheelLicense(wheelPath string) ([]byte, error) {
	reader, err := zip.OpenReader(wheelPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open wheel for license: %w", err)
	}
	defer func() {
		_ = reader.Close()
	}()

	for _, file := range reader.File {
		name := strings.ToLower(file.Name)
		if !strings.Contains(name, "license") {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open license: %w", err)
		}
		defer func() {
			_ = rc.Close()
		}()
		data, err := io.ReadAll(rc)
		if err != nil {
			return nil, fmt.Errorf("failed to read license: %w", err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("license file not found in wheel")
}
