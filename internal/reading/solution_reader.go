package reading

import (
	"bufio"
	"bytes"
	"fmt"
	"log/slog"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/DavidKarlas/CsprojToVs2017/internal/filesystem"
	"github.com/DavidKarlas/CsprojToVs2017/internal/models"
	lru "github.com/hashicorp/golang-lru/v2"
)

const defaultSolutionCacheSize = 32

// Solution folders are declared as projects with this type GUID.
const solutionFolderTypeGUID = "2150E333-8FDC-42A3-9474-1A3956D46DE8"

var solutionProjectRegex = regexp.MustCompile(`^Project\("\{([0-9A-Fa-f-]+)\}"\)\s*=\s*"([^"]*)"\s*,\s*"([^"]*)"\s*,\s*"\{([0-9A-Fa-f-]+)\}"`)

// SolutionReader parses .sln files. Parsed solutions are cached by path so
// a solution reached twice in one run is shared rather than re-read.
type SolutionReader struct {
	fs         filesystem.FileSystem
	logger     *slog.Logger
	extensions models.ExtensionMap
	cache      *lru.Cache[string, *models.Solution]
}

// SolutionReaderOption configures a SolutionReader.
type SolutionReaderOption func(*SolutionReader)

// WithSolutionCacheSize sets how many parsed solutions are kept. Zero or a
// negative size disables caching.
func WithSolutionCacheSize(size int) SolutionReaderOption {
	return func(r *SolutionReader) {
		if size <= 0 {
			r.cache = nil
			return
		}
		cache, err := lru.New[string, *models.Solution](size)
		if err == nil {
			r.cache = cache
		}
	}
}

// NewSolutionReader creates a SolutionReader.
func NewSolutionReader(fs filesystem.FileSystem, extensions models.ExtensionMap, logger *slog.Logger, options ...SolutionReaderOption) *SolutionReader {
	cache, _ := lru.New[string, *models.Solution](defaultSolutionCacheSize)
	r := &SolutionReader{
		fs:         fs,
		logger:     logger,
		extensions: extensions,
		cache:      cache,
	}

	for _, option := range options {
		option(r)
	}

	return r
}

// Read parses the solution at path. Members are resolved relative to the
// solution's directory; solution folders and non-project entries such as
// web sites are skipped. A solution with no members is valid.
func (r *SolutionReader) Read(path string) (*models.Solution, error) {
	key := models.NormalizePath(path)
	if r.cache != nil {
		if solution, ok := r.cache.Get(key); ok {
			r.logger.Debug("Solution served from cache.", "path", path)
			return solution, nil
		}
	}

	data, err := r.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read solution file: %w", err)
	}

	solution, err := r.Parse(path, data)
	if err != nil {
		return nil, err
	}

	if r.cache != nil {
		r.cache.Add(key, solution)
	}
	return solution, nil
}

// Parse parses solution text read from path.
func (r *SolutionReader) Parse(path string, data []byte) (*models.Solution, error) {
	dir := filepath.Dir(path)
	var members []models.ProjectPath

	scanner := bufio.NewScanner(bytes.NewReader(trimBOM(data)))
	sawHeader := false
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "Microsoft Visual Studio Solution File") {
			sawHeader = true
			continue
		}

		m := solutionProjectRegex.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		typeGUID, include := m[1], m[3]
		if strings.EqualFold(typeGUID, solutionFolderTypeGUID) {
			continue
		}
		if !r.extensions.IsProject(filepath.Ext(include)) {
			r.logger.Debug("Skipping non-project solution entry.", "name", m[2], "path", include)
			continue
		}

		members = append(members, models.ProjectPath{
			Include:     include,
			ProjectFile: models.ResolveInclude(dir, include),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan solution %s: %w", path, err)
	}
	if !sawHeader {
		return nil, fmt.Errorf("failed to parse solution %s: missing solution file header", path)
	}

	return models.NewSolution(path, members), nil
}
