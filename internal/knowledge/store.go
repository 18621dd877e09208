package knowledge

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jmorgan/resume-generator/internal/schemas"
	"github.com/jmorgan/resume-generator/internal/types"
)

// File layout within the knowledge-base directory.
const (
	profileFile    = "profile.json"
	experienceFile = "work_experience.json"
	skillsFile     = "skills.json"
	projectsDir    = "projects"
	templateFile   = "template.tex"

	// indexPrefix marks project files that are directory indexes, not projects.
	indexPrefix = "00_index"
)

// Store loads knowledge-base files from a base directory and caches the
// decoded results for the lifetime of the process. Concurrent readers share
// the cache safely; ClearCache forces the next load of each entity to re-read
// storage. A clear racing an in-flight generation run is benign: later loads
// in that run simply observe fresh data.
type Store struct {
	baseDir string

	mu        sync.RWMutex
	profile   *types.Profile
	positions []types.Position
	skills    *types.SkillCategories
	projects  []types.Project
	template  string
}

// NewStore creates a store rooted at baseDir. No files are read until the
// first load.
func NewStore(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// Document wrappers matching the knowledge-base file shapes.
type profileDoc struct {
	Profile types.Profile `json:"profile"`
}

type experienceDoc struct {
	WorkExperience struct {
		Positions []types.Position `json:"positions"`
	} `json:"work_experience"`
}

type skillsDoc struct {
	Skills struct {
		Categories types.SkillCategories `json:"categories"`
	} `json:"skills"`
}

type projectDoc struct {
	Project types.Project `json:"project"`
}

// LoadProfile returns the candidate profile. A missing file is tolerated and
// yields an empty profile.
func (s *Store) LoadProfile() (*types.Profile, error) {
	s.mu.RLock()
	if s.profile != nil {
		defer s.mu.RUnlock()
		return s.profile, nil
	}
	s.mu.RUnlock()

	var doc profileDoc
	found, err := s.readValidated(profileFile, schemas.Profile, &doc)
	if err != nil {
		return nil, err
	}
	_ = found // Absent profile decodes to the zero value.

	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = &doc.Profile
	return s.profile, nil
}

// LoadPositions returns all work experience positions in declared order.
// A missing file yields an empty slice; the resulting empty experience
// section is reported through metadata, not an error.
func (s *Store) LoadPositions() ([]types.Position, error) {
	s.mu.RLock()
	if s.positions != nil {
		defer s.mu.RUnlock()
		return s.positions, nil
	}
	s.mu.RUnlock()

	var doc experienceDoc
	if _, err := s.readValidated(experienceFile, schemas.WorkExperience, &doc); err != nil {
		return nil, err
	}
	positions := doc.WorkExperience.Positions
	if positions == nil {
		positions = []types.Position{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.positions = positions
	return s.positions, nil
}

// LoadSkillCategories returns skill categories keyed by category identifier,
// preserving declared key order.
func (s *Store) LoadSkillCategories() (*types.SkillCategories, error) {
	s.mu.RLock()
	if s.skills != nil {
		defer s.mu.RUnlock()
		return s.skills, nil
	}
	s.mu.RUnlock()

	var doc skillsDoc
	if _, err := s.readValidated(skillsFile, schemas.Skills, &doc); err != nil {
		return nil, err
	}
	cats := doc.Skills.Categories
	if cats.ByKey == nil {
		cats.ByKey = make(map[string]types.SkillCategory)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.skills = &cats
	return s.skills, nil
}

// LoadProjects returns all projects in sorted filename order, with each
// project's repository URL derived from the profile's GitHub handle and a
// slug of the project title. A missing projects directory yields an empty
// slice.
func (s *Store) LoadProjects() ([]types.Project, error) {
	s.mu.RLock()
	if s.projects != nil {
		defer s.mu.RUnlock()
		return s.projects, nil
	}
	s.mu.RUnlock()

	profile, err := s.LoadProfile()
	if err != nil {
		return nil, err
	}

	dir := filepath.Join(s.baseDir, projectsDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.projects = []types.Project{}
			return s.projects, nil
		}
		return nil, &LoadError{Path: dir, Message: "failed to list projects directory", Cause: err}
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") || strings.HasPrefix(name, indexPrefix) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	projects := make([]types.Project, 0, len(names))
	for _, name := range names {
		var doc projectDoc
		if _, err := s.readValidated(filepath.Join(projectsDir, name), schemas.Project, &doc); err != nil {
			return nil, err
		}
		project := doc.Project
		project.RepoURL = RepoURL(profile.GitHub, project.Title)
		projects = append(projects, project)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects = projects
	return s.projects, nil
}

// LoadTemplate returns the raw LaTeX template text. Unlike the data files,
// a missing template is an error: without it there is nothing to splice into.
func (s *Store) LoadTemplate() (string, error) {
	s.mu.RLock()
	if s.template != "" {
		defer s.mu.RUnlock()
		return s.template, nil
	}
	s.mu.RUnlock()

	path := filepath.Join(s.baseDir, templateFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &LoadError{Path: path, Message: "failed to read template", Cause: err}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.template = string(data)
	return s.template, nil
}

// LoadAll issues the five knowledge-base loads concurrently and joins before
// returning. The loads are mutually independent files, so no ordering is
// imposed among them; selection begins only after all complete.
func (s *Store) LoadAll(ctx context.Context) (*types.KnowledgeBase, error) {
	kb := &types.KnowledgeBase{}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		profile, err := s.LoadProfile()
		if err == nil {
			kb.Profile = *profile
		}
		return err
	})
	g.Go(func() error {
		var err error
		kb.Positions, err = s.LoadPositions()
		return err
	})
	g.Go(func() error {
		var err error
		kb.Skills, err = s.LoadSkillCategories()
		return err
	})
	g.Go(func() error {
		var err error
		kb.Projects, err = s.LoadProjects()
		return err
	})
	g.Go(func() error {
		var err error
		kb.Template, err = s.LoadTemplate()
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return kb, nil
}

// ClearCache drops all cached knowledge-base data, forcing the next load of
// each entity to re-read storage.
func (s *Store) ClearCache() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = nil
	s.positions = nil
	s.skills = nil
	s.projects = nil
	s.template = ""
}

// readValidated reads a JSON file relative to the base directory, validates
// it against the named schema, and decodes it into out. Returns false with no
// error when the file does not exist.
func (s *Store) readValidated(relPath, schemaName string, out any) (bool, error) {
	path := filepath.Join(s.baseDir, relPath)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, &LoadError{Path: path, Message: "failed to read file", Cause: err}
	}

	if err := schemas.Validate(schemaName, data); err != nil {
		return false, &LoadError{Path: path, Message: "schema validation failed", Cause: err}
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, &LoadError{Path: path, Message: "failed to decode JSON", Cause: err}
	}

	return true, nil
}
