package portfolio

import (
	"context"
	"sync"
	"time"
)

// MockService implements Service in memory for unit tests.
type MockService struct {
	mu        sync.Mutex
	portfolio *Portfolio

	// Err, when set, is returned by every operation.
	Err error
}

// NewMockService creates a mock with no portfolio stored.
func NewMockService() *MockService {
	return &MockService{}
}

// Seed installs a portfolio document directly, bypassing GetOrCreate.
func (m *MockService) Seed(p *Portfolio) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.portfolio = clonePortfolio(p)
}

func (m *MockService) GetOrCreate(_ context.Context) (*Portfolio, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}

	if m.portfolio == nil {
		m.portfolio = DefaultPortfolio()
	}
	return clonePortfolio(m.portfolio), nil
}

func (m *MockService) Update(_ context.Context, params UpdateParams) (*Portfolio, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}

	if m.portfolio == nil {
		m.portfolio = &Portfolio{}
	}
	merge(m.portfolio, params)
	return clonePortfolio(m.portfolio), nil
}

func (m *MockService) AddSkill(_ context.Context, skill Skill) ([]Skill, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	if m.portfolio == nil {
		return nil, ErrNotFound
	}

	m.portfolio.Skills = append(m.portfolio.Skills, skill)
	m.portfolio.UpdatedAt = time.Now().UTC()
	return append([]Skill(nil), m.portfolio.Skills...), nil
}

func (m *MockService) AddExperience(_ context.Context, exp Experience) ([]Experience, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	if m.portfolio == nil {
		return nil, ErrNotFound
	}

	m.portfolio.Experience = append(m.portfolio.Experience, exp)
	m.portfolio.UpdatedAt = time.Now().UTC()
	return append([]Experience(nil), m.portfolio.Experience...), nil
}

func (m *MockService) AddEducation(_ context.Context, edu Education) ([]Education, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	if m.portfolio == nil {
		return nil, ErrNotFound
	}

	m.portfolio.Education = append(m.portfolio.Education, edu)
	m.portfolio.UpdatedAt = time.Now().UTC()
	return append([]Education(nil), m.portfolio.Education...), nil
}

// Clear removes the stored portfolio (useful for test cleanup).
func (m *MockService) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.portfolio = nil
}

func clonePortfolio(p *Portfolio) *Portfolio {
	if p == nil {
		return nil
	}
	cp := *p
	cp.Skills = append([]Skill(nil), p.Skills...)
	cp.Experience = append([]Experience(nil), p.Experience...)
	cp.Education = append([]Education(nil), p.Education...)
	if p.SocialLinks != nil {
		cp.SocialLinks = make(map[string]string, len(p.SocialLinks))
		for k, v := range p.SocialLinks {
			cp.SocialLinks[k] = v
		}
	}
	return &cp
}

// Compile-time interface check
var _ Service = (*MockService)(nil)
