package repositories

import (
	"slices"
	"sync"

	"blogpress/app/models"
)

// MemoryPostRepository keeps posts in an ordered slice.
type MemoryPostRepository struct {
	posts  []*models.Post
	nextID int
	mutex  sync.RWMutex
}

var _ PostRepository = (*MemoryPostRepository)(nil)

// NewMemoryPostRepository returns an empty repository whose first ID is 1.
func NewMemoryPostRepository() *MemoryPostRepository {
	return &MemoryPostRepository{
		posts:  make([]*models.Post, 0),
		nextID: 1,
	}
}

func (m *MemoryPostRepository) Create(post *models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	post.ID = m.nextID
	m.nextID++
	post.BeforeCreate()
	m.posts = append(m.posts, post.Clone())
	return nil
}

func (m *MemoryPostRepository) GetByID(id int) (*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	i := m.indexOf(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	return m.posts[i].Clone(), nil
}

func (m *MemoryPostRepository) List() ([]*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	posts := make([]*models.Post, 0, len(m.posts))
	for _, post := range m.posts {
		posts = append(posts, post.Clone())
	}
	return posts, nil
}

func (m *MemoryPostRepository) Update(post *models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	i := m.indexOf(post.ID)
	if i < 0 {
		return ErrNotFound
	}
	m.posts[i] = post.Clone()
	return nil
}

func (m *MemoryPostRepository) Delete(id int) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	i := m.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	m.posts = slices.Delete(m.posts, i, i+1)
	return nil
}

func (m *MemoryPostRepository) Close() error {
	return nil
}

func (m *MemoryPostRepository) indexOf(id int) int {
	return slices.IndexFunc(m.posts, func(p *models.Post) bool {
		return p.ID == id
	})
}
