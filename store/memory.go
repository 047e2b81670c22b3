package store

import (
	"context"
	"sort"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shravani101006/serene-write/models"
)

// Memory is an in-process Store with the same semantics as Mongo. It
// backs the test suite and local development without a database.
type Memory struct {
	mu       sync.RWMutex
	users    []models.User
	posts    []models.Post
	comments []models.Comment
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) CreateUser(ctx context.Context, u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	u.Email = strings.ToLower(u.Email)
	m.users = append(m.users, *u)
	return nil
}

func (m *Memory) UserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := range m.users {
		if m.users[i].ID == id {
			u := m.users[i]
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	email = strings.ToLower(email)
	for i := range m.users {
		if m.users[i].Email == email {
			u := m.users[i]
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) UsersByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	want := make(map[primitive.ObjectID]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}

	var users []models.User
	for i := range m.users {
		if want[m.users[i].ID] {
			users = append(users, m.users[i])
		}
	}
	return users, nil
}

func (m *Memory) UsersByName(ctx context.Context, name string) ([]models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	name = strings.ToLower(name)
	var users []models.User
	for i := range m.users {
		if strings.Contains(strings.ToLower(m.users[i].Name), name) {
			users = append(users, m.users[i])
		}
	}
	return users, nil
}

func (m *Memory) UpdateUser(ctx context.Context, u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	u.Email = strings.ToLower(u.Email)
	for i := range m.users {
		if m.users[i].ID == u.ID {
			m.users[i] = *u
			return nil
		}
	}
	return ErrNotFound
}

func (m *Memory) CreatePost(ctx context.Context, p *models.Post) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.posts = append(m.posts, *p)
	return nil
}

func (m *Memory) PostByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := range m.posts {
		if m.posts[i].ID == id {
			p := m.posts[i]
			p.Likes = append([]primitive.ObjectID(nil), p.Likes...)
			p.Tags = append([]string(nil), p.Tags...)
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) UpdatePost(ctx context.Context, p *models.Post) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.posts {
		if m.posts[i].ID == p.ID {
			m.posts[i] = *p
			return nil
		}
	}
	return ErrNotFound
}

func (m *Memory) DeletePost(ctx context.Context, id primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.posts {
		if m.posts[i].ID == id {
			m.posts = append(m.posts[:i], m.posts[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (m *Memory) FindPosts(ctx context.Context, f PostFilter) ([]models.Post, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	authors := map[primitive.ObjectID]bool{}
	for _, id := range f.Authors {
		authors[id] = true
	}

	posts := []models.Post{}
	for i := range m.posts {
		p := m.posts[i]
		if f.Query != "" && !matchesQuery(&p, f.Query) {
			continue
		}
		if f.Mood != "" && p.Mood != f.Mood {
			continue
		}
		if f.Authors != nil && !authors[p.Author] {
			continue
		}
		posts = append(posts, p)
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return posts, nil
}

// matchesQuery mirrors the Mongo $or regex over title, tags and
// content.
func matchesQuery(p *models.Post, q string) bool {
	q = strings.ToLower(q)
	if strings.Contains(strings.ToLower(p.Title), q) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(p.Content), q)
}

func (m *Memory) CreateComment(ctx context.Context, c *models.Comment) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.comments = append(m.comments, *c)
	return nil
}

func (m *Memory) CommentByID(ctx context.Context, id primitive.ObjectID) (*models.Comment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := range m.comments {
		if m.comments[i].ID == id {
			c := m.comments[i]
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) DeleteComment(ctx context.Context, id primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.comments {
		if m.comments[i].ID == id {
			m.comments = append(m.comments[:i], m.comments[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (m *Memory) CommentsByPost(ctx context.Context, postID primitive.ObjectID) ([]models.Comment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	comments := []models.Comment{}
	for i := range m.comments {
		if m.comments[i].Post == postID {
			comments = append(comments, m.comments[i])
		}
	}
	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].CreatedAt.After(comments[j].CreatedAt)
	})
	return comments, nil
}

func (m *Memory) DeleteCommentsByPost(ctx context.Context, postID primitive.ObjectID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	kept := m.comments[:0]
	var deleted int64
	for i := range m.comments {
		if m.comments[i].Post == postID {
			deleted++
			continue
		}
		kept = append(kept, m.comments[i])
	}
	m.comments = kept
	return deleted, nil
}
