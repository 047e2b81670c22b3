package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shravani101006/serene-write/service"
)

func seedSearchPosts(t *testing.T) *service.Service {
	t.Helper()
	svc, _ := newTestService(t)
	ann := registerUser(t, svc, "Ann Onymous", "a@x.com")
	bob := registerUser(t, svc, "Bob", "b@x.com")

	createPost(t, svc, ann, service.CreatePostInput{
		Title: "Morning pages", Tags: []string{"journal"}, Mood: "Calm",
	})
	time.Sleep(2 * time.Millisecond)
	createPost(t, svc, ann, service.CreatePostInput{
		Title: "Deadline week", Content: "so much coffee", Mood: "Anxious",
	})
	time.Sleep(2 * time.Millisecond)
	createPost(t, svc, bob, service.CreatePostInput{
		Title: "Weekend hike", Tags: []string{"outdoors", "journal"}, Mood: "Happy",
	})
	return svc
}

func TestSearchByQuerySubstring(t *testing.T) {
	svc := seedSearchPosts(t)

	// Title match, case-insensitive.
	posts, err := svc.Search(context.Background(), "MORNING", "", "")
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "Morning pages", posts[0].Title)

	// Tag match.
	posts, err = svc.Search(context.Background(), "journal", "", "")
	require.NoError(t, err)
	assert.Len(t, posts, 2)

	// Content match.
	posts, err = svc.Search(context.Background(), "coffee", "", "")
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "Deadline week", posts[0].Title)
}

func TestSearchByMood(t *testing.T) {
	svc := seedSearchPosts(t)

	posts, err := svc.Search(context.Background(), "", "", "Calm")
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "Morning pages", posts[0].Title)

	posts, err = svc.Search(context.Background(), "", "", "Furious")
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestSearchByAuthorName(t *testing.T) {
	svc := seedSearchPosts(t)

	posts, err := svc.Search(context.Background(), "", "ann", "")
	require.NoError(t, err)
	assert.Len(t, posts, 2)

	// No matching user means no posts, never the unfiltered feed.
	posts, err = svc.Search(context.Background(), "", "NonexistentName", "")
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestSearchByAuthorID(t *testing.T) {
	svc, _ := newTestService(t)
	ann := registerUser(t, svc, "Ann", "a@x.com")
	bob := registerUser(t, svc, "Bob", "b@x.com")
	createPost(t, svc, ann, service.CreatePostInput{Title: "Ann's"})
	createPost(t, svc, bob, service.CreatePostInput{Title: "Bob's"})

	posts, err := svc.Search(context.Background(), "", ann.ID.Hex(), "")
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "Ann's", posts[0].Title)
}

func TestSearchFiltersCombineWithAND(t *testing.T) {
	svc := seedSearchPosts(t)

	posts, err := svc.Search(context.Background(), "journal", "ann", "Calm")
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "Morning pages", posts[0].Title)

	// Same query and author, contradictory mood.
	posts, err = svc.Search(context.Background(), "journal", "ann", "Happy")
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestSearchWithoutFiltersIsFeed(t *testing.T) {
	svc := seedSearchPosts(t)

	posts, err := svc.Search(context.Background(), "", "", "")
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "Weekend hike", posts[0].Title)
	assert.Equal(t, "Morning pages", posts[2].Title)
}
