package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shravani101006/serene-write/auth"
	"github.com/shravani101006/serene-write/handlers"
	"github.com/shravani101006/serene-write/service"
	"github.com/shravani101006/serene-write/store"
)

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.NewMemory()
	tokens := auth.NewTokenService("test-secret", st)
	svc := service.New(st)
	h := handlers.New(svc, tokens)

	r := gin.New()
	h.Routes(r)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func registerAndLogin(t *testing.T, r *gin.Engine, name, email string) string {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name": name, "email": email, "password": "pw123456",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": email, "password": "pw123456",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	token, _ := decode(t, w)["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func createPost(t *testing.T, r *gin.Engine, token string, body gin.H) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/post", token, body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	id, _ := decode(t, w)["_id"].(string)
	require.NotEmpty(t, id)
	return id
}

func TestRegisterLoginPostAndViews(t *testing.T) {
	r := newTestServer(t)
	token := registerAndLogin(t, r, "Ann", "a@x.com")

	postID := createPost(t, r, token, gin.H{
		"title": "Hello", "tags": []string{"x"}, "mood": "Happy",
	})

	// Appears in the feed, views still zero.
	w := doJSON(t, r, http.MethodGet, "/api/post", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var feed []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &feed))
	require.Len(t, feed, 1)
	assert.Equal(t, "Hello", feed[0]["title"])
	assert.Equal(t, "Happy", feed[0]["mood"])
	assert.Equal(t, float64(0), feed[0]["views"])

	author, ok := feed[0]["author"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Ann", author["name"])

	// Each single-post fetch bumps the counter.
	w = doJSON(t, r, http.MethodGet, "/api/post/"+postID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decode(t, w)["views"])

	w = doJSON(t, r, http.MethodGet, "/api/post/"+postID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(2), decode(t, w)["views"])
}

func TestLikeToggleScenario(t *testing.T) {
	r := newTestServer(t)
	annToken := registerAndLogin(t, r, "Ann", "a@x.com")
	bobToken := registerAndLogin(t, r, "Bob", "b@x.com")

	postID := createPost(t, r, annToken, gin.H{"title": "Hello"})

	w := doJSON(t, r, http.MethodPost, "/api/like/"+postID, bobToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decode(t, w)["likes"])

	w = doJSON(t, r, http.MethodPost, "/api/like/"+postID, bobToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), decode(t, w)["likes"])

	w = doJSON(t, r, http.MethodGet, "/api/like/"+postID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	likers, ok := decode(t, w)["likers"].([]any)
	require.True(t, ok)
	assert.Empty(t, likers)
}

func TestDeletePostCascade(t *testing.T) {
	r := newTestServer(t)
	token := registerAndLogin(t, r, "Ann", "a@x.com")

	postID := createPost(t, r, token, gin.H{"title": "Hello"})

	w := doJSON(t, r, http.MethodPost, "/api/comment/"+postID, token, gin.H{"text": "first!"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	commentID, _ := decode(t, w)["_id"].(string)
	require.NotEmpty(t, commentID)

	w = doJSON(t, r, http.MethodDelete, "/api/post/"+postID, token, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/comment/post/"+postID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var comments []any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &comments))
	assert.Empty(t, comments)

	w = doJSON(t, r, http.MethodDelete, "/api/comment/"+commentID, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStatusMapping(t *testing.T) {
	r := newTestServer(t)
	annToken := registerAndLogin(t, r, "Ann", "a@x.com")
	bobToken := registerAndLogin(t, r, "Bob", "b@x.com")
	postID := createPost(t, r, annToken, gin.H{"title": "Hello"})

	tests := []struct {
		name    string
		method  string
		path    string
		token   string
		body    gin.H
		want    int
		message string
	}{
		{"create post without token", http.MethodPost, "/api/post", "", gin.H{"title": "x"}, http.StatusUnauthorized, "No token"},
		{"create post with bad token", http.MethodPost, "/api/post", "bogus", gin.H{"title": "x"}, http.StatusUnauthorized, "Invalid token"},
		{"update not owner", http.MethodPut, "/api/post/" + postID, bobToken, gin.H{"title": "x"}, http.StatusForbidden, "Forbidden"},
		{"delete not owner", http.MethodDelete, "/api/post/" + postID, bobToken, nil, http.StatusForbidden, "Forbidden"},
		{"missing title", http.MethodPost, "/api/post", annToken, gin.H{"content": "x"}, http.StatusBadRequest, "Title is required"},
		{"unknown post", http.MethodGet, "/api/post/64b0c8f2a1b2c3d4e5f60718", "", nil, http.StatusNotFound, "Not found"},
		{"malformed delete id", http.MethodDelete, "/api/post/garbage", annToken, nil, http.StatusBadRequest, "Invalid post id"},
		{"register missing fields", http.MethodPost, "/api/auth/register", "", gin.H{"name": "x"}, http.StatusBadRequest, "Missing fields"},
		{"register duplicate email", http.MethodPost, "/api/auth/register", "", gin.H{"name": "x", "email": "A@x.com", "password": "pw"}, http.StatusBadRequest, "Email already in use"},
		{"bad credentials", http.MethodPost, "/api/auth/login", "", gin.H{"email": "a@x.com", "password": "nope"}, http.StatusBadRequest, "Invalid credentials"},
		{"unknown api route", http.MethodGet, "/api/nope", "", nil, http.StatusNotFound, "API route not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, r, tt.method, tt.path, tt.token, tt.body)
			assert.Equal(t, tt.want, w.Code, w.Body.String())
			assert.Equal(t, tt.message, decode(t, w)["message"])
		})
	}
}

func TestMeNeverLeaksPasswordHash(t *testing.T) {
	r := newTestServer(t)
	token := registerAndLogin(t, r, "Ann", "a@x.com")

	w := doJSON(t, r, http.MethodGet, "/api/user/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/user/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Ann", body["name"])
	assert.NotContains(t, w.Body.String(), "passwordHash")
	assert.NotContains(t, w.Body.String(), "pw123456")
}

func TestPublicProfileAndUserPosts(t *testing.T) {
	r := newTestServer(t)
	token := registerAndLogin(t, r, "Ann", "a@x.com")
	createPost(t, r, token, gin.H{"title": "Ann's post"})

	w := doJSON(t, r, http.MethodGet, "/api/user/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	userID, _ := decode(t, w)["_id"].(string)
	require.NotEmpty(t, userID)

	w = doJSON(t, r, http.MethodGet, "/api/user/"+userID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Ann", decode(t, w)["name"])

	w = doJSON(t, r, http.MethodGet, "/api/post/user/"+userID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var posts []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &posts))
	require.Len(t, posts, 1)
	assert.Equal(t, "Ann's post", posts[0]["title"])

	w = doJSON(t, r, http.MethodGet, "/api/user/64b0c8f2a1b2c3d4e5f60718", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateProfile(t *testing.T) {
	r := newTestServer(t)
	token := registerAndLogin(t, r, "Ann", "a@x.com")

	w := doJSON(t, r, http.MethodPut, "/api/user/me", token, gin.H{
		"name": "Ann Updated", "bio": "hello",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Equal(t, "Ann Updated", body["name"])
	assert.Equal(t, "hello", body["bio"])
}

func TestSearchEndpoint(t *testing.T) {
	r := newTestServer(t)
	token := registerAndLogin(t, r, "Ann", "a@x.com")
	createPost(t, r, token, gin.H{"title": "Quiet morning", "mood": "Calm"})
	createPost(t, r, token, gin.H{"title": "Race day", "mood": "Energetic"})

	w := doJSON(t, r, http.MethodGet, "/api/post/search?q=morning&mood=Calm", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var posts []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &posts))
	require.Len(t, posts, 1)
	assert.Equal(t, "Quiet morning", posts[0]["title"])

	w = doJSON(t, r, http.MethodGet, "/api/post/search?author=NonexistentName", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &posts))
	assert.Empty(t, posts)
}

func TestHealth(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode(t, w)["ok"])
}

func TestTruthyOverwriteOverHTTP(t *testing.T) {
	r := newTestServer(t)
	token := registerAndLogin(t, r, "Ann", "a@x.com")
	postID := createPost(t, r, token, gin.H{"title": "Hello", "content": "keep me"})

	// Sending an empty content must not clear the stored value.
	w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/post/%s", postID), token, gin.H{
		"title": "Hello v2", "content": "",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Equal(t, "Hello v2", body["title"])
	assert.Equal(t, "keep me", body["content"])
}
