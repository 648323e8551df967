package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alumni-connect/internal/models"
)

func TestCreatePrependsNewestFirst(t *testing.T) {
	r := NewPostRepository(newTestStore(t))

	first, err := r.Create("mit", models.PostDraft{Author: student("u1", "Ada"), Content: "first"})
	require.NoError(t, err)
	second, err := r.Create("mit", models.PostDraft{Author: student("u1", "Ada"), Content: "second"})
	require.NoError(t, err)

	posts, err := r.List("mit")
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, second.ID, posts[0].ID)
	assert.Equal(t, first.ID, posts[1].ID)
	assert.Empty(t, posts[0].Likes)
	assert.Empty(t, posts[0].Comments)
}

func TestCreateSnapshotsAuthor(t *testing.T) {
	r := NewPostRepository(newTestStore(t))

	author := alumnus("u2", "Grace")
	p, err := r.Create("mit", models.PostDraft{Author: author, Content: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "Grace", p.AuthorName)
	assert.Equal(t, models.RoleAlumni, p.AuthorRole)
	assert.Equal(t, "2018", p.AuthorBatch)
	assert.Equal(t, "mit", p.College)
}

func TestToggleLikeIsAnInvolution(t *testing.T) {
	r := NewPostRepository(newTestStore(t))

	p, err := r.Create("mit", models.PostDraft{Author: student("u1", "Ada"), Content: "like me"})
	require.NoError(t, err)

	liked, err := r.ToggleLike("mit", p.ID, "u9")
	require.NoError(t, err)
	assert.Equal(t, []string{"u9"}, liked.Likes)

	// A second toggle by the same user cancels the first.
	unliked, err := r.ToggleLike("mit", p.ID, "u9")
	require.NoError(t, err)
	assert.Empty(t, unliked.Likes)
}

func TestToggleLikeNeverDuplicates(t *testing.T) {
	r := NewPostRepository(newTestStore(t))

	p, err := r.Create("mit", models.PostDraft{Author: student("u1", "Ada"), Content: "popular"})
	require.NoError(t, err)

	for _, u := range []string{"a", "b", "a", "a"} {
		_, err := r.ToggleLike("mit", p.ID, u)
		require.NoError(t, err)
	}
	got, err := r.ToggleLike("mit", p.ID, "c")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b", "c"}, got.Likes)
}

func TestToggleLikeUnknownPost(t *testing.T) {
	r := NewPostRepository(newTestStore(t))

	_, err := r.ToggleLike("mit", "missing", "u1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddCommentAppendsInOrder(t *testing.T) {
	r := NewPostRepository(newTestStore(t))

	p, err := r.Create("mit", models.PostDraft{Author: student("u1", "Ada"), Content: "discuss"})
	require.NoError(t, err)

	_, err = r.AddComment("mit", p.ID, models.CommentDraft{Author: student("u2", "Bob"), Content: "one"})
	require.NoError(t, err)
	got, err := r.AddComment("mit", p.ID, models.CommentDraft{Author: student("u3", "Eve"), Content: "two"})
	require.NoError(t, err)

	require.Len(t, got.Comments, 2)
	assert.Equal(t, "one", got.Comments[0].Content)
	assert.Equal(t, "two", got.Comments[1].Content)
	assert.Equal(t, "Bob", got.Comments[0].AuthorName)
	assert.NotEmpty(t, got.Comments[0].ID)
}

func TestToggleCommentLike(t *testing.T) {
	r := NewPostRepository(newTestStore(t))

	p, err := r.Create("mit", models.PostDraft{Author: student("u1", "Ada"), Content: "discuss"})
	require.NoError(t, err)
	withComment, err := r.AddComment("mit", p.ID, models.CommentDraft{Author: student("u2", "Bob"), Content: "hot take"})
	require.NoError(t, err)
	commentID := withComment.Comments[0].ID

	got, err := r.ToggleCommentLike("mit", p.ID, commentID, "u3")
	require.NoError(t, err)
	assert.Equal(t, []string{"u3"}, got.Comments[0].Likes)

	got, err = r.ToggleCommentLike("mit", p.ID, commentID, "u3")
	require.NoError(t, err)
	assert.Empty(t, got.Comments[0].Likes)

	_, err = r.ToggleCommentLike("mit", p.ID, "missing", "u3")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFilterPostsSearchFields(t *testing.T) {
	posts := []models.Post{
		{ID: "1", Content: "Looking for referrals", AuthorName: "Ada", Tags: []string{"networking"}},
		{ID: "2", Content: "Campus memories thread", AuthorName: "Grace", Tags: []string{"memories"}},
		{ID: "3", Content: "Anyone hiring?", AuthorName: "Bob", Tags: []string{"jobs"}},
	}

	tests := []struct {
		name   string
		search string
		tags   []string
		want   []string
	}{
		{"empty search matches all", "", nil, []string{"1", "2", "3"}},
		{"content match is case-insensitive", "REFERRALS", nil, []string{"1"}},
		{"author name match", "grace", nil, []string{"2"}},
		{"tag label match", "Jobs", nil, []string{"3"}},
		{"no match", "golang", nil, nil},
		{"tag filter intersects", "", []string{"memories", "jobs"}, []string{"2", "3"}},
		{"search and tags both apply", "hiring", []string{"networking"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterPosts(posts, tt.search, tt.tags)
			ids := make([]string, 0, len(got))
			for _, p := range got {
				ids = append(ids, p.ID)
			}
			if tt.want == nil {
				assert.Empty(t, ids)
			} else {
				assert.Equal(t, tt.want, ids)
			}
		})
	}
}

func TestFilterPostsHelloJobsScenario(t *testing.T) {
	posts := []models.Post{{ID: "p", Content: "Hello #jobs", AuthorName: "Ada", Tags: []string{"jobs"}}}

	assert.Len(t, FilterPosts(posts, "hello", nil), 1)
	assert.Empty(t, FilterPosts(posts, "", []string{"advice"}))
	assert.Len(t, FilterPosts(posts, "", []string{"jobs"}), 1)
}

func TestFilterPostsPreservesOrder(t *testing.T) {
	r := NewPostRepository(newTestStore(t))

	for _, content := range []string{"alpha jobs", "beta jobs", "gamma jobs"} {
		_, err := r.Create("mit", models.PostDraft{Author: student("u1", "Ada"), Content: content})
		require.NoError(t, err)
	}
	posts, err := r.List("mit")
	require.NoError(t, err)

	got := FilterPosts(posts, "jobs", nil)
	require.Len(t, got, 3)
	assert.Equal(t, "gamma jobs", got[0].Content)
	assert.Equal(t, "alpha jobs", got[2].Content)
}

func TestPostsAreScopedByCollege(t *testing.T) {
	r := NewPostRepository(newTestStore(t))

	_, err := r.Create("mit", models.PostDraft{Author: student("u1", "Ada"), Content: "mit only"})
	require.NoError(t, err)

	other, err := r.List("stanford")
	require.NoError(t, err)
	assert.Empty(t, other)
}
