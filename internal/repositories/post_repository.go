package repositories

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"alumni-connect/internal/colleges"
	"alumni-connect/internal/models"
	"alumni-connect/internal/store"
)

// PostRepository owns the per-college post feed.
type PostRepository interface {
	List(college string) ([]models.Post, error)
	Create(college string, draft models.PostDraft) (models.Post, error)
	ToggleLike(college, postID, userID string) (*models.Post, error)
	ToggleCommentLike(college, postID, commentID, userID string) (*models.Post, error)
	AddComment(college, postID string, draft models.CommentDraft) (*models.Post, error)
}

type postRepository struct {
	store store.Store
	now   func() time.Time
}

func NewPostRepository(s store.Store) PostRepository {
	return &postRepository{store: s, now: time.Now}
}

// List returns the scope's collection, newest first.
func (r *postRepository) List(college string) ([]models.Post, error) {
	return store.Load[models.Post](r.store, store.PostsKey(college))
}

// Create assigns id and timestamp, snapshots the author, initializes empty
// like and comment sets, and prepends the post to the scope.
func (r *postRepository) Create(college string, draft models.PostDraft) (models.Post, error) {
	posts, err := r.List(college)
	if err != nil {
		return models.Post{}, err
	}

	a := draft.Author
	post := models.Post{
		ID:               uuid.NewString(),
		AuthorID:         a.ID,
		AuthorName:       a.Name,
		AuthorRole:       a.Role,
		AuthorDepartment: a.Department,
		AuthorBatch:      a.Batch,
		AuthorAvatar:     a.Avatar,
		College:          college,
		Content:          draft.Content,
		Image:            draft.Image,
		Tags:             draft.Tags,
		Likes:            []string{},
		Comments:         []models.Comment{},
		CreatedAt:        r.now(),
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}

	posts = append([]models.Post{post}, posts...)
	if err := store.Save(r.store, store.PostsKey(college), posts); err != nil {
		return models.Post{}, err
	}
	return post, nil
}

// ToggleLike flips the user's membership in the post's like set. Two
// successive calls restore the original set; the set never holds duplicates.
func (r *postRepository) ToggleLike(college, postID, userID string) (*models.Post, error) {
	posts, err := r.List(college)
	if err != nil {
		return nil, err
	}
	for i := range posts {
		if posts[i].ID != postID {
			continue
		}
		posts[i].Likes = toggleMember(posts[i].Likes, userID)
		if err := store.Save(r.store, store.PostsKey(college), posts); err != nil {
			return nil, err
		}
		return &posts[i], nil
	}
	return nil, ErrNotFound
}

// ToggleCommentLike flips the user's membership in a comment's like set,
// searching replies recursively.
func (r *postRepository) ToggleCommentLike(college, postID, commentID, userID string) (*models.Post, error) {
	posts, err := r.List(college)
	if err != nil {
		return nil, err
	}
	for i := range posts {
		if posts[i].ID != postID {
			continue
		}
		c := findComment(posts[i].Comments, commentID)
		if c == nil {
			return nil, ErrNotFound
		}
		c.Likes = toggleMember(c.Likes, userID)
		if err := store.Save(r.store, store.PostsKey(college), posts); err != nil {
			return nil, err
		}
		return &posts[i], nil
	}
	return nil, ErrNotFound
}

// AddComment appends a comment with generated id and timestamp. Comments are
// not deduplicated.
func (r *postRepository) AddComment(college, postID string, draft models.CommentDraft) (*models.Post, error) {
	posts, err := r.List(college)
	if err != nil {
		return nil, err
	}
	for i := range posts {
		if posts[i].ID != postID {
			continue
		}
		a := draft.Author
		comment := models.Comment{
			ID:           uuid.NewString(),
			AuthorID:     a.ID,
			AuthorName:   a.Name,
			AuthorRole:   a.Role,
			AuthorAvatar: a.Avatar,
			Content:      draft.Content,
			Likes:        []string{},
			CreatedAt:    r.now(),
		}
		posts[i].Comments = append(posts[i].Comments, comment)
		if err := store.Save(r.store, store.PostsKey(college), posts); err != nil {
			return nil, err
		}
		return &posts[i], nil
	}
	return nil, ErrNotFound
}

// FilterPosts derives the visible feed. A post matches when search is empty
// or case-insensitively contained in its content, author name, or any tag
// label, and when the tag selection is empty or shares at least one tag with
// the post. Pure; source order preserved.
func FilterPosts(posts []models.Post, search string, tags []string) []models.Post {
	q := strings.ToLower(search)
	out := make([]models.Post, 0, len(posts))
	for _, p := range posts {
		if search != "" && !matchesPost(p, q) {
			continue
		}
		if len(tags) > 0 && !sharesTag(p.Tags, tags) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesPost(p models.Post, q string) bool {
	if strings.Contains(strings.ToLower(p.Content), q) ||
		strings.Contains(strings.ToLower(p.AuthorName), q) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(colleges.TagLabel(tag)), q) {
			return true
		}
	}
	return false
}

func sharesTag(postTags, selected []string) bool {
	for _, s := range selected {
		for _, t := range postTags {
			if s == t {
				return true
			}
		}
	}
	return false
}

// toggleMember flips set membership: present ids are removed, absent ids
// appended.
func toggleMember(ids []string, id string) []string {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return append(ids, id)
}

func findComment(cs []models.Comment, id string) *models.Comment {
	for i := range cs {
		if cs[i].ID == id {
			return &cs[i]
		}
		if c := findComment(cs[i].Replies, id); c != nil {
			return c
		}
	}
	return nil
}
