package repository

import (
	"context"
	"errors"

	"github.com/shivshankarkannoujiya/Medium/internal/cache"
	"github.com/shivshankarkannoujiya/Medium/internal/models"
	"github.com/shivshankarkannoujiya/Medium/internal/observability"

	"gorm.io/gorm"
)

// PostRepository defines persistence operations for blog posts.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	Update(ctx context.Context, id uint, title, content string) (*models.Post, error)
	List(ctx context.Context) ([]models.Post, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository returns a new PostRepository implementation.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	defer observability.TrackQuery("create", "posts")()

	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// GetByID returns (nil, nil) when no post matches; the fetch endpoint serves
// a null blog for absent ids rather than a 404. Misses are never cached so a
// later create under the same id is visible immediately.
func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	key := cache.PostKey(id)

	if found, err := cache.GetJSON(ctx, key, &post); err == nil && found {
		return &post, nil
	}

	defer observability.TrackQuery("get_by_id", "posts")()

	if err := r.db.WithContext(ctx).First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}

	_ = cache.SetJSON(ctx, key, &post, cache.PostTTL)
	return &post, nil
}

func (r *postRepository) Update(ctx context.Context, id uint, title, content string) (*models.Post, error) {
	defer observability.TrackQuery("update", "posts")()

	var post models.Post
	if err := r.db.WithContext(ctx).First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", id)
		}
		return nil, models.NewInternalError(err)
	}

	post.Title = title
	post.Content = content
	if err := r.db.WithContext(ctx).Save(&post).Error; err != nil {
		return nil, models.NewInternalError(err)
	}

	cache.InvalidatePost(ctx, id)
	return &post, nil
}

func (r *postRepository) List(ctx context.Context) ([]models.Post, error) {
	defer observability.TrackQuery("list", "posts")()

	var posts []models.Post
	if err := r.db.WithContext(ctx).Find(&posts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}
