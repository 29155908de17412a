package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"gopherfeed/internal/model"
	"gopherfeed/internal/repository"
)

const maxPostLength = 280

var (
	ErrPostEmpty    = errors.New("Post content is required")
	ErrPostTooLong  = errors.New("Post must be 280 characters or less")
	ErrPostNotFound = errors.New("Post not found")
	ErrNotPostOwner = errors.New("Not authorized to delete this post")
)

// FeedCache holds the rendered public feed between reads. A nil cache is
// fine; the service just goes to the database every time.
type FeedCache interface {
	GetFeed(ctx context.Context) ([]model.Post, bool, error)
	SetFeed(ctx context.Context, posts []model.Post) error
	DeleteFeed(ctx context.Context) error
}

// ActivityPublisher hands post lifecycle events to the async audit
// pipeline. Publish failures never fail the originating request.
type ActivityPublisher interface {
	Publish(ctx context.Context, activity model.Activity) error
}

type PostService struct {
	postRepo  *repository.PostRepository
	cache     FeedCache
	publisher ActivityPublisher
}

type CreatePostInput struct {
	AuthorID       string
	AuthorUsername string
	Content        string
}

func NewPostService(postRepo *repository.PostRepository, cache FeedCache, publisher ActivityPublisher) *PostService {
	return &PostService{
		postRepo:  postRepo,
		cache:     cache,
		publisher: publisher,
	}
}

func (s *PostService) Create(input CreatePostInput) (*model.Post, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, ErrPostEmpty
	}
	if len([]rune(content)) > maxPostLength {
		return nil, ErrPostTooLong
	}

	post := &model.Post{
		Content:        content,
		AuthorID:       input.AuthorID,
		AuthorUsername: input.AuthorUsername,
	}
	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}

	s.invalidateFeed()
	s.publishActivity(model.ActivityPostCreated, post)
	return post, nil
}

func (s *PostService) List() ([]model.Post, error) {
	ctx := context.Background()
	if s.cache != nil {
		if cached, hit, err := s.cache.GetFeed(ctx); err == nil && hit {
			return cached, nil
		}
	}

	posts, err := s.postRepo.ListNewestFirst()
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetFeed(ctx, posts)
	}
	return posts, nil
}

func (s *PostService) Delete(callerID, postID string) error {
	post, err := s.postRepo.GetByID(postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if !IsOwner(callerID, post.AuthorID) {
		return ErrNotPostOwner
	}

	if err := s.postRepo.DeleteByID(postID); err != nil {
		return err
	}

	s.invalidateFeed()
	s.publishActivity(model.ActivityPostDeleted, post)
	return nil
}

func (s *PostService) invalidateFeed() {
	if s.cache != nil {
		_ = s.cache.DeleteFeed(context.Background())
	}
}

func (s *PostService) publishActivity(verb string, post *model.Post) {
	if s.publisher == nil {
		return
	}
	_ = s.publisher.Publish(context.Background(), model.Activity{
		Verb:      verb,
		PostID:    post.ID,
		ActorID:   post.AuthorID,
		ActorName: post.AuthorUsername,
		CreatedAt: time.Now(),
	})
}
