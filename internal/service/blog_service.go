package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/Dirk1989/Ideal/internal/domain"
	"github.com/Dirk1989/Ideal/internal/logger"
	"github.com/Dirk1989/Ideal/internal/repository"
	"github.com/Dirk1989/Ideal/internal/validator"
)

// FieldImage is the multipart field holding a blog cover.
const FieldImage = "image"

const msgPostNotFound = "Post not found"

// BlogService handles blog posts.
type BlogService struct {
	repo     repository.BlogRepository
	uploads  Uploader
	validate *validator.Validator
	now      func() time.Time
}

// NewBlogService creates a new BlogService.
func NewBlogService(repo repository.BlogRepository, uploads Uploader, v *validator.Validator) *BlogService {
	return &BlogService{repo: repo, uploads: uploads, validate: v, now: time.Now}
}

func (s *BlogService) List(ctx context.Context) []domain.BlogPost {
	return s.repo.List(ctx)
}

func (s *BlogService) Get(ctx context.Context, id int64) (domain.BlogPost, error) {
	post, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.BlogPost{}, classify(err, msgPostNotFound)
	}
	return post, nil
}

// Create adds a post dated today. Without a cover upload the stock image
// is used.
func (s *BlogService) Create(ctx context.Context, in Input) (domain.BlogPost, error) {
	patch, err := s.validate.BlogPost(in.Fields, validator.Create)
	if err != nil {
		return domain.BlogPost{}, validator.ToAppError(err)
	}

	res, err := s.uploads.Save(ctx, FieldImage, in.Files[FieldImage], 1)
	if err != nil {
		return domain.BlogPost{}, classify(err, msgPostNotFound)
	}

	now := s.now()
	post, err := s.repo.Create(ctx, func(id int64) domain.BlogPost {
		return domain.NewBlogPost(id, patch, first(res.Paths), now)
	})
	if err != nil {
		s.uploads.Remove(uploaded(res))
		return domain.BlogPost{}, classify(err, msgPostNotFound)
	}

	logger.InfoContext(ctx, "Blog post created",
		slog.Int64("id", post.ID),
		slog.String("title", post.Title),
	)
	return post, nil
}

// Update merges the submitted fields. A new cover replaces the old one.
func (s *BlogService) Update(ctx context.Context, id int64, in Input) (domain.BlogPost, error) {
	patch, err := s.validate.BlogPost(in.Fields, validator.Update)
	if err != nil {
		return domain.BlogPost{}, validator.ToAppError(err)
	}
	if _, err := s.repo.Get(ctx, id); err != nil {
		return domain.BlogPost{}, classify(err, msgPostNotFound)
	}

	res, err := s.uploads.Save(ctx, FieldImage, in.Files[FieldImage], 1)
	if err != nil {
		return domain.BlogPost{}, classify(err, msgPostNotFound)
	}

	var replaced string
	post, err := s.repo.Update(ctx, id, func(cur domain.BlogPost) (domain.BlogPost, error) {
		next := cur.Merge(patch)
		if cover := first(res.Paths); cover != "" {
			replaced = cur.Image
			next.Image = cover
		}
		return next, nil
	})
	if err != nil {
		s.uploads.Remove(uploaded(res))
		return domain.BlogPost{}, classify(err, msgPostNotFound)
	}
	if replaced != "" {
		s.uploads.Remove([]string{replaced})
	}

	logger.InfoContext(ctx, "Blog post updated", slog.Int64("id", id))
	return post, nil
}

// Delete removes the post and its uploaded cover.
func (s *BlogService) Delete(ctx context.Context, id int64) error {
	post, err := s.repo.Delete(ctx, id)
	if err != nil {
		return classify(err, msgPostNotFound)
	}
	s.uploads.Remove([]string{post.Image})

	logger.InfoContext(ctx, "Blog post deleted", slog.Int64("id", id))
	return nil
}

func first(paths []string) string {
	if len(paths) == 0 {
		return ""
	}
	return paths[0]
}
