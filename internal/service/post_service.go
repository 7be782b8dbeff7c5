// Package service contains the domain logic between HTTP handlers and repositories.
package service

import (
	"context"
	"errors"

	"inkwell/internal/models"
	"inkwell/internal/repository"
	"inkwell/internal/validation"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PostService implements the post resource operations with ownership
// authorization. All mutations require the caller to be the post's owner.
type PostService struct {
	postRepo repository.PostRepository
}

type CreatePostInput struct {
	OwnerID uuid.UUID
	Title   string
	Content string
}

type ListPostsInput struct {
	Search string
	Limit  int
	Offset int
}

// UpdatePostInput carries a full replacement of the mutable fields.
type UpdatePostInput struct {
	CallerID uuid.UUID
	PostID   uuid.UUID
	Title    string
	Content  string
}

type DeletePostInput struct {
	CallerID uuid.UUID
	PostID   uuid.UUID
}

func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if err := validation.ValidatePostFields(in.Title, in.Content); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	post := &models.Post{
		Title:   in.Title,
		Content: in.Content,
		OwnerID: in.OwnerID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	// Re-read so the response carries the owner expansion.
	return s.getPost(ctx, post.ID)
}

func (s *PostService) ListPosts(ctx context.Context, in ListPostsInput) ([]*models.Post, error) {
	posts, err := s.postRepo.List(ctx, in.Search, in.Limit, in.Offset)
	if err != nil {
		return nil, err
	}
	if posts == nil {
		// an empty result serializes as [] rather than null
		posts = []*models.Post{}
	}
	return posts, nil
}

func (s *PostService) GetPost(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	return s.getPost(ctx, id)
}

// UpdatePost overwrites title and content in place. Owner and creation time
// never change.
func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	if err := validation.ValidatePostFields(in.Title, in.Content); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	post, err := s.getPost(ctx, in.PostID)
	if err != nil {
		return nil, err
	}

	if !post.OwnedBy(in.CallerID) {
		return nil, models.NewForbiddenError("It is only allowed to update one's own posts")
	}

	post.Title = in.Title
	post.Content = in.Content

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) DeletePost(ctx context.Context, in DeletePostInput) error {
	post, err := s.getPost(ctx, in.PostID)
	if err != nil {
		return err
	}

	if !post.OwnedBy(in.CallerID) {
		return models.NewForbiddenError("It is only allowed to delete one's own posts")
	}

	return s.postRepo.Delete(ctx, in.PostID)
}

func (s *PostService) getPost(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.NewNotFoundError("post", id)
	}
	if err != nil {
		return nil, err
	}
	return post, nil
}
