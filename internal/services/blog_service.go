package services

import (
	"errors"
	"fmt"

	"github.com/workbridge/jobboard-backend/internal/dto"
	"github.com/workbridge/jobboard-backend/internal/models"
	"github.com/workbridge/jobboard-backend/internal/storage"
)

var ErrNotAuthor = errors.New("you can only edit your own posts")

type BlogService struct {
	store  storage.Store
	filter *ContentFilter
}

func NewBlogService(store storage.Store, filter *ContentFilter) *BlogService {
	return &BlogService{store: store, filter: filter}
}

func (s *BlogService) Create(authorID uint, req *dto.CreateBlogPostRequest) (*models.BlogPost, error) {
	if req.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if ok, reason := s.filter.Check(req.Content); !ok {
		return nil, fmt.Errorf("%w: %s", ErrFilteredOut, s.filter.RejectionMessage(reason))
	}

	post := models.BlogPost{
		AuthorID:  &authorID,
		Title:     req.Title,
		Content:   req.Content,
		Tags:      req.Tags,
		Published: req.Published,
	}
	if err := s.store.CreateBlogPost(&post); err != nil {
		return nil, fmt.Errorf("failed to create blog post: %w", err)
	}
	return &post, nil
}

func (s *BlogService) Get(id uint) (*models.BlogPost, error) {
	return s.store.GetBlogPost(id)
}

func (s *BlogService) ListPublished() ([]models.BlogPost, error) {
	return s.store.ListBlogPosts(true)
}

func (s *BlogService) Update(userID, postID uint, req *dto.CreateBlogPostRequest) (*models.BlogPost, error) {
	post, err := s.ownedPost(userID, postID)
	if err != nil {
		return nil, err
	}

	post.Title = req.Title
	post.Content = req.Content
	post.Tags = req.Tags
	post.Published = req.Published
	if err := s.store.UpdateBlogPost(post); err != nil {
		return nil, fmt.Errorf("failed to update blog post: %w", err)
	}
	return post, nil
}

func (s *BlogService) Delete(userID, postID uint) error {
	if _, err := s.ownedPost(userID, postID); err != nil {
		return err
	}
	return s.store.DeleteBlogPost(postID)
}

func (s *BlogService) ownedPost(userID, postID uint) (*models.BlogPost, error) {
	post, err := s.store.GetBlogPost(postID)
	if err != nil {
		return nil, err
	}
	if post.AuthorID == nil || *post.AuthorID != userID {
		return nil, ErrNotAuthor
	}
	return post, nil
}
