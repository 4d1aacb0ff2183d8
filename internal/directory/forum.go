package directory

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/vijay-prabhu/research-connect/internal/database"
)

// CreatePost starts a forum discussion in one of the configured categories
func (s *Service) CreatePost(ctx context.Context, authorID, title, content, category string) (*database.ForumPost, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" || content == "" {
		return nil, invalid("title and content are required")
	}
	if !s.config.HasForumCategory(category) {
		return nil, invalid("unknown category '%s' (choose one of: %s)", category, strings.Join(s.config.Forum.Categories, ", "))
	}

	author, err := s.requireUser(ctx, authorID)
	if err != nil {
		return nil, err
	}

	post := &database.ForumPost{
		Title:    title,
		Content:  content,
		Category: category,
		AuthorID: author.ID,
	}
	if err := s.db.CreatePost(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	post.AuthorName = author.Name
	post.AuthorRole = author.Role

	s.logger.Info("forum post created", zap.String("post_id", post.ID), zap.String("category", category))
	return post, nil
}

// ListPosts lists forum posts. sort is "latest" (default) or "popular".
func (s *Service) ListPosts(ctx context.Context, category string, sort string, limit int) ([]database.ForumPost, error) {
	filter := database.PostFilter{Sort: database.SortLatest, Limit: limit}
	if filter.Limit <= 0 {
		filter.Limit = s.config.Forum.PageSize
	}

	switch database.PostSort(sort) {
	case "", database.SortLatest:
	case database.SortPopular:
		filter.Sort = database.SortPopular
	default:
		return nil, invalid("sort must be 'latest' or 'popular', got '%s'", sort)
	}

	if category != "" {
		if !s.config.HasForumCategory(category) {
			return nil, invalid("unknown category '%s'", category)
		}
		filter.Category = &category
	}

	posts, err := s.db.ListPosts(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

// Vote records a vote on a post and returns the updated post
func (s *Service) Vote(ctx context.Context, userID, postID string, vote database.VoteType) (*database.ForumPost, error) {
	if !vote.IsValid() {
		return nil, invalid("vote must be 'upvote' or 'downvote', got '%s'", vote)
	}
	if _, err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	post, err := s.db.GetPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	if post == nil {
		return nil, fmt.Errorf("forum post %s: %w", postID, database.ErrNotFound)
	}

	if err := s.db.Vote(ctx, postID, userID, vote); err != nil {
		return nil, err
	}

	return s.db.GetPost(ctx, postID)
}
