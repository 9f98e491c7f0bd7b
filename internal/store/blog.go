package store

import (
	"context"
	"strings"

	"github.com/gosimple/slug"

	"github.com/SOHAMSUPEKAR24/travle1/internal/models"
	"github.com/SOHAMSUPEKAR24/travle1/internal/monitor"
	"github.com/SOHAMSUPEKAR24/travle1/internal/validate"
)

const readingWordsPerMinute = 200

func (s *DataStore) Blogs(ctx context.Context) []models.BlogPost {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx).Blogs
}

// BlogBySlug matches slugs by exact, case-sensitive equality.
func (s *DataStore) BlogBySlug(ctx context.Context, slugValue string) (models.BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, post := range s.load(ctx).Blogs {
		if post.Slug == slugValue {
			return post, nil
		}
	}
	return models.BlogPost{}, ErrNotFound
}

func (s *DataStore) AddBlog(ctx context.Context, post models.BlogPost) (models.BlogPost, error) {
	stop := s.mon.StartTiming("addBlog")
	defer stop()

	if post.Slug == "" {
		post.Slug = slug.Make(post.Title)
	}

	if res := validate.BlogPost(post); !res.Valid {
		verr := &ValidationError{Entity: "Blog", Violations: res.Errors}
		s.mon.Log(monitor.LevelError, "DataStore", verr.Error(), map[string]any{"errors": res.Errors})
		return models.BlogPost{}, verr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.load(ctx)
	for _, existing := range doc.Blogs {
		if existing.Slug == post.Slug {
			dup := &DuplicateSlugError{Slug: post.Slug}
			s.mon.Log(monitor.LevelError, "DataStore", dup.Error(), map[string]any{"existingBlogId": existing.ID})
			return models.BlogPost{}, dup
		}
	}

	post.ID = newID("BLOG")
	post.CreatedAt = s.timestamp()
	post.UpdatedAt = post.CreatedAt
	if post.ReadingTime == 0 {
		post.ReadingTime = EstimateReadingTime(post.Content)
	}
	doc.Blogs = append(doc.Blogs, post)

	if err := s.save(ctx, doc); err != nil {
		return models.BlogPost{}, err
	}

	s.mon.Log(monitor.LevelInfo, "DataStore", "Blog post created: "+post.Title, map[string]any{"blogId": post.ID, "slug": post.Slug})
	return post, nil
}

// UpdateBlog shallow-merges fields; slug uniqueness is deliberately not
// re-checked here. A content change refreshes the reading-time estimate.
func (s *DataStore) UpdateBlog(ctx context.Context, id string, updates map[string]any) (models.BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.load(ctx)
	for i, post := range doc.Blogs {
		if post.ID != id {
			continue
		}
		merged, err := mergeEntity(post, updates)
		if err != nil {
			return models.BlogPost{}, err
		}
		if _, changed := updates["content"]; changed {
			merged.ReadingTime = EstimateReadingTime(merged.Content)
		}
		merged.UpdatedAt = s.timestamp()
		doc.Blogs[i] = merged

		if err := s.save(ctx, doc); err != nil {
			return models.BlogPost{}, err
		}
		return merged, nil
	}
	return models.BlogPost{}, ErrNotFound
}

func (s *DataStore) DeleteBlog(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.load(ctx)
	kept := doc.Blogs[:0:0]
	for _, post := range doc.Blogs {
		if post.ID != id {
			kept = append(kept, post)
		}
	}
	if len(kept) == len(doc.Blogs) {
		return false, nil
	}
	doc.Blogs = kept

	if err := s.save(ctx, doc); err != nil {
		return false, err
	}
	return true, nil
}

// EstimateReadingTime is the word count at 200 wpm, rounded up.
func EstimateReadingTime(content string) int {
	words := len(strings.Fields(content))
	if words == 0 {
		return 0
	}
	return (words + readingWordsPerMinute - 1) / readingWordsPerMinute
}
