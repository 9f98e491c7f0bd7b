package blog

import (
	"context"

	"github.com/SOHAMSUPEKAR24/travle1/internal/models"
	"github.com/SOHAMSUPEKAR24/travle1/internal/store"
)

type Filter struct {
	Published bool
	Tag       string
}

type Service struct {
	store *store.DataStore
}

func NewService(ds *store.DataStore) *Service {
	return &Service{store: ds}
}

func (s *Service) List(ctx context.Context, filter Filter) []models.BlogPost {
	posts := s.store.Blogs(ctx)
	out := posts[:0:0]
	for _, post := range posts {
		if filter.Published && !post.Published {
			continue
		}
		if filter.Tag != "" && !hasTag(post.Tags, filter.Tag) {
			continue
		}
		out = append(out, post)
	}
	return out
}

// Read resolves a post by slug and counts the view. Reads through the
// public site are the only thing that moves the counter.
func (s *Service) Read(ctx context.Context, slugValue string) (models.BlogPost, error) {
	post, err := s.store.BlogBySlug(ctx, slugValue)
	if err != nil {
		return models.BlogPost{}, err
	}
	updated, err := s.store.UpdateBlog(ctx, post.ID, map[string]any{"views": post.Views + 1})
	if err != nil {
		return models.BlogPost{}, err
	}
	return updated, nil
}

func (s *Service) Create(ctx context.Context, post models.BlogPost) (models.BlogPost, error) {
	return s.store.AddBlog(ctx, post)
}

func (s *Service) Update(ctx context.Context, id string, updates map[string]any) (models.BlogPost, error) {
	return s.store.UpdateBlog(ctx, id, updates)
}

func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	return s.store.DeleteBlog(ctx, id)
}

func hasTag(tags []string, want string) bool {
	for _, tag := range tags {
		if tag == want {
			return true
		}
	}
	return false
}
