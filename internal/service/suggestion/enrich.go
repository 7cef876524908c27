package suggestion

import (
	"context"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"
)

// enrichDestinationImages replaces placeholder image markers with image
// search results. Lookups run concurrently; a failed or empty lookup leaves
// the image URL empty rather than failing the whole suggestion set.
func (s *Service) enrichDestinationImages(ctx context.Context, suggestions []DestinationSuggestion) {
	g, gctx := errgroup.WithContext(ctx)

	for i := range suggestions {
		if !needsImage(suggestions[i].ImageURL) {
			continue
		}
		suggestions[i].ImageURL = ""

		g.Go(func() error {
			query := suggestions[i].City + ", " + suggestions[i].Country
			link, err := s.images.SearchImage(gctx, query)
			if err != nil {
				s.log.WarnContext(gctx, "destination image lookup failed",
					slog.String("query", query),
					slog.String("error", err.Error()),
				)
				return nil
			}
			suggestions[i].ImageURL = link
			return nil
		})
	}

	_ = g.Wait()
}

// enrichActivityImages attaches an image to every suggested activity, on a
// best-effort basis.
func (s *Service) enrichActivityImages(ctx context.Context, suggestions []ActivitySuggestion) {
	g, gctx := errgroup.WithContext(ctx)

	for i := range suggestions {
		g.Go(func() error {
			query := suggestions[i].Name + " " + suggestions[i].Description
			link, err := s.images.SearchImage(gctx, query)
			if err != nil {
				s.log.WarnContext(gctx, "activity image lookup failed",
					slog.String("query", query),
					slog.String("error", err.Error()),
				)
				return nil
			}
			suggestions[i].ImageURL = link
			return nil
		})
	}

	_ = g.Wait()
}

// needsImage reports whether the model failed to supply a real image URL.
func needsImage(imageURL string) bool {
	trimmed := strings.TrimSpace(imageURL)
	return trimmed == "" || strings.HasPrefix(trimmed, placeholderImagePrefix)
}
