package services

import (
	"context"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/s-age/pipe-sub004/internal/domain"
	"github.com/s-age/pipe-sub004/internal/logging"
)

// ReferencesForPrompt yields the content of every enabled reference of a
// session that lies strictly inside the project root. Files are read one
// per iteration step; missing, unreadable or outside files are skipped with
// a warning.
func (s *ReferenceService) ReferencesForPrompt(ctx context.Context, id string) (iter.Seq[ReferenceContent], error) {
	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	session.SortReferences(s.defaultTTL)
	refs := session.EnabledReferences()

	rootPath, err := filepath.Abs(s.projectRoot)
	if err != nil {
		return nil, domain.IOError("resolve project root", err)
	}

	return func(yield func(ReferenceContent) bool) {
		if len(refs) == 0 {
			return
		}

		// os.Root also refuses symlinks that lead out of the project
		root, err := os.OpenRoot(rootPath)
		if err != nil {
			logging.Logger.Warn("Cannot open project root", "root", rootPath, "error", err)
			return
		}
		defer root.Close()

		for _, ref := range refs {
			if ctx.Err() != nil {
				return
			}

			rel, ok := relativeToRoot(rootPath, ref.Path)
			if !ok {
				logging.Logger.Warn("Reference outside project root, skipping", "session_id", id, "path", ref.Path)
				continue
			}
			data, err := root.ReadFile(rel)
			if err != nil {
				logging.Logger.Warn("Cannot read reference, skipping", "session_id", id, "path", ref.Path, "error", err)
				continue
			}

			if !yield(ReferenceContent{Content: string(data), Path: ref.Path}) {
				return
			}
		}
	}, nil
}

// relativeToRoot returns path relative to root when it lies strictly inside
func relativeToRoot(root, path string) (string, bool) {
	abs := path
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(root, path)
	}
	rel, err := filepath.Rel(root, filepath.Clean(abs))
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return rel, true
}
