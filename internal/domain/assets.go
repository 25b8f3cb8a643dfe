package domain

import (
	"fmt"
	"io"
)

// FileUpload is a file streamed from the admin request into storage.
type FileUpload struct {
	Name        string
	ContentType string
	Size        int64
	Data        io.Reader
}

// ModelAction says what to do with a product's 3D model during an edit.
type ModelAction string

const (
	ModelKeep    ModelAction = "keep"
	ModelReplace ModelAction = "replace"
	ModelRemove  ModelAction = "remove"
)

// ModelEdit is a tagged edit of the product model. File is set only for
// ModelReplace.
type ModelEdit struct {
	Action ModelAction
	File   *FileUpload
}

// Valid reports whether the action is one of the known variants and the file
// is present exactly when replacing.
func (e ModelEdit) Valid() bool {
	switch e.Action {
	case ModelKeep, ModelRemove:
		return e.File == nil
	case ModelReplace:
		return e.File != nil
	default:
		return false
	}
}

// KeptImages returns existing minus removed, preserving the order of
// existing. Removal entries that do not match any existing URL are ignored.
func KeptImages(existing, removed []string) []string {
	removedSet := make(map[string]struct{}, len(removed))
	for _, url := range removed {
		removedSet[url] = struct{}{}
	}

	kept := make([]string, 0, len(existing))
	for _, url := range existing {
		if _, gone := removedSet[url]; !gone {
			kept = append(kept, url)
		}
	}
	return kept
}

// DeletableImages returns the intersection of removed and existing, in
// existing order. Only URLs the product actually references may be deleted
// from storage.
func DeletableImages(existing, removed []string) []string {
	removedSet := make(map[string]struct{}, len(removed))
	for _, url := range removed {
		removedSet[url] = struct{}{}
	}

	var deletable []string
	for _, url := range existing {
		if _, gone := removedSet[url]; gone {
			deletable = append(deletable, url)
		}
	}
	return deletable
}

// ValidateImageCount checks that a product write would leave between
// MinProductImages and MaxProductImages images. It must pass before any
// storage or catalog call is made.
func ValidateImageCount(kept, added int) error {
	total := kept + added
	if total < MinProductImages {
		return fmt.Errorf("product must keep at least %d image", MinProductImages)
	}
	if total > MaxProductImages {
		return fmt.Errorf("product cannot have more than %d images", MaxProductImages)
	}
	return nil
}
