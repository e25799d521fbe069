package tree

import "errors"

var (
	// ErrReadDir indicates a directory inside the docs tree could not be listed.
	ErrReadDir = errors.New("docs directory read failed")

	// ErrNoCategories indicates the docs root holds no category directory with content.
	ErrNoCategories = errors.New("no documentation categories found")
)
