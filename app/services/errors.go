package services

import "errors"

var (
	// ErrInvalidReference means a request named an entity (user, product,
	// category) that does not exist; nothing was persisted.
	ErrInvalidReference = errors.New("referenced entity does not exist")

	// ErrPartialFailure means the primary write succeeded but a derived
	// update did not. The created entity is still valid and returned.
	ErrPartialFailure = errors.New("derived update failed after primary write")

	// ErrUpstream means a proxied third-party service failed or did not
	// answer in time.
	ErrUpstream = errors.New("upstream service unavailable")

	// ErrEmptyPatch means a partial update carried no fields at all.
	ErrEmptyPatch = errors.New("no fields to update")
)
