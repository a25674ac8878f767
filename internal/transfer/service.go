package transfer

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"github.com/imgdock/service/internal/config"
	"github.com/imgdock/service/internal/storage"
)

const (
	// pendingTTL bounds both the upload authorization and the pending record;
	// a transfer not confirmed within it silently expires.
	pendingTTL = 5 * time.Minute
	// urlCacheTTL is how long resolved public URLs stay cached.
	urlCacheTTL = 24 * time.Hour
	// maxIDAttempts bounds regeneration when a fresh id collides with a live
	// pending transfer or an existing image.
	maxIDAttempts = 5
)

// BeginResult is returned by BeginTransfer.
type BeginResult struct {
	ID        string
	UploadURL string
	Key       string
}

// ResolveResult is returned by ResolveImage.
type ResolveResult struct {
	URL       string
	FromCache bool
}

// Service coordinates the transfer lifecycle across the pending store, the
// object-storage gateway, the images table, and the URL cache. It holds no
// mutable state of its own and is safe for concurrent use.
type Service struct {
	store   storage.Storage
	pending PendingStore
	images  ImageRepository
	urls    URLCache
	cfg     *config.Config
}

// NewService creates a new transfer Service.
func NewService(store storage.Storage, pending PendingStore, images ImageRepository, urls URLCache, cfg *config.Config) *Service {
	return &Service{store: store, pending: pending, images: images, urls: urls, cfg: cfg}
}

// BeginTransfer validates the declared upload, issues a presigned PUT URL
// scoped to a date-sharded storage key, and records the pending transfer with
// a 5-minute TTL. The returned id is unique among live pending transfers and
// confirmed images.
func (s *Service) BeginTransfer(ctx context.Context, name string, size int64, contentType string) (*BeginResult, error) {
	if name == "" {
		return nil, invalidInput("name cannot be empty")
	}
	if !strings.HasPrefix(strings.ToLower(contentType), "image/") {
		return nil, invalidInput("unsupported file type, only image/* is accepted")
	}
	if size > s.cfg.MaxSizeBytes {
		return nil, payloadTooLarge(fmt.Sprintf("max %dMB", s.cfg.MaxSizeMB))
	}

	// Key is sharded by the UTC date the transfer begins, not the upload time.
	key := time.Now().UTC().Format("20060102") + "/" + name

	id, err := s.unusedID(ctx)
	if err != nil {
		return nil, err
	}

	uploadURL, err := s.store.PresignedPut(ctx, key, pendingTTL)
	if err != nil {
		return nil, internalError("upload authorization failed", err)
	}

	if err := s.pending.Put(ctx, id, &PendingTransfer{Key: key, Size: size}, pendingTTL); err != nil {
		return nil, internalError("could not record transfer", err)
	}

	log.Printf("transfer %s: started for %s", id, key)
	return &BeginResult{ID: id, UploadURL: uploadURL, Key: key}, nil
}

// ConfirmTransfer checks that the object for a pending transfer actually
// landed in storage and publishes the image record. The pending record is the
// confirmation ticket: once it is gone the transfer reads as expired or
// unknown. Pending cleanup and the cache write-through are best-effort; their
// failure never fails a confirm that already persisted the record.
func (s *Service) ConfirmTransfer(ctx context.Context, id string) error {
	pt, err := s.pending.Get(ctx, id)
	if errors.Is(err, ErrPendingNotFound) {
		return notFound("transfer expired or not found")
	}
	if err != nil {
		return internalError("could not load transfer", err)
	}

	exists, err := s.store.Exists(ctx, pt.Key)
	if err != nil {
		return internalError("storage check failed", err)
	}
	if !exists {
		// Pending record stays intact so the client can retry after uploading.
		return invalidInput("file not uploaded to storage")
	}
	log.Printf("transfer %s: verified %s", id, pt.Key)

	img := &Image{
		ID:         id,
		Key:        pt.Key,
		SizeMB:     math.Round(float64(pt.Size)/(1024*1024)*100) / 100,
		UploadedAt: time.Now().Unix(),
	}
	err = s.images.CreateIfAbsent(ctx, img)
	if err != nil && !errors.Is(err, ErrImageExists) {
		// Pending record stays intact; the confirm is retryable.
		return internalError("could not save image", err)
	}
	if errors.Is(err, ErrImageExists) {
		// A concurrent confirm already published the same record.
		log.Printf("transfer %s: already confirmed", id)
	} else {
		log.Printf("transfer %s: saved", id)
	}

	if err := s.pending.Delete(ctx, id); err != nil {
		log.Printf("transfer %s: pending cleanup failed: %v", id, err)
	}
	if err := s.urls.Put(ctx, id, s.store.PublicURL(img.Key), urlCacheTTL); err != nil {
		log.Printf("transfer %s: url cache write failed: %v", id, err)
	}

	return nil
}

// ResolveImage returns the public URL for a confirmed image, serving from the
// URL cache when possible and falling back to the images table, which stays
// authoritative. Cache failures degrade to misses; they never fail the lookup.
func (s *Service) ResolveImage(ctx context.Context, id string) (*ResolveResult, error) {
	url, err := s.urls.Get(ctx, id)
	if err == nil {
		return &ResolveResult{URL: url, FromCache: true}, nil
	}
	if !errors.Is(err, ErrCacheMiss) {
		log.Printf("image %s: cache read failed: %v", id, err)
	}

	img, err := s.images.Get(ctx, id)
	if errors.Is(err, ErrImageNotFound) {
		return nil, notFound("image not found")
	}
	if err != nil {
		return nil, internalError("could not load image", err)
	}

	url = s.store.PublicURL(img.Key)
	if err := s.urls.Put(ctx, id, url, urlCacheTTL); err != nil {
		log.Printf("image %s: cache refresh failed: %v", id, err)
	}

	return &ResolveResult{URL: url, FromCache: false}, nil
}

// unusedID generates identifiers until one is free in both the pending store
// and the images table, within a bounded number of attempts.
func (s *Service) unusedID(ctx context.Context) (string, error) {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id, err := generateID()
		if err != nil {
			return "", internalError("could not generate id", err)
		}

		_, err = s.pending.Get(ctx, id)
		if err == nil {
			continue
		}
		if !errors.Is(err, ErrPendingNotFound) {
			return "", internalError("could not check pending id", err)
		}

		_, err = s.images.Get(ctx, id)
		if err == nil {
			continue
		}
		if !errors.Is(err, ErrImageNotFound) {
			return "", internalError("could not check image id", err)
		}

		return id, nil
	}
	return "", internalError("could not allocate a free id", nil)
}
