package profile

import (
	"context"
	"net/http"
	"path"

	"github.com/bhajian/gigbusters-profile/internal/domain"
	appErrors "github.com/bhajian/gigbusters-profile/pkg/errors"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

// photoKey is the object key for a photo: <userId>/photos/<photoId>.
func photoKey(userID, photoID string) string {
	return path.Join(userID, "photos", photoID)
}

// AddPhoto reserves a photo record and returns a presigned URL for the upload.
// A main photo replaces the previous main one atomically.
func (s *service) AddPhoto(ctx context.Context, userID, accountID string, in domain.PhotoInput) (up *domain.PhotoUpload, err error) {
	ctx, done := s.start(ctx, "AddPhoto", userID, accountID)
	defer func() { done(err) }()

	if err := s.validator.Validate(in); err != nil {
		return nil, err
	}

	photo := domain.PhotoEntry{
		PhotoID:   ulid.Make().String(),
		Bucket:    s.storage.Bucket(),
		CreatedAt: s.now(),
	}
	photo.Key = photoKey(userID, photo.PhotoID)

	url, ttl, err := s.storage.PresignUpload(ctx, photo.Key, in.ContentType)
	if err != nil {
		return nil, err
	}
	if err := s.repo.AddPhoto(ctx, userID, accountID, photo, in.IsMain()); err != nil {
		return nil, mutationError(err, "failed to add photo")
	}

	photo.Main = in.IsMain()
	return &domain.PhotoUpload{
		Photo:     photo,
		UploadURL: url,
		Method:    http.MethodPut,
		ExpiresIn: int64(ttl.Seconds()),
	}, nil
}

func (s *service) SetMainPhoto(ctx context.Context, userID, accountID, photoID string) (err error) {
	ctx, done := s.start(ctx, "SetMainPhoto", userID, accountID)
	defer func() { done(err) }()

	if photoID == "" {
		return appErrors.NewValidation("photoId is required")
	}
	return mutationError(s.repo.SetMainPhoto(ctx, userID, accountID, photoID), "failed to set main photo")
}

// DeletePhoto removes the record first; the stored object is removed best-effort.
func (s *service) DeletePhoto(ctx context.Context, userID, accountID, photoID string) (err error) {
	ctx, done := s.start(ctx, "DeletePhoto", userID, accountID)
	defer func() { done(err) }()

	if photoID == "" {
		return appErrors.NewValidation("photoId is required")
	}
	removed, err := s.repo.DeletePhoto(ctx, userID, accountID, photoID)
	if err != nil {
		return mutationError(err, "failed to delete photo")
	}
	if removed != nil {
		s.deleteObject(ctx, *removed)
	}
	return nil
}

func (s *service) GetPhoto(ctx context.Context, userID, accountID, photoID string) (photo domain.PhotoEntry, err error) {
	ctx, done := s.start(ctx, "GetPhoto", userID, accountID)
	defer func() { done(err) }()

	p, err := s.ownedProfile(ctx, userID, accountID)
	if err != nil || p == nil {
		return domain.PhotoEntry{}, err
	}
	for _, ph := range p.Photos {
		if ph.PhotoID == photoID {
			return ph, nil
		}
	}
	return domain.PhotoEntry{}, nil
}

func (s *service) ListPhotos(ctx context.Context, userID, accountID string) (photos []domain.PhotoEntry, err error) {
	ctx, done := s.start(ctx, "ListPhotos", userID, accountID)
	defer func() { done(err) }()

	p, err := s.ownedProfile(ctx, userID, accountID)
	if err != nil {
		return nil, err
	}
	if p == nil || p.Photos == nil {
		return []domain.PhotoEntry{}, nil
	}
	return p.Photos, nil
}

func (s *service) deleteObject(ctx context.Context, ph domain.PhotoEntry) {
	if s.storage == nil || ph.Key == "" {
		return
	}
	if err := s.storage.Delete(ctx, ph.Key); err != nil {
		s.logger.Warn("photo object left behind", zap.String("photoID", ph.PhotoID), zap.String("key", ph.Key), zap.Error(err))
	}
}
