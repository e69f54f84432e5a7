package submission

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"auction-marketplace/internal/marketerrors"

	"github.com/gabriel-vasile/mimetype"
)

const (
	MaxImages     = 5
	MaxImageBytes = 5 << 20
)

// AllowedImageTypes is the MIME allow-list, checked against the sniffed content
var AllowedImageTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

// Image is one accepted upload
type Image struct {
	Name string
	MIME string
	Data []byte
}

// Size is the file size in bytes
func (i Image) Size() int {
	return len(i.Data)
}

// ImageError names the file that was rejected
type ImageError struct {
	Name string
	Err  error
}

func (e *ImageError) Error() string {
	return fmt.Sprintf("%s: %s", e.Name, e.message())
}

func (e *ImageError) Unwrap() error {
	return e.Err
}

// First is the user-facing message for the rejection
func (e *ImageError) First() string {
	return e.Name + ": " + e.message()
}

func (e *ImageError) message() string {
	switch e.Err {
	case marketerrors.ErrImageTooLarge:
		return fmt.Sprintf("file is larger than %d MB", MaxImageBytes>>20)
	case marketerrors.ErrImageType:
		return "only JPEG, PNG, GIF and WebP images are allowed"
	case marketerrors.ErrTooManyImages:
		return fmt.Sprintf("you can upload at most %d images", MaxImages)
	case marketerrors.ErrDuplicateImage:
		return "this image has already been added"
	default:
		return e.Err.Error()
	}
}

// ImageSet holds the images picked for a submission, in the order they were added
type ImageSet struct {
	mu     sync.Mutex
	images []Image
}

// NewImageSet creates an empty set
func NewImageSet() *ImageSet {
	return &ImageSet{}
}

// Add checks count, size, type and duplicates, in that order, and keeps the file if all pass
func (s *ImageSet) Add(name string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	reject := func(err error) error {
		return &ImageError{Name: name, Err: err}
	}

	if len(s.images) >= MaxImages {
		return reject(marketerrors.ErrTooManyImages)
	}
	if len(data) > MaxImageBytes {
		return reject(marketerrors.ErrImageTooLarge)
	}

	mime := mimetype.Detect(data)
	if !mimetype.EqualsAny(mime.String(), AllowedImageTypes...) {
		return reject(marketerrors.ErrImageType)
	}

	for _, img := range s.images {
		if img.Name == name && img.Size() == len(data) {
			return reject(marketerrors.ErrDuplicateImage)
		}
	}

	s.images = append(s.images, Image{Name: name, MIME: mime.String(), Data: data})
	return nil
}

// AddFile reads path and adds it under its base name
func (s *ImageSet) AddFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat image: %w", err)
	}
	name := filepath.Base(path)
	if info.Size() > MaxImageBytes {
		return &ImageError{Name: name, Err: marketerrors.ErrImageTooLarge}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read image: %w", err)
	}
	return s.Add(name, data)
}

// File is a picked or dropped file before it is checked
type File struct {
	Name string
	Data []byte
}

// AddAll adds every file and returns the rejections; accepted files stay in the set
func (s *ImageSet) AddAll(files ...File) []error {
	var errs []error
	for _, f := range files {
		if err := s.Add(f.Name, f.Data); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// Remove drops the first image with name
func (s *ImageSet) Remove(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, img := range s.images {
		if img.Name == name {
			s.images = append(s.images[:i], s.images[i+1:]...)
			return true
		}
	}
	return false
}

// Len is the number of accepted images
func (s *ImageSet) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.images)
}

// Images returns a copy of the accepted images
func (s *ImageSet) Images() []Image {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Image, len(s.images))
	copy(out, s.images)
	return out
}
