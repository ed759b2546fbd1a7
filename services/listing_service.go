package services

import (
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/Modeva-Ecommerce/marketplace-storefront/models"
	"github.com/gabriel-vasile/mimetype"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrMissingFields   = errors.New("required fields missing")
	ErrInvalidCategory = errors.New("unknown listing category")
	ErrInvalidPrice    = errors.New("price must be a non-negative number")
	ErrNoImages        = errors.New("no product images")
	ErrFormTooLarge    = errors.New("listing form too large")
)

const (
	DefaultMaxImages     = 5
	DefaultMaxImageBytes = 10 << 20
)

// Listing is a validated seller listing. It is never stored.
type Listing struct {
	Name        string
	Category    string
	Price       decimal.Decimal
	Description string
	Features    []string
}

// ValidateListing checks the listing form. Required-field problems are
// reported before category and price problems.
func ValidateListing(req models.ListingRequest) (Listing, error) {
	l := Listing{
		Name:        strings.TrimSpace(req.Name),
		Category:    strings.TrimSpace(req.Category),
		Description: strings.TrimSpace(req.Description),
		Features:    make([]string, 0, len(req.Features)),
	}
	rawPrice := strings.TrimSpace(req.Price)

	if l.Name == "" || l.Category == "" || rawPrice == "" || l.Description == "" {
		return Listing{}, ErrMissingFields
	}
	if !models.IsListingCategory(l.Category) {
		return Listing{}, fmt.Errorf("%w: %q", ErrInvalidCategory, l.Category)
	}

	price, err := decimal.NewFromString(rawPrice)
	if err != nil || price.IsNegative() {
		return Listing{}, fmt.Errorf("%w: %q", ErrInvalidPrice, rawPrice)
	}
	l.Price = price

	for _, f := range req.Features {
		if f = strings.TrimSpace(f); f != "" {
			l.Features = append(l.Features, f)
		}
	}
	return l, nil
}

// ════════════════════════════════════════════════════════════
// Image intake
// ════════════════════════════════════════════════════════════

// ImageIntake filters uploaded files down to the images a listing keeps.
type ImageIntake struct {
	MaxImages int
	MaxBytes  int64
	Log       *zap.Logger
}

func NewImageIntake(maxImages int, maxBytes int64, log *zap.Logger) *ImageIntake {
	if maxImages <= 0 {
		maxImages = DefaultMaxImages
	}
	if maxBytes <= 0 {
		maxBytes = DefaultMaxImageBytes
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &ImageIntake{MaxImages: maxImages, MaxBytes: maxBytes, Log: log}
}

// Collect keeps, in upload order, at most MaxImages files whose content is an
// image and whose size is within MaxBytes. Everything else is dropped
// silently. The first kept image is the main one.
func (in *ImageIntake) Collect(files []*multipart.FileHeader) ([]models.ImageRef, error) {
	refs := make([]models.ImageRef, 0, min(len(files), in.MaxImages))

	for _, fh := range files {
		if len(refs) == in.MaxImages {
			in.Log.Debug("image cap reached", zap.Int("dropped", len(files)-len(refs)))
			break
		}
		if fh.Size > in.MaxBytes {
			in.Log.Debug("dropping oversized upload", zap.String("file", fh.Filename), zap.Int64("size", fh.Size))
			continue
		}

		mime, err := sniff(fh)
		if err != nil {
			in.Log.Debug("dropping unreadable upload", zap.String("file", fh.Filename), zap.Error(err))
			continue
		}
		if !strings.HasPrefix(mime.String(), "image/") {
			in.Log.Debug("dropping non-image upload", zap.String("file", fh.Filename), zap.String("mime", mime.String()))
			continue
		}

		refs = append(refs, models.ImageRef{
			Name:        fh.Filename,
			ContentType: mime.String(),
			Size:        fh.Size,
			Main:        len(refs) == 0,
		})
	}

	if len(refs) == 0 {
		return nil, ErrNoImages
	}
	return refs, nil
}

func sniff(fh *multipart.FileHeader) (*mimetype.MIME, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return mimetype.DetectReader(f)
}

// ════════════════════════════════════════════════════════════
// Shopper-facing messages
// ════════════════════════════════════════════════════════════

// FormErrorMessage turns a form validation error into the description shown
// to the shopper.
func FormErrorMessage(err error) string {
	switch {
	case errors.Is(err, ErrMissingFields):
		return "Please fill in all required fields"
	case errors.Is(err, ErrNoImages):
		return "Please upload at least one product image"
	case errors.Is(err, ErrFormTooLarge):
		return "Your upload is too large. Please use fewer or smaller images"
	case errors.Is(err, ErrInvalidCategory):
		return "Please choose a valid category"
	case errors.Is(err, ErrInvalidPrice):
		return "Please enter a valid price"
	case errors.Is(err, ErrPasswordMismatch):
		return "Passwords do not match"
	}
	return "Something went wrong"
}
