// Package service implements the admin dashboard's business logic on top of
// the catalog backend, file storage and the response cache. Services own the
// write-path orchestration; reads go through the cache.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	apperrors "github.com/TVAexe/ar-fe-admin/pkg/errors"
	"github.com/TVAexe/ar-fe-admin/pkg/pagination"
	pkgvalidator "github.com/TVAexe/ar-fe-admin/pkg/validator"

	"github.com/TVAexe/ar-fe-admin/internal/backend"
	"github.com/TVAexe/ar-fe-admin/internal/cache"
	"github.com/TVAexe/ar-fe-admin/internal/domain"
	"github.com/TVAexe/ar-fe-admin/internal/event"
	"github.com/TVAexe/ar-fe-admin/internal/storage"
)

// Cache entity prefixes. Mutations invalidate the whole prefix.
const (
	productEntity  = "products"
	categoryEntity = "categories"
	orderEntity    = "orders"
	userEntity     = "users"
	roleEntity     = "roles"
	statsEntity    = "stats"
)

// ProductService orchestrates product CRUD and the image/model reconciliation
// that keeps the catalog and file storage consistent.
type ProductService struct {
	cached
	catalog  backend.ProductAPI
	files    storage.FileStorage
	producer *event.Producer
	logger   *slog.Logger
}

// NewProductService creates a new product service.
func NewProductService(
	catalog backend.ProductAPI,
	files storage.FileStorage,
	store cache.Store,
	producer *event.Producer,
	logger *slog.Logger,
) *ProductService {
	return &ProductService{
		cached:   cached{store: store, logger: logger},
		catalog:  catalog,
		files:    files,
		producer: producer,
		logger:   logger,
	}
}

// CreateProductInput holds the parameters for creating a product. The files
// are forwarded to the backend as-is; the backend performs the upload.
type CreateProductInput struct {
	Name        string              `validate:"required"`
	OldPrice    float64             `validate:"gte=0"`
	SaleRate    float64             `validate:"gte=0,lte=100"`
	Quantity    int                 `validate:"gte=0"`
	Description string              `validate:"required"`
	CategoryID  int64               `validate:"gt=0"`
	Images      []domain.FileUpload `validate:"-"`
	ModelFile   *domain.FileUpload  `validate:"-"`
}

// UpdateProductInput holds the parameters for a product edit. RemovedImages
// and AddedImages describe the image delta against the stored product; Model
// says what happens to the 3D model.
type UpdateProductInput struct {
	Name        string  `validate:"required"`
	OldPrice    float64 `validate:"gte=0"`
	SaleRate    float64 `validate:"gte=0,lte=100"`
	Quantity    int     `validate:"gte=0"`
	Description string  `validate:"required"`
	CategoryID  int64   `validate:"gt=0"`

	RemovedImages []string            `validate:"-"`
	AddedImages   []domain.FileUpload `validate:"-"`
	Model         domain.ModelEdit    `validate:"-"`
}

// List returns one page of products, served from the cache when fresh.
func (s *ProductService) List(ctx context.Context, params pagination.Params) (pagination.Result[domain.Product], error) {
	key := cache.ListKey(productEntity, params)

	var page pagination.Result[domain.Product]
	if hit := s.cacheGet(ctx, key, &page); hit {
		return page, nil
	}

	page, err := s.catalog.ListProducts(ctx, params)
	if err != nil {
		return pagination.Result[domain.Product]{}, err
	}

	s.cacheSet(ctx, key, page)
	return page, nil
}

// Get returns a single product, served from the cache when fresh.
func (s *ProductService) Get(ctx context.Context, id int64) (*domain.Product, error) {
	key := cache.DetailKey(productEntity, id)

	var product domain.Product
	if hit := s.cacheGet(ctx, key, &product); hit {
		return &product, nil
	}

	fetched, err := s.catalog.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	s.cacheSet(ctx, key, fetched)
	return fetched, nil
}

// Create validates the input and forwards the creation to the backend.
func (s *ProductService) Create(ctx context.Context, input CreateProductInput) (*domain.Product, error) {
	if err := pkgvalidator.Validate(&input); err != nil {
		return nil, err
	}
	if err := domain.ValidateImageCount(0, len(input.Images)); err != nil {
		return nil, apperrors.InvalidInput(err.Error())
	}

	created, err := s.catalog.CreateProduct(ctx, backend.CreateProductInput{
		Name:        input.Name,
		OldPrice:    input.OldPrice,
		SaleRate:    input.SaleRate,
		Quantity:    input.Quantity,
		Description: input.Description,
		CategoryID:  input.CategoryID,
		Images:      input.Images,
		ModelFile:   input.ModelFile,
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, productEntity+":")
	s.publishProduct(ctx, event.TopicProductCreated, created)

	s.logger.InfoContext(ctx, "product created",
		slog.Int64("product_id", created.ID),
		slog.String("name", created.Name),
	)
	return created, nil
}

// Update applies a product edit. Input is validated and the resulting image
// count checked before any storage or catalog call is made. Removed assets
// are deleted best-effort; uploads are fatal; the catalog update runs last so
// a failure anywhere earlier never leaves the catalog pointing at missing
// files.
func (s *ProductService) Update(ctx context.Context, id int64, input UpdateProductInput) (*domain.Product, error) {
	if err := pkgvalidator.Validate(&input); err != nil {
		return nil, err
	}
	if !input.Model.Valid() {
		return nil, apperrors.InvalidInput("model edit requires a file exactly when replacing")
	}

	existing, err := s.catalog.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	kept := domain.KeptImages(existing.ImageURL, input.RemovedImages)
	if err := domain.ValidateImageCount(len(kept), len(input.AddedImages)); err != nil {
		return nil, apperrors.InvalidInput(err.Error())
	}

	// Only URLs the product actually references are deleted, in parallel.
	// Failures leave orphans in storage but never block the edit.
	s.deleteAssets(ctx, domain.DeletableImages(existing.ImageURL, input.RemovedImages))

	var uploaded []string
	if len(input.AddedImages) > 0 {
		uploaded, err = s.files.UploadMany(ctx, input.AddedImages)
		if err != nil {
			return nil, apperrors.UploadFailed("image upload failed", err)
		}
	}

	finalImages := make([]string, 0, len(kept)+len(uploaded))
	finalImages = append(finalImages, kept...)
	finalImages = append(finalImages, uploaded...)

	modelURL, err := s.resolveModel(ctx, existing, input.Model)
	if err != nil {
		return nil, err
	}

	updated, err := s.catalog.UpdateProduct(ctx, id, backend.UpdateProductPayload{
		Name:        input.Name,
		OldPrice:    input.OldPrice,
		SaleRate:    input.SaleRate,
		Quantity:    input.Quantity,
		Description: input.Description,
		CategoryID:  input.CategoryID,
		ImageURL:    finalImages,
		ModelURL:    modelURL,
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, productEntity+":")
	s.publishProduct(ctx, event.TopicProductUpdated, updated)

	s.logger.InfoContext(ctx, "product updated",
		slog.Int64("product_id", id),
		slog.Int("images", len(finalImages)),
	)
	return updated, nil
}

// Delete removes a product from the catalog.
func (s *ProductService) Delete(ctx context.Context, id int64) error {
	if err := s.catalog.DeleteProduct(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx, productEntity+":")
	if err := s.producer.PublishProductEvent(ctx, event.TopicProductDeleted, event.ProductEventData{ProductID: id}); err != nil {
		s.logger.WarnContext(ctx, "failed to publish product.deleted event",
			slog.Int64("product_id", id),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "product deleted", slog.Int64("product_id", id))
	return nil
}

// resolveModel returns the model URL the updated product should carry. A
// replacement uploads the new file before the old one is touched, so a failed
// upload leaves the current model intact.
func (s *ProductService) resolveModel(ctx context.Context, existing *domain.Product, edit domain.ModelEdit) (string, error) {
	current := existing.CurrentModelURL()

	switch edit.Action {
	case domain.ModelKeep:
		return current, nil

	case domain.ModelReplace:
		urls, err := s.files.UploadMany(ctx, []domain.FileUpload{*edit.File})
		if err != nil {
			return "", apperrors.UploadFailed("model upload failed", err)
		}
		if len(urls) != 1 {
			return "", apperrors.UploadFailed(fmt.Sprintf("model upload returned %d urls", len(urls)), nil)
		}
		if current != "" {
			s.deleteAssets(ctx, []string{current})
		}
		return urls[0], nil

	case domain.ModelRemove:
		if current != "" {
			s.deleteAssets(ctx, []string{current})
		}
		return "", nil

	default:
		return "", apperrors.InvalidInput("unknown model action")
	}
}

// deleteAssets removes storage objects in parallel. Delete failures are
// logged and swallowed; the catalog stays authoritative either way.
func (s *ProductService) deleteAssets(ctx context.Context, urls []string) {
	if len(urls) == 0 {
		return
	}

	var wg sync.WaitGroup
	for _, url := range urls {
		wg.Add(1)
		go func(fileURL string) {
			defer wg.Done()
			if err := s.files.Delete(ctx, fileURL); err != nil {
				s.logger.WarnContext(ctx, "failed to delete storage asset",
					slog.String("file_url", fileURL),
					slog.String("error", err.Error()),
				)
			}
		}(url)
	}
	wg.Wait()
}

func (s *ProductService) publishProduct(ctx context.Context, topic string, product *domain.Product) {
	data := event.ProductEventData{
		ProductID:  product.ID,
		Name:       product.Name,
		CategoryID: product.Category.ID,
		ImageCount: len(product.ImageURL),
		ImageURLs:  product.ImageURL,
		ModelURL:   product.CurrentModelURL(),
	}
	if err := s.producer.PublishProductEvent(ctx, topic, data); err != nil {
		s.logger.WarnContext(ctx, "failed to publish product event",
			slog.String("topic", topic),
			slog.Int64("product_id", product.ID),
			slog.String("error", err.Error()),
		)
	}
}

