// Package http exposes the admin dashboard's REST surface. Handlers parse
// and validate requests, delegate to the service layer, and write the shared
// response envelope.
package http

import (
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/TVAexe/ar-fe-admin/pkg/httputil"
	"github.com/TVAexe/ar-fe-admin/pkg/pagination"
	pkgvalidator "github.com/TVAexe/ar-fe-admin/pkg/validator"

	"github.com/TVAexe/ar-fe-admin/internal/domain"
	"github.com/TVAexe/ar-fe-admin/internal/service"
)

// maxProductFormSize bounds a product multipart form: up to five images plus
// a 3D model file.
const maxProductFormSize = 64 << 20

// ProductHandler handles HTTP requests for product endpoints.
type ProductHandler struct {
	service *service.ProductService
	logger  *slog.Logger
}

// NewProductHandler creates a new product HTTP handler.
func NewProductHandler(svc *service.ProductService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		service: svc,
		logger:  logger,
	}
}

// List handles GET /api/v1/admin/products.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.List(r.Context(), pagination.FromRequest(r))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteData(w, http.StatusOK, "products fetched", page)
}

// Get handles GET /api/v1/admin/products/{id}.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	product, err := h.service.Get(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteData(w, http.StatusOK, "product fetched", product)
}

// Create handles POST /api/v1/admin/products (multipart/form-data).
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxProductFormSize)
	if err := r.ParseMultipartForm(maxProductFormSize); err != nil {
		httputil.WriteValidationError(w, errors.New("failed to parse multipart form: "+err.Error()))
		return
	}
	defer cleanupForm(r)

	fields, err := parseProductFields(r)
	if err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	images, closeImages, err := formFiles(r, "images")
	if err != nil {
		httputil.WriteValidationError(w, err)
		return
	}
	defer closeImages()

	modelFile, closeModel, err := optionalFormFile(r, "modelFile")
	if err != nil {
		httputil.WriteValidationError(w, err)
		return
	}
	defer closeModel()

	input := service.CreateProductInput{
		Name:        fields.name,
		OldPrice:    fields.oldPrice,
		SaleRate:    fields.saleRate,
		Quantity:    fields.quantity,
		Description: fields.description,
		CategoryID:  fields.categoryID,
		Images:      images,
		ModelFile:   modelFile,
	}

	product, err := h.service.Create(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	httputil.WriteData(w, http.StatusCreated, "product created", product)
}

// Update handles PUT /api/v1/admin/products/{id} (multipart/form-data). The
// form carries the scalar fields, the removed image URLs, the newly added
// image files, and the model action with its optional file.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxProductFormSize)
	if err := r.ParseMultipartForm(maxProductFormSize); err != nil {
		httputil.WriteValidationError(w, errors.New("failed to parse multipart form: "+err.Error()))
		return
	}
	defer cleanupForm(r)

	fields, err := parseProductFields(r)
	if err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	added, closeAdded, err := formFiles(r, "images")
	if err != nil {
		httputil.WriteValidationError(w, err)
		return
	}
	defer closeAdded()

	model, closeModel, err := parseModelEdit(r)
	if err != nil {
		httputil.WriteValidationError(w, err)
		return
	}
	defer closeModel()

	input := service.UpdateProductInput{
		Name:          fields.name,
		OldPrice:      fields.oldPrice,
		SaleRate:      fields.saleRate,
		Quantity:      fields.quantity,
		Description:   fields.description,
		CategoryID:    fields.categoryID,
		RemovedImages: r.MultipartForm.Value["removedImages"],
		AddedImages:   added,
		Model:         model,
	}

	product, err := h.service.Update(r.Context(), id, input)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	httputil.WriteData(w, http.StatusOK, "product updated", product)
}

// Delete handles DELETE /api/v1/admin/products/{id}.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteData(w, http.StatusOK, "product deleted", nil)
}

// --- Multipart helpers ---

type productFields struct {
	name        string
	oldPrice    float64
	saleRate    float64
	quantity    int
	description string
	categoryID  int64
}

func parseProductFields(r *http.Request) (productFields, error) {
	var f productFields
	var err error

	f.name = r.FormValue("name")
	f.description = r.FormValue("description")

	if f.oldPrice, err = parseFloatField(r, "oldPrice"); err != nil {
		return f, err
	}
	if f.saleRate, err = parseFloatField(r, "saleRate"); err != nil {
		return f, err
	}

	quantity := r.FormValue("quantity")
	if f.quantity, err = strconv.Atoi(quantity); err != nil {
		return f, errors.New("quantity must be an integer")
	}

	categoryID := r.FormValue("categoryId")
	if f.categoryID, err = strconv.ParseInt(categoryID, 10, 64); err != nil {
		return f, errors.New("categoryId must be an integer")
	}

	return f, nil
}

func parseFloatField(r *http.Request, field string) (float64, error) {
	v, err := strconv.ParseFloat(r.FormValue(field), 64)
	if err != nil {
		return 0, errors.New(field + " must be a number")
	}
	return v, nil
}

// parseModelEdit reads the modelAction field and its file. A missing action
// means keep.
func parseModelEdit(r *http.Request) (domain.ModelEdit, func(), error) {
	noop := func() {}

	action := domain.ModelAction(r.FormValue("modelAction"))
	if action == "" {
		action = domain.ModelKeep
	}

	switch action {
	case domain.ModelKeep, domain.ModelRemove:
		return domain.ModelEdit{Action: action}, noop, nil

	case domain.ModelReplace:
		file, closeFile, err := optionalFormFile(r, "modelFile")
		if err != nil {
			return domain.ModelEdit{}, noop, err
		}
		if file == nil {
			return domain.ModelEdit{}, noop, errors.New("modelFile is required when modelAction is replace")
		}
		return domain.ModelEdit{Action: domain.ModelReplace, File: file}, closeFile, nil

	default:
		return domain.ModelEdit{}, noop, errors.New("modelAction must be one of keep, replace, remove")
	}
}

// formFiles opens every file uploaded under the given field. The returned
// closer must be called after the service is done reading.
func formFiles(r *http.Request, field string) ([]domain.FileUpload, func(), error) {
	headers := r.MultipartForm.File[field]

	var opened []multipart.File
	closeAll := func() {
		for _, f := range opened {
			_ = f.Close()
		}
	}

	uploads := make([]domain.FileUpload, 0, len(headers))
	for _, header := range headers {
		file, err := header.Open()
		if err != nil {
			closeAll()
			return nil, func() {}, errors.New("failed to read uploaded file " + header.Filename)
		}
		opened = append(opened, file)
		uploads = append(uploads, fileUpload(header, file))
	}
	return uploads, closeAll, nil
}

// optionalFormFile opens a single optional file. It returns nil without error
// when the field is absent.
func optionalFormFile(r *http.Request, field string) (*domain.FileUpload, func(), error) {
	noop := func() {}

	headers := r.MultipartForm.File[field]
	if len(headers) == 0 {
		return nil, noop, nil
	}

	file, err := headers[0].Open()
	if err != nil {
		return nil, noop, errors.New("failed to read uploaded file " + headers[0].Filename)
	}

	upload := fileUpload(headers[0], file)
	return &upload, func() { _ = file.Close() }, nil
}

func fileUpload(header *multipart.FileHeader, file multipart.File) domain.FileUpload {
	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return domain.FileUpload{
		Name:        header.Filename,
		ContentType: contentType,
		Size:        header.Size,
		Data:        file,
	}
}

func cleanupForm(r *http.Request) {
	if r.MultipartForm != nil {
		_ = r.MultipartForm.RemoveAll()
	}
}

// writeServiceError maps a service error to the envelope, giving field-level
// detail for validation failures.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	var valErr *pkgvalidator.ValidationError
	if errors.As(err, &valErr) {
		httputil.WriteValidationError(w, err)
		return
	}
	httputil.WriteError(w, r, err, logger)
}
