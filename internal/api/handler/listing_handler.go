package handler

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/comunidadlocatarios/rental-platform/internal/api/metrics"
	"github.com/comunidadlocatarios/rental-platform/internal/core/ports"
)

// ListingHandler handles HTTP requests for property listings.
type ListingHandler struct {
	service ports.ListingService
}

func NewListingHandler(service ports.ListingService) *ListingHandler {
	return &ListingHandler{service: service}
}

// Search handles GET /propiedades.
//
// @Summary      Search published listings
// @Tags         propiedades
// @Produce      json
// @Param        tipo        query     string  false  "Property type"     Enums(Departamento, Casa, Estudio, Loft, Monoambiente)
// @Param        gestion     query     string  false  "Management mode"
// @Param        precio_min  query     number  false  "Minimum price (inclusive)"
// @Param        precio_max  query     number  false  "Maximum price (inclusive)"
// @Param        ciudad      query     string  false  "City, case-insensitive substring"
// @Param        titulo      query     string  false  "Title, case-insensitive substring"
// @Param        estado      query     string  false  "Listing status"  Enums(disponible, alquilada)
// @Param        page        query     int     false  "Page (1-based)"
// @Param        limit       query     int     false  "Page size (max 100)"
// @Success      200  {object}  listListingsResponse
// @Failure      400  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /propiedades [get]
func (h *ListingHandler) Search(c echo.Context) error {
	input := ports.SearchInput{
		Tipo:    c.QueryParam("tipo"),
		Gestion: c.QueryParam("gestion"),
		Ciudad:  c.QueryParam("ciudad"),
		Titulo:  c.QueryParam("titulo"),
		Estado:  c.QueryParam("estado"),
	}

	var err error
	if input.PrecioMin, err = queryFloat(c, "precio_min"); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "precio_min must be a number")
	}
	if input.PrecioMax, err = queryFloat(c, "precio_max"); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "precio_max must be a number")
	}
	input.Page, _ = strconv.Atoi(c.QueryParam("page"))
	input.Limit, _ = strconv.Atoi(c.QueryParam("limit"))

	result, err := h.service.Search(c.Request().Context(), input)
	if err != nil {
		return err
	}

	filtered := "no"
	if input.Tipo != "" || input.Gestion != "" || input.Ciudad != "" || input.Titulo != "" ||
		input.Estado != "" || input.PrecioMin != nil || input.PrecioMax != nil {
		filtered = "yes"
	}
	metrics.SearchesTotal.WithLabelValues(filtered).Inc()

	return c.JSON(http.StatusOK, toListResponse(result))
}

// Get handles GET /propiedades/:id.
//
// @Summary      Get a listing by id
// @Tags         propiedades
// @Produce      json
// @Param        id   path      string  true  "Listing id"
// @Success      200  {object}  listingResponse
// @Failure      404  {object}  errorResponse
// @Router       /propiedades/{id} [get]
func (h *ListingHandler) Get(c echo.Context) error {
	listing, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListingResponse(listing))
}

// Mine handles GET /v1/propiedades/mias.
//
// @Summary      List the caller's own listings
// @Tags         propiedades
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page (1-based)"
// @Param        limit  query     int  false  "Page size (max 100)"
// @Success      200  {object}  listListingsResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/propiedades/mias [get]
func (h *ListingHandler) Mine(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.service.Mine(c.Request().Context(), userID, page, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListResponse(result))
}

// Create handles POST /v1/propiedades.
//
// @Summary      Publish a new listing
// @Tags         propiedades
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      listingRequest  true  "Listing details"
// @Success      201   {object}  listingResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/propiedades [post]
func (h *ListingHandler) Create(c echo.Context) error {
	var req listingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	listing, err := h.service.Create(c.Request().Context(), userID, toListingInput(req))
	if err != nil {
		return err
	}

	metrics.ListingsCreatedTotal.WithLabelValues(string(listing.Tipo)).Inc()
	return c.JSON(http.StatusCreated, toListingResponse(listing))
}

// Update handles PUT /v1/propiedades/:id.
//
// @Summary      Update an existing listing
// @Tags         propiedades
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Listing id"
// @Param        body  body      listingRequest  true  "Listing details"
// @Success      200   {object}  listingResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/propiedades/{id} [put]
func (h *ListingHandler) Update(c echo.Context) error {
	var req listingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	userID, role, err := ctxClaims(c)
	if err != nil {
		return err
	}

	listing, err := h.service.Update(c.Request().Context(), c.Param("id"), userID, role, toListingInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListingResponse(listing))
}

// Delete handles DELETE /v1/propiedades/:id.
//
// @Summary      Delete a listing
// @Tags         propiedades
// @Security     BearerAuth
// @Param        id  path  string  true  "Listing id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/propiedades/{id} [delete]
func (h *ListingHandler) Delete(c echo.Context) error {
	userID, role, err := ctxClaims(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), userID, role); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// UploadImages handles POST /v1/propiedades/:id/imagenes.
// The multipart field "imagenes" may repeat; uploads run sequentially
// and individual failures are reported, not fatal.
//
// @Summary      Upload listing images
// @Tags         propiedades
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id        path      string  true  "Listing id"
// @Param        imagenes  formData  file    true  "Image files (up to 5 per listing)"
// @Success      200  {object}  uploadImagesResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /v1/propiedades/{id}/imagenes [post]
func (h *ListingHandler) UploadImages(c echo.Context) error {
	userID, role, err := ctxClaims(c)
	if err != nil {
		return err
	}

	form, err := c.MultipartForm()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid multipart payload")
	}
	headers := form.File["imagenes"]
	if len(headers) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "no imagenes provided")
	}

	files, closers, err := openImageFiles(headers)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable image file")
	}
	defer func() {
		for _, cl := range closers {
			_ = cl.Close()
		}
	}()

	result, err := h.service.UploadImages(c.Request().Context(), c.Param("id"), userID, role, files)
	if err != nil {
		return err
	}

	uploaded := len(files) - result.FailedUploads
	metrics.ImageUploadsTotal.WithLabelValues("ok").Add(float64(uploaded))
	metrics.ImageUploadsTotal.WithLabelValues("failed").Add(float64(result.FailedUploads))

	return c.JSON(http.StatusOK, uploadImagesResponse{
		Imagenes:      result.Imagenes,
		FailedUploads: result.FailedUploads,
	})
}

// RemoveImage handles DELETE /v1/propiedades/:id/imagenes.
// The image URL to detach travels in the "url" query parameter.
//
// @Summary      Remove a listing image
// @Tags         propiedades
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Listing id"
// @Param        url  query     string  true  "Image URL to remove"
// @Success      200  {object}  listingResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/propiedades/{id}/imagenes [delete]
func (h *ListingHandler) RemoveImage(c echo.Context) error {
	userID, role, err := ctxClaims(c)
	if err != nil {
		return err
	}

	ref := c.QueryParam("url")
	if ref == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "url query parameter is required")
	}

	listing, err := h.service.RemoveImage(c.Request().Context(), c.Param("id"), userID, role, ref)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListingResponse(listing))
}

// queryFloat parses an optional float query parameter; absence yields nil.
func queryFloat(c echo.Context, name string) (*float64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// openImageFiles opens every multipart header and returns both the
// service inputs and the open handles for deferred closing.
func openImageFiles(headers []*multipart.FileHeader) ([]ports.ImageFile, []multipart.File, error) {
	files := make([]ports.ImageFile, 0, len(headers))
	closers := make([]multipart.File, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			for _, cl := range closers {
				_ = cl.Close()
			}
			return nil, nil, err
		}
		closers = append(closers, f)
		files = append(files, ports.ImageFile{
			Name:        fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
			Content:     f,
		})
	}
	return files, closers, nil
}
