package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/quickcart/storesearch/internal/keywords"
	"github.com/quickcart/storesearch/internal/metrics"
	"github.com/quickcart/storesearch/internal/models"
	"github.com/quickcart/storesearch/internal/storage"
)

// productListResponse wraps the engine envelope with the success flag the
// storefront and admin clients expect.
type productListResponse struct {
	Success bool `json:"success"`
	*models.ProductResponse
}

func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	query := parseProductQuery(r)
	// includeInactive is honored only on the admin route.
	query.IncludeInactive = false
	s.listProducts(w, r, query)
}

func (s *Server) handleAdminListProducts(w http.ResponseWriter, r *http.Request) {
	query := parseProductQuery(r)
	s.listProducts(w, r, query)
}

func (s *Server) listProducts(w http.ResponseWriter, r *http.Request, query *models.ProductQuery) {
	s.logger.Debug("product search request",
		zap.String("search", query.Search),
		zap.String("categoryId", query.CategoryID),
		zap.String("sortBy", query.SortBy))

	response, err := s.engine.Search(r.Context(), query)
	if err != nil {
		s.logger.Error("search failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	metrics.ObserveSearch(response.SearchInfo.Type, response.Pagination.Total)
	s.respondJSON(w, http.StatusOK, &productListResponse{Success: true, ProductResponse: response})
}

func (s *Server) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	product, err := s.storage.GetProduct(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.respondError(w, http.StatusNotFound, "product not found")
			return
		}
		s.logger.Error("get product failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, product)
}

func (s *Server) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var input models.ProductInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(input.Name) == "" {
		s.respondError(w, http.StatusBadRequest, "name is required")
		return
	}

	product := &models.Product{
		ID:          input.ID,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		CategoryID:  input.CategoryID,
		Tags:        input.Tags,
		IsActive:    true,
	}
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}

	if err := s.enrichProduct(r, product); err != nil {
		s.logger.Error("create product failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if err := s.storage.CreateProduct(r.Context(), product); err != nil {
		s.logger.Error("create product failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.logger.Debug("product created", zap.String("id", product.ID),
		zap.Int("keywords", len(product.SemanticKeywords)))
	s.respondJSON(w, http.StatusCreated, product)
}

func (s *Server) handleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var input models.ProductInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	product, err := s.storage.GetProduct(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.respondError(w, http.StatusNotFound, "product not found")
			return
		}
		s.logger.Error("update product failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if input.Name != "" {
		product.Name = input.Name
	}
	if input.Description != "" {
		product.Description = input.Description
	}
	if input.Price != 0 {
		product.Price = input.Price
	}
	if input.CategoryID != "" {
		product.CategoryID = input.CategoryID
		product.Category = nil
	}
	if input.Tags != nil {
		product.Tags = input.Tags
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}

	if err := s.enrichProduct(r, product); err != nil {
		s.logger.Error("update product failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if err := s.storage.UpdateProduct(r.Context(), product); err != nil {
		s.logger.Error("update product failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, product)
}

// enrichProduct loads the category relation when needed and regenerates the
// persisted semantic keyword list.
func (s *Server) enrichProduct(r *http.Request, product *models.Product) error {
	if product.CategoryID != "" && product.Category == nil {
		category, err := s.storage.GetCategory(r.Context(), product.CategoryID)
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			return err
		}
		product.Category = category
	}
	product.SemanticKeywords = keywords.Generate(product)
	return nil
}

func (s *Server) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.logger.Debug("delete product request", zap.String("id", id))
	if err := s.storage.DeleteProduct(r.Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.respondError(w, http.StatusNotFound, "product not found")
			return
		}
		s.logger.Error("delete product failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.storage.ListCategories(r.Context())
	if err != nil {
		s.logger.Error("list categories failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"categories": categories,
	})
}

func (s *Server) handleCategoryTree(w http.ResponseWriter, r *http.Request) {
	categories, err := s.storage.ListCategories(r.Context())
	if err != nil {
		s.logger.Error("category tree failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	childrenOf := make(map[string][]*models.Category)
	for _, category := range categories {
		if category.ParentID != "" {
			childrenOf[category.ParentID] = append(childrenOf[category.ParentID], category)
		}
	}

	tree := make([]*models.CategoryNode, 0)
	for _, category := range categories {
		if category.ParentID != "" {
			continue
		}
		children := childrenOf[category.ID]
		if children == nil {
			children = []*models.Category{}
		}
		tree = append(tree, &models.CategoryNode{Category: category, Children: children})
	}

	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"tree":    tree,
	})
}

func (s *Server) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var input models.CategoryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(input.Name) == "" {
		s.respondError(w, http.StatusBadRequest, "name is required")
		return
	}

	category := &models.Category{
		ID:       input.ID,
		Name:     input.Name,
		Slug:     input.Slug,
		ParentID: input.ParentID,
		IsActive: true,
	}
	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	if category.Slug == "" {
		category.Slug = slugify(category.Name)
	}

	if err := s.storage.CreateCategory(r.Context(), category); err != nil {
		s.logger.Error("create category failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusCreated, category)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	productCount, err := s.storage.CountProducts(ctx)
	if err != nil {
		s.logger.Error("status: count products failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	categoryCount, err := s.storage.CountCategories(ctx)
	if err != nil {
		s.logger.Error("status: count categories failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"products":   productCount,
		"categories": categoryCount,
		"config": map[string]interface{}{
			"max_scoring_candidates": s.config.Search.MaxScoringCandidates,
			"database_path":          s.config.Storage.DatabasePath,
		},
	})
}

// parseProductQuery reads listing/search parameters from the query string.
func parseProductQuery(r *http.Request) *models.ProductQuery {
	q := r.URL.Query()
	query := &models.ProductQuery{
		Search:     q.Get("search"),
		CategoryID: q.Get("categoryId"),
		SortBy:     q.Get("sortBy"),
		Order:      q.Get("order"),
	}
	if v, err := strconv.ParseFloat(q.Get("minPrice"), 64); err == nil {
		query.MinPrice = v
	}
	if v, err := strconv.ParseFloat(q.Get("maxPrice"), 64); err == nil {
		query.MaxPrice = v
	}
	if v, err := strconv.Atoi(q.Get("page")); err == nil {
		query.Page = v
	}
	if v, err := strconv.Atoi(q.Get("limit")); err == nil {
		query.Limit = v
	}
	if v, err := strconv.ParseBool(q.Get("includeInactive")); err == nil {
		query.IncludeInactive = v
	}
	return query
}

// slugify lower-cases a name and replaces runs of non-alphanumerics with
// single hyphens.
func slugify(name string) string {
	var b strings.Builder
	lastHyphen := true
	for _, c := range strings.ToLower(name) {
		switch {
		case c >= 'a' && c <= 'z' || c >= '0' && c <= '9':
			b.WriteRune(c)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]interface{}{"success": false, "error": message})
}
