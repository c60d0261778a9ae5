package service

import (
	"context"
	"strings"

	"github.com/Skotchmaster/phone_shop/internal/models"
	"github.com/Skotchmaster/phone_shop/internal/repo"
	"github.com/Skotchmaster/phone_shop/internal/transport"
	"github.com/Skotchmaster/phone_shop/pkg/logging"
	"github.com/Skotchmaster/phone_shop/pkg/search"
)

const searchLimit = 100

// ProductSearch is the full-text index behind product search.
type ProductSearch interface {
	IndexProduct(ctx context.Context, doc search.ProductDoc) error
	DeleteProduct(ctx context.Context, id uint) error
	SearchProducts(ctx context.Context, query string, from, size int) (int64, []uint, error)
}

type CatalogService struct {
	Repo *repo.GormRepo
	// Search is optional; without it search falls back to SQL LIKE.
	Search ProductSearch
}

func (s *CatalogService) CreateCategory(ctx context.Context, req transport.CategoryRequest) (*transport.Response, error) {
	c, err := s.Repo.CreateCategory(ctx, &models.Category{Name: strings.TrimSpace(req.Name)})
	if err != nil {
		if repo.IsDuplicate(err) {
			return nil, validation("Category already exists")
		}
		return nil, err
	}
	resp := transport.OK("Category created successfully")
	resp.Category = transport.ToCategoryDTO(c)
	return resp, nil
}

func (s *CatalogService) GetAllCategories(ctx context.Context) (*transport.Response, error) {
	cs, err := s.Repo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	resp := transport.OK("success")
	resp.CategoryList = transport.ToCategoryDTOs(cs)
	return resp, nil
}

func (s *CatalogService) CreateProduct(ctx context.Context, req transport.ProductRequest) (*transport.Response, error) {
	if req.Price.IsNegative() {
		return nil, validation("Price cannot be negative")
	}
	if req.CategoryID != nil {
		if _, err := s.Repo.GetCategory(ctx, *req.CategoryID); err != nil {
			if repo.IsNotFound(err) {
				return nil, notFound("Category not found")
			}
			return nil, err
		}
	}

	p, err := s.Repo.CreateProduct(ctx, &models.Product{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		return nil, err
	}

	if s.Search != nil {
		if err := s.Search.IndexProduct(ctx, productDoc(p)); err != nil {
			logging.FromContext(ctx).Warn("index_product_error", "product_id", p.ID, "error", err)
		}
	}

	resp := transport.OK("Product successfully created")
	resp.Product = transport.ToProductDTO(p)
	return resp, nil
}

func (s *CatalogService) GetProductByID(ctx context.Context, id uint) (*transport.Response, error) {
	p, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, notFound("Product Not Found")
		}
		return nil, err
	}
	resp := transport.OK("success")
	resp.Product = transport.ToProductDTO(p)
	return resp, nil
}

func (s *CatalogService) GetAllProducts(ctx context.Context) (*transport.Response, error) {
	ps, err := s.Repo.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	resp := transport.OK("success")
	resp.ProductList = transport.ToProductDTOs(ps)
	return resp, nil
}

func (s *CatalogService) GetProductsByCategory(ctx context.Context, categoryID uint) (*transport.Response, error) {
	if _, err := s.Repo.GetCategory(ctx, categoryID); err != nil {
		if repo.IsNotFound(err) {
			return nil, notFound("Category not found")
		}
		return nil, err
	}
	ps, err := s.Repo.ListProductsByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if len(ps) == 0 {
		return nil, notFound("No Products found for this category")
	}
	resp := transport.OK("success")
	resp.ProductList = transport.ToProductDTOs(ps)
	return resp, nil
}

func (s *CatalogService) SearchProducts(ctx context.Context, query string) (*transport.Response, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, validation("Search value is required")
	}

	var (
		ps  []models.Product
		err error
	)
	if s.Search != nil {
		var ids []uint
		_, ids, err = s.Search.SearchProducts(ctx, query, 0, searchLimit)
		if err == nil {
			ps, err = s.Repo.GetProductsByIDs(ctx, ids)
		}
	} else {
		ps, err = s.Repo.SearchProducts(ctx, query)
	}
	if err != nil {
		return nil, err
	}
	if len(ps) == 0 {
		return nil, notFound("No Products Found")
	}

	resp := transport.OK("success")
	resp.ProductList = transport.ToProductDTOs(ps)
	return resp, nil
}

// UpdateProduct applies the fields present in req and leaves the rest unchanged.
func (s *CatalogService) UpdateProduct(ctx context.Context, id uint, req transport.UpdateProductRequest) (*transport.Response, error) {
	p, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, notFound("Product Not Found")
		}
		return nil, err
	}
	if req.CategoryID != nil {
		if _, err := s.Repo.GetCategory(ctx, *req.CategoryID); err != nil {
			if repo.IsNotFound(err) {
				return nil, notFound("Category not found")
			}
			return nil, err
		}
		p.CategoryID = req.CategoryID
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			return nil, validation("Price cannot be negative")
		}
		p.Price = *req.Price
	}
	if req.Name != nil {
		p.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.ImageURL != nil {
		p.ImageURL = *req.ImageURL
	}

	if err := s.Repo.SaveProduct(ctx, p); err != nil {
		return nil, err
	}

	if s.Search != nil {
		if err := s.Search.IndexProduct(ctx, productDoc(p)); err != nil {
			logging.FromContext(ctx).Warn("index_product_error", "product_id", p.ID, "error", err)
		}
	}

	resp := transport.OK("Product updated successfully")
	resp.Product = transport.ToProductDTO(p)
	return resp, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id uint) (*transport.Response, error) {
	if _, err := s.Repo.GetProduct(ctx, id); err != nil {
		if repo.IsNotFound(err) {
			return nil, notFound("Product Not Found")
		}
		return nil, err
	}

	ordered, err := s.Repo.ProductOrdered(ctx, id)
	if err != nil {
		return nil, err
	}
	if ordered {
		return nil, &Error{Kind: ErrProductDeletionNotAllowed, Msg: "Product cannot be deleted, it is already ordered"}
	}

	if err := s.Repo.DeleteProduct(ctx, id); err != nil {
		if repo.IsNotFound(err) {
			return nil, notFound("Product Not Found")
		}
		return nil, err
	}

	if s.Search != nil {
		if err := s.Search.DeleteProduct(ctx, id); err != nil {
			logging.FromContext(ctx).Warn("unindex_product_error", "product_id", id, "error", err)
		}
	}
	return transport.OK("Product deleted successfully"), nil
}

func productDoc(p *models.Product) search.ProductDoc {
	return search.ProductDoc{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.String(),
		CategoryID:  p.CategoryID,
	}
}
