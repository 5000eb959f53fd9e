package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"

	"gepe-server/internal/catalog/slug"
	"gepe-server/internal/clients/media"
	"gepe-server/internal/observability"
	"gepe-server/internal/store"
)

// CatalogStore defines the database operations required by CatalogProcessor
type CatalogStore interface {
	ListProducts(ctx context.Context, params store.ListProductsParams) ([]store.Product, error)
	GetProduct(ctx context.Context, id int64) (store.Product, error)
	GetProductBySlug(ctx context.Context, slug string) (store.Product, error)
	ProductSlugExists(ctx context.Context, slug string, excludeID int64) (bool, error)
	CreateProduct(ctx context.Context, product store.Product) (store.Product, error)
	UpdateProduct(ctx context.Context, id int64, params store.UpdateProductParams) (store.Product, error)
	UpdateProductStock(ctx context.Context, id int64, stock int64) (store.Product, error)
	SetProductActive(ctx context.Context, id int64, active bool) (store.Product, error)
	DeleteProduct(ctx context.Context, id int64) error

	ListCategories(ctx context.Context) ([]store.Category, error)
	GetCategory(ctx context.Context, id int64) (store.Category, error)
	CategoryNameOrSlugExists(ctx context.Context, name, slug string, excludeID int64) (bool, error)
	CreateCategory(ctx context.Context, name, slug string) (store.Category, error)
	UpdateCategory(ctx context.Context, id int64, name, slug string) (store.Category, error)
	CountProductsInCategory(ctx context.Context, categoryID int64) (int, error)
	DeleteCategory(ctx context.Context, id int64) error

	ListClubs(ctx context.Context) ([]store.Club, error)
	GetClub(ctx context.Context, id int64) (store.Club, error)
	ClubNameOrSlugExists(ctx context.Context, name, slug string, excludeID int64) (bool, error)
	CreateClub(ctx context.Context, club store.Club) (store.Club, error)
	UpdateClub(ctx context.Context, club store.Club) (store.Club, error)
	SetClubCrest(ctx context.Context, id int64, crestURL string) (store.Club, error)
	DeleteClub(ctx context.Context, id int64) error
}

// MediaUploader defines the image hosting operations required by
// CatalogProcessor
type MediaUploader interface {
	IsEnabled() bool
	UploadImage(ctx context.Context, file interface{}, folder string) (string, string, error)
}

// Revalidator notifies the storefront after catalog changes
type Revalidator interface {
	RevalidateProducts(ctx context.Context, slug string) bool
	RevalidateClubs(ctx context.Context, slug string) bool
}

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryConflict = errors.New("category name or slug already in use")
	ErrClubNotFound     = errors.New("club not found")
	ErrClubConflict     = errors.New("club name or slug already in use")
	ErrUploadsDisabled  = errors.New("image uploads are not configured")
)

// CategoryExistsError reports a create collision with the offending values,
// so the response can echo them back.
type CategoryExistsError struct {
	Name string
	Slug string
}

func (e CategoryExistsError) Error() string {
	return fmt.Sprintf("category with name %q or slug %q already exists", e.Name, e.Slug)
}

// CategoryInUseError blocks deleting a category that still has products.
type CategoryInUseError struct {
	Products int
}

func (e CategoryInUseError) Error() string {
	return fmt.Sprintf("category has %d associated products", e.Products)
}

type CatalogProcessor struct {
	store    CatalogStore
	media    MediaUploader
	frontend Revalidator
	logger   *observability.Logger
}

func New(store CatalogStore, media MediaUploader, frontend Revalidator, logger *observability.Logger) CatalogProcessor {
	return CatalogProcessor{
		store:    store,
		media:    media,
		frontend: frontend,
		logger:   logger,
	}
}

func (p *CatalogProcessor) productSlugTaken(excludeID int64) slug.ExistsFunc {
	return func(ctx context.Context, candidate string) (bool, error) {
		return p.store.ProductSlugExists(ctx, candidate, excludeID)
	}
}

// ListProducts returns products matching the storefront filters.
func (p *CatalogProcessor) ListProducts(ctx context.Context, params store.ListProductsParams) ([]store.Product, error) {
	products, err := p.store.ListProducts(ctx, params)
	if err != nil {
		p.logger.Error(ctx, "failed to list products", err)
		return nil, err
	}
	return products, nil
}

// GetProduct returns one product by id.
func (p *CatalogProcessor) GetProduct(ctx context.Context, id int64) (store.Product, error) {
	product, err := p.store.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Product{}, ErrProductNotFound
		}
		p.logger.Error(ctx, "failed to get product", err)
		return store.Product{}, err
	}
	return product, nil
}

// GetProductBySlug returns one product by its URL slug.
func (p *CatalogProcessor) GetProductBySlug(ctx context.Context, productSlug string) (store.Product, error) {
	product, err := p.store.GetProductBySlug(ctx, productSlug)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Product{}, ErrProductNotFound
		}
		p.logger.Error(ctx, "failed to get product by slug", err)
		return store.Product{}, err
	}
	return product, nil
}

// CreateProductParams carries a new product. The slug is derived from the
// name; collisions get a numeric suffix.
type CreateProductParams struct {
	Name        string
	Description *string
	Price       float64
	Stock       int64
	Gender      *string
	ClubName    *string
	CategoryID  *int64
	IsActive    bool
}

func (p *CatalogProcessor) CreateProduct(ctx context.Context, params CreateProductParams) (store.Product, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "product_name", Value: params.Name})

	productSlug, err := slug.MakeUnique(ctx, params.Name, p.productSlugTaken(0))
	if err != nil {
		p.logger.Error(ctx, "failed to build product slug", err)
		return store.Product{}, err
	}

	created, err := p.store.CreateProduct(ctx, store.Product{
		Name:        params.Name,
		Slug:        productSlug,
		Description: params.Description,
		Price:       params.Price,
		Stock:       params.Stock,
		Gender:      params.Gender,
		ClubName:    params.ClubName,
		CategoryID:  params.CategoryID,
		IsActive:    params.IsActive,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create product", err)
		return store.Product{}, err
	}

	p.logger.Info(ctx, "product created")
	p.frontend.RevalidateProducts(ctx, created.Slug)
	return created, nil
}

// UpdateProductParams carries the fields a product update may touch. Nil
// fields keep their current value; renaming regenerates the slug unless one
// is given explicitly.
type UpdateProductParams struct {
	Name        *string
	Slug        *string
	Description *string
	Price       *float64
	Stock       *int64
	Gender      *string
	ClubName    *string
	IsActive    *bool
	CategoryID  *int64
}

func (p *CatalogProcessor) UpdateProduct(ctx context.Context, id int64, params UpdateProductParams) (store.Product, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "product_id", Value: id})

	storeParams := store.UpdateProductParams{
		Name:        params.Name,
		Slug:        params.Slug,
		Description: params.Description,
		Price:       params.Price,
		Stock:       params.Stock,
		Gender:      params.Gender,
		ClubName:    params.ClubName,
		IsActive:    params.IsActive,
		CategoryID:  params.CategoryID,
	}

	if params.Name != nil && params.Slug == nil {
		newSlug, err := slug.MakeUnique(ctx, *params.Name, p.productSlugTaken(id))
		if err != nil {
			p.logger.Error(ctx, "failed to rebuild product slug", err)
			return store.Product{}, err
		}
		storeParams.Slug = &newSlug
	}

	updated, err := p.store.UpdateProduct(ctx, id, storeParams)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Product{}, ErrProductNotFound
		}
		p.logger.Error(ctx, "failed to update product", err)
		return store.Product{}, err
	}

	p.frontend.RevalidateProducts(ctx, updated.Slug)
	return updated, nil
}

// UpdateStock sets the stock level of a product.
func (p *CatalogProcessor) UpdateStock(ctx context.Context, id, stock int64) (store.Product, error) {
	product, err := p.store.UpdateProductStock(ctx, id, stock)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Product{}, ErrProductNotFound
		}
		p.logger.Error(ctx, "failed to update product stock", err)
		return store.Product{}, err
	}

	p.frontend.RevalidateProducts(ctx, product.Slug)
	return product, nil
}

// SetActive publishes or hides a product on the storefront.
func (p *CatalogProcessor) SetActive(ctx context.Context, id int64, active bool) (store.Product, error) {
	product, err := p.store.SetProductActive(ctx, id, active)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Product{}, ErrProductNotFound
		}
		p.logger.Error(ctx, "failed to set product active", err)
		return store.Product{}, err
	}

	p.frontend.RevalidateProducts(ctx, product.Slug)
	return product, nil
}

// DeleteProduct removes a product and rebuilds its storefront pages.
func (p *CatalogProcessor) DeleteProduct(ctx context.Context, id int64) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "product_id", Value: id})

	product, err := p.store.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrProductNotFound
		}
		p.logger.Error(ctx, "failed to get product", err)
		return err
	}

	if err := p.store.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrProductNotFound
		}
		p.logger.Error(ctx, "failed to delete product", err)
		return err
	}

	p.logger.Info(ctx, "product deleted")
	p.frontend.RevalidateProducts(ctx, product.Slug)
	return nil
}

// UploadedImage is a hosted image reference returned to the admin.
type UploadedImage struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}

// UploadProductImage pushes a product photo to the image host.
func (p *CatalogProcessor) UploadProductImage(ctx context.Context, file interface{}) (UploadedImage, error) {
	if !p.media.IsEnabled() {
		return UploadedImage{}, ErrUploadsDisabled
	}

	url, publicID, err := p.media.UploadImage(ctx, file, media.FolderProducts)
	if err != nil {
		p.logger.Error(ctx, "failed to upload product image", err)
		return UploadedImage{}, err
	}
	return UploadedImage{URL: url, PublicID: publicID}, nil
}

// SlugRegenResult summarizes a bulk slug rebuild.
type SlugRegenResult struct {
	Total   int `json:"total"`
	Updated int `json:"updated"`
}

// RegenerateSlugs recomputes every product slug from its current name.
// Products whose slug already matches are left alone.
func (p *CatalogProcessor) RegenerateSlugs(ctx context.Context) (SlugRegenResult, error) {
	products, err := p.store.ListProducts(ctx, store.ListProductsParams{})
	if err != nil {
		p.logger.Error(ctx, "failed to list products for slug rebuild", err)
		return SlugRegenResult{}, err
	}

	result := SlugRegenResult{Total: len(products)}
	for _, product := range products {
		if slug.Make(product.Name) == product.Slug {
			continue
		}
		newSlug, err := slug.MakeUnique(ctx, product.Name, p.productSlugTaken(product.ID))
		if err != nil {
			p.logger.Error(ctx, "failed to rebuild product slug", err)
			return SlugRegenResult{}, err
		}
		if _, err := p.store.UpdateProduct(ctx, product.ID, store.UpdateProductParams{Slug: &newSlug}); err != nil {
			p.logger.Error(ctx, "failed to store rebuilt slug", err)
			return SlugRegenResult{}, err
		}
		result.Updated++
	}

	p.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "total", Value: result.Total},
		observability.Field{Key: "updated", Value: result.Updated},
	), "product slugs regenerated")

	if result.Updated > 0 {
		p.frontend.RevalidateProducts(ctx, "")
	}
	return result, nil
}

// ListCategories returns all categories ordered by name.
func (p *CatalogProcessor) ListCategories(ctx context.Context) ([]store.Category, error) {
	categories, err := p.store.ListCategories(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list categories", err)
		return nil, err
	}
	return categories, nil
}

// GetCategory returns one category by id.
func (p *CatalogProcessor) GetCategory(ctx context.Context, id int64) (store.Category, error) {
	category, err := p.store.GetCategory(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Category{}, ErrCategoryNotFound
		}
		p.logger.Error(ctx, "failed to get category", err)
		return store.Category{}, err
	}
	return category, nil
}

// CreateCategory stores a new category. An empty slug is derived from the
// name.
func (p *CatalogProcessor) CreateCategory(ctx context.Context, name, categorySlug string) (store.Category, error) {
	if categorySlug == "" {
		categorySlug = slug.Make(name)
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "category_name", Value: name})

	taken, err := p.store.CategoryNameOrSlugExists(ctx, name, categorySlug, 0)
	if err != nil {
		p.logger.Error(ctx, "failed to check category name", err)
		return store.Category{}, err
	}
	if taken {
		return store.Category{}, CategoryExistsError{Name: name, Slug: categorySlug}
	}

	category, err := p.store.CreateCategory(ctx, name, categorySlug)
	if err != nil {
		p.logger.Error(ctx, "failed to create category", err)
		return store.Category{}, err
	}
	p.logger.Info(ctx, "category created")
	return category, nil
}

// UpdateCategory renames a category. Renaming without an explicit slug
// regenerates it from the new name.
func (p *CatalogProcessor) UpdateCategory(ctx context.Context, id int64, name, categorySlug *string) (store.Category, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "category_id", Value: id})

	current, err := p.store.GetCategory(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Category{}, ErrCategoryNotFound
		}
		p.logger.Error(ctx, "failed to get category", err)
		return store.Category{}, err
	}

	newName := current.Name
	newSlug := current.Slug
	if name != nil {
		newName = *name
		if categorySlug == nil {
			newSlug = slug.Make(newName)
		}
	}
	if categorySlug != nil {
		newSlug = *categorySlug
	}

	if newName != current.Name || newSlug != current.Slug {
		taken, err := p.store.CategoryNameOrSlugExists(ctx, newName, newSlug, id)
		if err != nil {
			p.logger.Error(ctx, "failed to check category name", err)
			return store.Category{}, err
		}
		if taken {
			return store.Category{}, ErrCategoryConflict
		}
	}

	category, err := p.store.UpdateCategory(ctx, id, newName, newSlug)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Category{}, ErrCategoryNotFound
		}
		p.logger.Error(ctx, "failed to update category", err)
		return store.Category{}, err
	}
	return category, nil
}

// DeleteCategory removes a category that has no products left.
func (p *CatalogProcessor) DeleteCategory(ctx context.Context, id int64) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "category_id", Value: id})

	if _, err := p.store.GetCategory(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrCategoryNotFound
		}
		p.logger.Error(ctx, "failed to get category", err)
		return err
	}

	count, err := p.store.CountProductsInCategory(ctx, id)
	if err != nil {
		p.logger.Error(ctx, "failed to count products in category", err)
		return err
	}
	if count > 0 {
		return CategoryInUseError{Products: count}
	}

	if err := p.store.DeleteCategory(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrCategoryNotFound
		}
		p.logger.Error(ctx, "failed to delete category", err)
		return err
	}
	p.logger.Info(ctx, "category deleted")
	return nil
}

// ListClubs returns all clubs ordered by name.
func (p *CatalogProcessor) ListClubs(ctx context.Context) ([]store.Club, error) {
	clubs, err := p.store.ListClubs(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list clubs", err)
		return nil, err
	}
	return clubs, nil
}

// GetClub returns one club by id.
func (p *CatalogProcessor) GetClub(ctx context.Context, id int64) (store.Club, error) {
	club, err := p.store.GetClub(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Club{}, ErrClubNotFound
		}
		p.logger.Error(ctx, "failed to get club", err)
		return store.Club{}, err
	}
	return club, nil
}

// CreateClubParams carries a new club; the slug is derived from the name.
type CreateClubParams struct {
	Name          string
	CityKey       *string
	CrestImageURL *string
}

func (p *CatalogProcessor) CreateClub(ctx context.Context, params CreateClubParams) (store.Club, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "club_name", Value: params.Name})

	clubSlug := slug.Make(params.Name)
	taken, err := p.store.ClubNameOrSlugExists(ctx, params.Name, clubSlug, 0)
	if err != nil {
		p.logger.Error(ctx, "failed to check club name", err)
		return store.Club{}, err
	}
	if taken {
		return store.Club{}, ErrClubConflict
	}

	club, err := p.store.CreateClub(ctx, store.Club{
		Name:          params.Name,
		Slug:          clubSlug,
		CityKey:       params.CityKey,
		CrestImageURL: params.CrestImageURL,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create club", err)
		return store.Club{}, err
	}

	p.logger.Info(ctx, "club created")
	p.frontend.RevalidateClubs(ctx, club.Slug)
	return club, nil
}

// UpdateClubParams carries the club fields an update may touch. Nil fields
// keep their current value.
type UpdateClubParams struct {
	Name          *string
	CityKey       *string
	CrestImageURL *string
}

// UpdateClub applies a partial update; renaming regenerates the slug.
func (p *CatalogProcessor) UpdateClub(ctx context.Context, id int64, params UpdateClubParams) (store.Club, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "club_id", Value: id})

	club, err := p.store.GetClub(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Club{}, ErrClubNotFound
		}
		p.logger.Error(ctx, "failed to get club", err)
		return store.Club{}, err
	}

	if params.Name != nil {
		club.Name = *params.Name
		club.Slug = slug.Make(club.Name)
	}
	if params.CityKey != nil {
		club.CityKey = params.CityKey
	}
	if params.CrestImageURL != nil {
		club.CrestImageURL = params.CrestImageURL
	}

	if params.Name != nil {
		taken, err := p.store.ClubNameOrSlugExists(ctx, club.Name, club.Slug, id)
		if err != nil {
			p.logger.Error(ctx, "failed to check club name", err)
			return store.Club{}, err
		}
		if taken {
			return store.Club{}, ErrClubConflict
		}
	}

	updated, err := p.store.UpdateClub(ctx, club)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Club{}, ErrClubNotFound
		}
		p.logger.Error(ctx, "failed to update club", err)
		return store.Club{}, err
	}

	p.frontend.RevalidateClubs(ctx, updated.Slug)
	return updated, nil
}

// UploadClubCrest uploads a crest image and attaches it to the club.
func (p *CatalogProcessor) UploadClubCrest(ctx context.Context, id int64, file interface{}) (store.Club, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "club_id", Value: id})

	if !p.media.IsEnabled() {
		return store.Club{}, ErrUploadsDisabled
	}

	if _, err := p.store.GetClub(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Club{}, ErrClubNotFound
		}
		p.logger.Error(ctx, "failed to get club", err)
		return store.Club{}, err
	}

	url, _, err := p.media.UploadImage(ctx, file, media.FolderClubs)
	if err != nil {
		p.logger.Error(ctx, "failed to upload club crest", err)
		return store.Club{}, err
	}

	club, err := p.store.SetClubCrest(ctx, id, url)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Club{}, ErrClubNotFound
		}
		p.logger.Error(ctx, "failed to set club crest", err)
		return store.Club{}, err
	}

	p.frontend.RevalidateClubs(ctx, club.Slug)
	return club, nil
}

// DeleteClub removes a club.
func (p *CatalogProcessor) DeleteClub(ctx context.Context, id int64) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "club_id", Value: id})

	club, err := p.store.GetClub(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrClubNotFound
		}
		p.logger.Error(ctx, "failed to get club", err)
		return err
	}

	if err := p.store.DeleteClub(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrClubNotFound
		}
		p.logger.Error(ctx, "failed to delete club", err)
		return err
	}

	p.logger.Info(ctx, "club deleted")
	p.frontend.RevalidateClubs(ctx, club.Slug)
	return nil
}
